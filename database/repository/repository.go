package repository

import (
	bookingRepo "pitchbook/database/repository/booking"
	groundRepo "pitchbook/database/repository/ground"
	paymentRepo "pitchbook/database/repository/payment"
	userRepo "pitchbook/database/repository/user"
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the GroundRepository interface and constructor.
type GroundRepository = groundRepo.GroundRepository

var NewMongoGroundRepo = groundRepo.NewMongoGroundRepo

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo

// Re-export the PaymentRepository interface and constructor.
type PaymentRepository = paymentRepo.PaymentRepository

var NewMongoPaymentRepo = paymentRepo.NewMongoPaymentRepo
