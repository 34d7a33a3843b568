package models

import "time"

// Payment status values.
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// PaymentRequest is the input for processing a payment.
type PaymentRequest struct {
	CustomerID      string  `json:"customerId"`
	BookingID       string  `json:"bookingId,omitempty"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Method          string  `json:"method"` // "cash" or "card"
	PaymentMethodID string  `json:"paymentMethodId,omitempty"`
}

// Payment is a stored payment record. Booking confirmation requires a
// payment whose status is "success".
type Payment struct {
	ID                    string    `bson:"id" json:"id"`
	CustomerID            string    `bson:"customer_id" json:"customerId"`
	BookingID             string    `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	Amount                float64   `bson:"amount" json:"amount"`
	Currency              string    `bson:"currency" json:"currency"`
	Method                string    `bson:"method" json:"method"`
	Status                string    `bson:"status" json:"status"`
	StripePaymentIntentID string    `bson:"stripe_payment_intent_id,omitempty" json:"-"`
	Error                 string    `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt             time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updated_at" json:"updatedAt"`
}
