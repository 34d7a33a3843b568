package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	paymentRepo "pitchbook/database/repository/payment"
	userRepo "pitchbook/database/repository/user"
	"pitchbook/models"
)

// PaymentService processes payments and records their outcome. Booking
// confirmation later validates the recorded status.
type PaymentService interface {
	Process(ctx context.Context, req models.PaymentRequest) (*models.Payment, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
}

// DefaultPaymentService is the production implementation. Card payments go
// through Stripe; cash payments are recorded as successful on the spot and
// collected at the ground.
type DefaultPaymentService struct {
	Repo   paymentRepo.PaymentRepository
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

var errInvalidRequest = errors.New("invalid payment request")

func (s *DefaultPaymentService) Process(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidRequest, err)
	}

	if _, err := s.Users.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("could not resolve customer %s: %w", req.CustomerID, err)
	}

	now := time.Now()
	p := &models.Payment{
		ID:         uuid.New().String(),
		CustomerID: req.CustomerID,
		BookingID:  req.BookingID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Method:     req.Method,
		Status:     models.PaymentStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	switch req.Method {
	case "card":
		s.processCard(ctx, req, p)
	case "cash":
		p.Status = models.PaymentStatusSuccess
	default:
		return nil, fmt.Errorf("%w: unsupported payment method %q", errInvalidRequest, req.Method)
	}
	p.UpdatedAt = time.Now()

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.Logger.Info("payment processed",
		zap.String("paymentID", p.ID),
		zap.String("method", p.Method),
		zap.String("status", p.Status))
	return p, nil
}

func (s *DefaultPaymentService) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	return s.Repo.GetByID(ctx, id)
}

// processCard confirms a Stripe PaymentIntent and maps its outcome onto the
// payment record. Stripe failures mark the record failed rather than erroring
// out, so the caller always gets a stored result to inspect.
func (s *DefaultPaymentService) processCard(ctx context.Context, req models.PaymentRequest, p *models.Payment) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(req.Amount * 100)),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		Params: stripe.Params{
			Context: ctx,
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		p.Status = models.PaymentStatusFailed
		p.Error = err.Error()
		s.Logger.Warn("stripe payment failed", zap.String("paymentID", p.ID), zap.Error(err))
		return
	}

	p.StripePaymentIntentID = intent.ID
	if intent.Status == stripe.PaymentIntentStatusSucceeded {
		p.Status = models.PaymentStatusSuccess
	} else {
		p.Status = models.PaymentStatusFailed
		p.Error = fmt.Sprintf("payment intent status %s", intent.Status)
	}
}

func validateRequest(req models.PaymentRequest) error {
	switch {
	case req.CustomerID == "":
		return errors.New("customerId is required")
	case req.Amount <= 0:
		return errors.New("amount must be positive")
	case req.Currency == "":
		return errors.New("currency is required")
	case req.Method == "":
		return errors.New("method is required")
	}
	return nil
}
