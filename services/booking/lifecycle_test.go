package booking

import (
	"context"
	"testing"
	"time"

	"pitchbook/models"
)

func TestConfirmPendingWithSuccessfulPayment(t *testing.T) {
	svc, repo := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending))
	svc.PaymentRepo = newStubPaymentRepo(&models.Payment{ID: "pay-1", Status: models.PaymentStatusSuccess, Amount: 1000})
	notifier := &stubNotifier{}
	reminders := &stubReminders{}
	svc.Notifier = notifier
	svc.Reminders = reminders

	detail, err := svc.Confirm(context.Background(), "b1", "pay-1")
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if detail.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %q, want confirmed", detail.Status)
	}
	if detail.PaymentID != "pay-1" {
		t.Errorf("paymentId = %q, want pay-1", detail.PaymentID)
	}
	if repo.bookings["b1"].Status != models.BookingStatusConfirmed {
		t.Error("confirmation was not persisted")
	}
	if len(notifier.confirmed) != 1 {
		t.Errorf("confirmation push sent %d times, want 1", len(notifier.confirmed))
	}
	if len(reminders.scheduled) != 1 {
		t.Errorf("reminder scheduled %d times, want 1", len(reminders.scheduled))
	}
}

func TestConfirmWithFailedPayment(t *testing.T) {
	svc, repo := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending))
	svc.PaymentRepo = newStubPaymentRepo(&models.Payment{ID: "pay-1", Status: models.PaymentStatusFailed})

	if _, err := svc.Confirm(context.Background(), "b1", "pay-1"); !IsKind(err, KindInvalidState) {
		t.Fatalf("failed payment should give invalid_state, got %v", err)
	}
	if repo.bookings["b1"].Status != models.BookingStatusPending {
		t.Error("booking must stay pending when the payment is not successful")
	}
}

func TestConfirmWithMissingPayment(t *testing.T) {
	svc, _ := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending))

	if _, err := svc.Confirm(context.Background(), "b1", "pay-missing"); !IsKind(err, KindNotFound) {
		t.Errorf("unknown payment should give not_found, got %v", err)
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	svc, _ := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusConfirmed))
	notifier := &stubNotifier{}
	svc.Notifier = notifier

	detail, err := svc.Confirm(context.Background(), "b1", "")
	if err != nil {
		t.Fatalf("re-confirming a confirmed booking should succeed: %v", err)
	}
	if detail.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %q, want confirmed", detail.Status)
	}
	if len(notifier.confirmed) != 0 {
		t.Error("re-confirm must not resend the confirmation push")
	}
}

func TestConfirmTerminalStates(t *testing.T) {
	for _, status := range []string{models.BookingStatusCancelled, models.BookingStatusCompleted} {
		svc, _ := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", status))
		if _, err := svc.Confirm(context.Background(), "b1", ""); !IsKind(err, KindInvalidState) {
			t.Errorf("confirming a %s booking: expected invalid_state, got %v", status, err)
		}
	}
}

func TestConfirmUnknownBooking(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Confirm(context.Background(), "missing", ""); !IsKind(err, KindNotFound) {
		t.Errorf("expected not_found, got %v", err)
	}
}

func TestCancelPendingHasNoCutoff(t *testing.T) {
	// Pending booking 30 minutes from the frozen 08:00 clock.
	svc, repo := newTestService(existingBooking("b1", "2026-05-01", "08:30", "09:30", models.BookingStatusPending))
	notifier := &stubNotifier{}
	svc.Notifier = notifier

	detail, err := svc.Cancel(context.Background(), "b1", "rain")
	if err != nil {
		t.Fatalf("pending booking should cancel regardless of cutoff: %v", err)
	}
	if detail.Status != models.BookingStatusCancelled {
		t.Errorf("status = %q, want cancelled", detail.Status)
	}
	if repo.bookings["b1"].Notes != "cancelled: rain" {
		t.Errorf("notes = %q, want cancellation reason recorded", repo.bookings["b1"].Notes)
	}
	if len(notifier.cancelled) != 1 {
		t.Errorf("cancellation push sent %d times, want 1", len(notifier.cancelled))
	}
}

func TestCancelConfirmedInsideCutoff(t *testing.T) {
	// Confirmed booking one hour out, inside the two hour cutoff.
	svc, repo := newTestService(existingBooking("b1", "2026-05-01", "09:00", "10:00", models.BookingStatusConfirmed))

	if _, err := svc.Cancel(context.Background(), "b1", ""); !IsKind(err, KindInvalidState) {
		t.Fatalf("expected invalid_state inside cutoff, got %v", err)
	}
	if repo.bookings["b1"].Status != models.BookingStatusConfirmed {
		t.Error("booking must stay confirmed when cancellation is refused")
	}
}

func TestCancelConfirmedOutsideCutoff(t *testing.T) {
	// Confirmed booking three hours out, past the cutoff.
	svc, _ := newTestService(existingBooking("b1", "2026-05-01", "11:00", "12:00", models.BookingStatusConfirmed))

	detail, err := svc.Cancel(context.Background(), "b1", "")
	if err != nil {
		t.Fatalf("cancellation outside cutoff should succeed: %v", err)
	}
	if detail.Status != models.BookingStatusCancelled {
		t.Errorf("status = %q, want cancelled", detail.Status)
	}
}

func TestCancelAppendsToExistingNotes(t *testing.T) {
	b := existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending)
	b.Notes = "bring extra stumps"
	svc, repo := newTestService(b)

	if _, err := svc.Cancel(context.Background(), "b1", "double booked"); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	want := "bring extra stumps | cancelled: double booked"
	if got := repo.bookings["b1"].Notes; got != want {
		t.Errorf("notes = %q, want %q", got, want)
	}
}

func TestCancelTerminalStates(t *testing.T) {
	for _, status := range []string{models.BookingStatusCancelled, models.BookingStatusCompleted} {
		svc, _ := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", status))
		if _, err := svc.Cancel(context.Background(), "b1", ""); !IsKind(err, KindInvalidState) {
			t.Errorf("cancelling a %s booking: expected invalid_state, got %v", status, err)
		}
	}
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	svc, repo := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusConfirmed))

	detail, err := svc.Complete(context.Background(), "b1")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if detail.Status != models.BookingStatusCompleted {
		t.Errorf("status = %q, want completed", detail.Status)
	}
	if repo.bookings["b1"].Status != models.BookingStatusCompleted {
		t.Error("completion was not persisted")
	}

	for _, status := range []string{models.BookingStatusPending, models.BookingStatusCancelled, models.BookingStatusCompleted} {
		svc, _ := newTestService(existingBooking("b2", "2026-05-02", "10:00", "11:00", status))
		if _, err := svc.Complete(context.Background(), "b2"); !IsKind(err, KindInvalidState) {
			t.Errorf("completing a %s booking: expected invalid_state, got %v", status, err)
		}
	}
}

func TestUpdateTerminalBookingRejected(t *testing.T) {
	for _, status := range []string{models.BookingStatusCancelled, models.BookingStatusCompleted} {
		svc, _ := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", status))
		notes := "updated"
		if _, err := svc.Update(context.Background(), "b1", models.UpdateBookingInput{Notes: &notes}); !IsKind(err, KindInvalidState) {
			t.Errorf("updating a %s booking: expected invalid_state, got %v", status, err)
		}
	}
}

func TestUpdateNonMovingFields(t *testing.T) {
	svc, repo := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending))

	amount := 1500.0
	notes := "senior team"
	detail, err := svc.Update(context.Background(), "b1", models.UpdateBookingInput{Amount: &amount, Notes: &notes})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if detail.Amount != 1500 || detail.Notes != "senior team" {
		t.Errorf("patch not applied: amount=%v notes=%q", detail.Amount, detail.Notes)
	}
	if repo.bookings["b1"].Amount != 1500 {
		t.Error("update was not persisted")
	}
}

func TestUpdateMoveRechecksAvailability(t *testing.T) {
	svc, _ := newTestService(
		existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending),
		existingBooking("b2", "2026-05-02", "12:00", "13:00", models.BookingStatusConfirmed),
	)

	// Moving b1 onto b2's range conflicts.
	start, end := "12:30", "13:30"
	_, err := svc.Update(context.Background(), "b1", models.UpdateBookingInput{StartTime: &start, EndTime: &end})
	if !IsKind(err, KindConflict) {
		t.Fatalf("expected conflict when moving onto another booking, got %v", err)
	}
	be, _ := AsBookingError(err)
	if len(be.Conflicts) != 1 || be.Conflicts[0].BookingID != "b2" {
		t.Errorf("conflict should name b2, got %+v", be.Conflicts)
	}
}

func TestUpdateMoveExcludesSelf(t *testing.T) {
	svc, repo := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending))

	// Shifting within the booking's own range must not self-conflict.
	start, end := "10:30", "11:30"
	detail, err := svc.Update(context.Background(), "b1", models.UpdateBookingInput{StartTime: &start, EndTime: &end})
	if err != nil {
		t.Fatalf("a booking must not conflict with itself: %v", err)
	}
	if detail.StartTime != "10:30" || detail.EndTime != "11:30" {
		t.Errorf("times not updated: %s-%s", detail.StartTime, detail.EndTime)
	}
	if detail.Duration != 60 {
		t.Errorf("duration = %d, want 60 re-derived from new times", detail.Duration)
	}
	if repo.bookings["b1"].StartTime != "10:30" {
		t.Error("move was not persisted")
	}
}

func TestUpdateMoveEnforcesLeadTime(t *testing.T) {
	svc, _ := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending))

	// Frozen clock is 08:00 on 2026-05-01; 08:30 the same day is under the
	// lead window.
	date, start, end := "2026-05-01", "08:30", "09:30"
	_, err := svc.Update(context.Background(), "b1", models.UpdateBookingInput{BookingDate: &date, StartTime: &start, EndTime: &end})
	if !IsKind(err, KindValidation) {
		t.Errorf("moving under the lead window should be rejected, got %v", err)
	}
}

func TestUpdateInvalidPatchRejected(t *testing.T) {
	svc, _ := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending))

	badStart := "11:00"
	badEnd := "10:00"
	if _, err := svc.Update(context.Background(), "b1", models.UpdateBookingInput{StartTime: &badStart, EndTime: &badEnd}); !IsKind(err, KindValidation) {
		t.Errorf("inverted times should be rejected, got %v", err)
	}

	badType := "tournament"
	if _, err := svc.Update(context.Background(), "b1", models.UpdateBookingInput{BookingType: &badType}); !IsKind(err, KindValidation) {
		t.Errorf("invalid type should be rejected, got %v", err)
	}
}

func TestDeleteBooking(t *testing.T) {
	svc, repo := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending))

	if err := svc.Delete(context.Background(), "b1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := repo.bookings["b1"]; ok {
		t.Error("booking was not removed")
	}
	if err := svc.Delete(context.Background(), "b1"); !IsKind(err, KindNotFound) {
		t.Errorf("deleting a missing booking: expected not_found, got %v", err)
	}
}

func TestRealClockDefault(t *testing.T) {
	svc, _ := newTestService()
	svc.Now = nil

	// With the real clock, a booking far in the future still passes the
	// temporal checks.
	input := validCreateInput()
	input.BookingDate = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("Create with real clock failed: %v", err)
	}
}
