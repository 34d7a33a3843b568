package booking

import (
	"context"
	"testing"

	"pitchbook/models"
)

func TestCheckAvailabilityFree(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.CheckAvailability(context.Background(), "ground-1", 1, "2026-05-02", "10:00", "11:00")
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if !result.Available {
		t.Error("empty slot should be available")
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("expected no conflicts, got %+v", result.Conflicts)
	}
}

func TestCheckAvailabilityConflicts(t *testing.T) {
	svc, _ := newTestService(
		existingBooking("b1", "2026-05-02", "09:30", "10:30", models.BookingStatusConfirmed),
		existingBooking("b2", "2026-05-02", "10:30", "11:30", models.BookingStatusPending),
		existingBooking("b3", "2026-05-02", "10:00", "11:00", models.BookingStatusCancelled),
	)

	result, err := svc.CheckAvailability(context.Background(), "ground-1", 1, "2026-05-02", "10:00", "11:00")
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if result.Available {
		t.Error("overlapped slot should not be available")
	}
	if len(result.Conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %d", len(result.Conflicts))
	}
	// Repository returns conflicts ordered by start time.
	if result.Conflicts[0].BookingID != "b1" || result.Conflicts[1].BookingID != "b2" {
		t.Errorf("unexpected conflict order: %+v", result.Conflicts)
	}
	if result.Conflicts[0].CustomerName != "Asha Rao" {
		t.Errorf("customer name not resolved: %+v", result.Conflicts[0])
	}
}

func TestCheckAvailabilityBoundaryDoesNotConflict(t *testing.T) {
	svc, _ := newTestService(existingBooking("b1", "2026-05-02", "09:00", "10:00", models.BookingStatusConfirmed))

	result, err := svc.CheckAvailability(context.Background(), "ground-1", 1, "2026-05-02", "10:00", "11:00")
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if !result.Available {
		t.Error("a booking ending exactly at the requested start must not conflict")
	}
}

func TestCheckAvailabilityNormalizesInput(t *testing.T) {
	svc, _ := newTestService(existingBooking("b1", "2026-05-02", "09:30", "10:30", models.BookingStatusConfirmed))

	// Unpadded clock values still hit the stored zero-padded range.
	result, err := svc.CheckAvailability(context.Background(), "ground-1", 0, "2026-05-02", "9:45", "10:15")
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if result.Available {
		t.Error("unpadded input should still detect the overlap")
	}
}

func TestCheckAvailabilityValidation(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name                       string
		groundID, date, start, end string
	}{
		{"missing ground", "", "2026-05-02", "10:00", "11:00"},
		{"bad date", "ground-1", "tomorrow", "10:00", "11:00"},
		{"bad start", "ground-1", "2026-05-02", "later", "11:00"},
		{"inverted range", "ground-1", "2026-05-02", "11:00", "10:00"},
	}
	for _, tc := range cases {
		if _, err := svc.CheckAvailability(context.Background(), tc.groundID, 1, tc.date, tc.start, tc.end); !IsKind(err, KindValidation) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}
