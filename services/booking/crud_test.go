package booking

import (
	"context"
	"testing"

	"pitchbook/models"
)

func TestGetByIDEnriches(t *testing.T) {
	svc, _ := newTestService(existingBooking("b1", "2026-05-02", "10:00", "11:00", models.BookingStatusPending))

	detail, err := svc.GetByID(context.Background(), "b1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if detail.Ground == nil || detail.Ground.ID != "ground-1" {
		t.Errorf("expected embedded ground, got %+v", detail.Ground)
	}
	if detail.Customer == nil || detail.Customer.ID != "user-1" {
		t.Errorf("expected embedded customer, got %+v", detail.Customer)
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !IsKind(err, KindNotFound) {
		t.Errorf("expected not_found for unknown id, got %v", err)
	}
}

func TestListValidatesFilter(t *testing.T) {
	svc, _ := newTestService()

	if _, _, err := svc.List(context.Background(), models.BookingFilter{Status: "archived"}); !IsKind(err, KindValidation) {
		t.Errorf("invalid status filter: expected validation error, got %v", err)
	}
	if _, _, err := svc.List(context.Background(), models.BookingFilter{Type: "friendly"}); !IsKind(err, KindValidation) {
		t.Errorf("invalid type filter: expected validation error, got %v", err)
	}
}

func TestListPaginationMeta(t *testing.T) {
	svc, _ := newTestService(
		existingBooking("b1", "2026-05-02", "08:00", "09:00", models.BookingStatusPending),
		existingBooking("b2", "2026-05-02", "09:00", "10:00", models.BookingStatusPending),
		existingBooking("b3", "2026-05-02", "10:00", "11:00", models.BookingStatusConfirmed),
		existingBooking("b4", "2026-05-03", "10:00", "11:00", models.BookingStatusCancelled),
		existingBooking("b5", "2026-05-04", "10:00", "11:00", models.BookingStatusPending),
	)

	details, meta, err := svc.List(context.Background(), models.BookingFilter{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(details) != 2 {
		t.Errorf("page size = %d, want 2", len(details))
	}
	if meta.Total != 5 || meta.Pages != 3 || meta.Page != 1 || meta.Limit != 2 {
		t.Errorf("meta = %+v, want total 5 over 3 pages", meta)
	}
}

func TestListStatusFilter(t *testing.T) {
	svc, _ := newTestService(
		existingBooking("b1", "2026-05-02", "08:00", "09:00", models.BookingStatusPending),
		existingBooking("b2", "2026-05-02", "09:00", "10:00", models.BookingStatusConfirmed),
		existingBooking("b3", "2026-05-03", "10:00", "11:00", models.BookingStatusConfirmed),
	)

	details, meta, err := svc.List(context.Background(), models.BookingFilter{Status: models.BookingStatusConfirmed})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if meta.Total != 2 || len(details) != 2 {
		t.Fatalf("got %d/%d confirmed bookings, want 2", len(details), meta.Total)
	}
	for _, d := range details {
		if d.Status != models.BookingStatusConfirmed {
			t.Errorf("filter leaked a %s booking", d.Status)
		}
	}
}

func TestListEmptyResult(t *testing.T) {
	svc, _ := newTestService()

	details, meta, err := svc.List(context.Background(), models.BookingFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("expected empty page, got %d", len(details))
	}
	if meta.Total != 0 || meta.Pages != 0 {
		t.Errorf("meta = %+v, want zero totals", meta)
	}
	if meta.Page != 1 || meta.Limit != 10 {
		t.Errorf("meta = %+v, want defaulted page 1 limit 10", meta)
	}
}
