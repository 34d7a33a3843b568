package booking

import (
	"context"
	"sort"
	"time"

	bookingRepo "pitchbook/database/repository/booking"
	groundRepo "pitchbook/database/repository/ground"
	paymentRepo "pitchbook/database/repository/payment"
	userRepo "pitchbook/database/repository/user"
	"pitchbook/models"
)

// testNow is the frozen clock used across tests: 08:00 on 2026-05-01.
var testNow = time.Date(2026, 5, 1, 8, 0, 0, 0, time.Local)

type stubBookingRepo struct {
	bookings  map[string]*models.Booking
	createErr error
	updateErr error
}

func newStubBookingRepo(bookings ...*models.Booking) *stubBookingRepo {
	r := &stubBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		copied := *b
		r.bookings[b.ID] = &copied
	}
	return r
}

func (r *stubBookingRepo) Create(_ context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *stubBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *stubBookingRepo) Update(_ context.Context, b *models.Booking) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.bookings[b.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *stubBookingRepo) List(_ context.Context, f models.BookingFilter) ([]models.Booking, int64, error) {
	var matched []models.Booking
	for _, b := range r.bookings {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Type != "" && b.BookingType != f.Type {
			continue
		}
		if f.CustomerID != "" && b.CustomerID != f.CustomerID {
			continue
		}
		if f.GroundID != "" && b.GroundID != f.GroundID {
			continue
		}
		if f.FromDate != "" && b.BookingDate < f.FromDate {
			continue
		}
		if f.ToDate != "" && b.BookingDate > f.ToDate {
			continue
		}
		matched = append(matched, *b)
	}
	total := int64(len(matched))

	start := (f.Page - 1) * f.Limit
	if start > len(matched) {
		return nil, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// FindOverlapping mirrors the Mongo query: same ground/slot/date, status not
// cancelled, half-open interval intersection on zero-padded clock strings.
func (r *stubBookingRepo) FindOverlapping(_ context.Context, groundID string, slot int, date, startTime, endTime, excludeID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.GroundID != groundID || b.GroundSlot != slot || b.BookingDate != date {
			continue
		}
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if b.StartTime < endTime && b.EndTime > startTime {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

type stubGroundRepo struct {
	grounds map[string]*models.Ground
}

func newStubGroundRepo(grounds ...*models.Ground) *stubGroundRepo {
	r := &stubGroundRepo{grounds: make(map[string]*models.Ground)}
	for _, g := range grounds {
		copied := *g
		r.grounds[g.ID] = &copied
	}
	return r
}

func (r *stubGroundRepo) GetByID(_ context.Context, id string) (*models.Ground, error) {
	g, ok := r.grounds[id]
	if !ok {
		return nil, groundRepo.ErrGroundNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *stubGroundRepo) List(_ context.Context, activeOnly bool) ([]models.Ground, error) {
	var out []models.Ground
	for _, g := range r.grounds {
		if activeOnly && !g.Active {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGroundRepo) Create(_ context.Context, g *models.Ground) error {
	copied := *g
	r.grounds[g.ID] = &copied
	return nil
}

func (r *stubGroundRepo) Update(_ context.Context, g *models.Ground) error {
	if _, ok := r.grounds[g.ID]; !ok {
		return groundRepo.ErrGroundNotFound
	}
	copied := *g
	r.grounds[g.ID] = &copied
	return nil
}

type stubUserRepo struct {
	users map[string]*models.User
}

func newStubUserRepo(users ...*models.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		copied := *u
		r.users[u.ID] = &copied
	}
	return r
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

type stubPaymentRepo struct {
	payments map[string]*models.Payment
}

func newStubPaymentRepo(payments ...*models.Payment) *stubPaymentRepo {
	r := &stubPaymentRepo{payments: make(map[string]*models.Payment)}
	for _, p := range payments {
		copied := *p
		r.payments[p.ID] = &copied
	}
	return r
}

func (r *stubPaymentRepo) Create(_ context.Context, p *models.Payment) error {
	copied := *p
	r.payments[p.ID] = &copied
	return nil
}

func (r *stubPaymentRepo) GetByID(_ context.Context, id string) (*models.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *stubPaymentRepo) Update(_ context.Context, p *models.Payment) error {
	if _, ok := r.payments[p.ID]; !ok {
		return paymentRepo.ErrPaymentNotFound
	}
	copied := *p
	r.payments[p.ID] = &copied
	return nil
}

// stubLocker records acquisitions and can be told to deny the lock.
type stubLocker struct {
	deny     bool
	acquired int
	released int
}

func (l *stubLocker) Acquire(_ context.Context, _ string, _ time.Duration) (func(), bool, error) {
	if l.deny {
		return nil, false, nil
	}
	l.acquired++
	return func() { l.released++ }, true, nil
}

type stubNotifier struct {
	confirmed []string
	cancelled []string
	reminders []string
}

func (n *stubNotifier) SendBookingConfirmed(_ context.Context, b *models.Booking) error {
	n.confirmed = append(n.confirmed, b.ID)
	return nil
}

func (n *stubNotifier) SendBookingCancelled(_ context.Context, b *models.Booking, _ string) error {
	n.cancelled = append(n.cancelled, b.ID)
	return nil
}

func (n *stubNotifier) SendBookingReminder(_ context.Context, b *models.Booking) error {
	n.reminders = append(n.reminders, b.ID)
	return nil
}

type stubReminders struct {
	scheduled []string
}

func (r *stubReminders) ScheduleReminder(_ context.Context, b *models.Booking) error {
	r.scheduled = append(r.scheduled, b.ID)
	return nil
}

func testGround() *models.Ground {
	return &models.Ground{
		ID:        "ground-1",
		Name:      "City Oval",
		SlotCount: 3,
		OpenTime:  "06:00",
		CloseTime: "22:00",
		Active:    true,
	}
}

func testUser() *models.User {
	return &models.User{ID: "user-1", Name: "Asha Rao", Email: "asha@example.com"}
}

func newTestService(bookings ...*models.Booking) (*DefaultBookingService, *stubBookingRepo) {
	repo := newStubBookingRepo(bookings...)
	svc := &DefaultBookingService{
		Repo:        repo,
		GroundRepo:  newStubGroundRepo(testGround()),
		UserRepo:    newStubUserRepo(testUser()),
		PaymentRepo: newStubPaymentRepo(),
		Now:         func() time.Time { return testNow },
	}
	return svc, repo
}

func validCreateInput() models.CreateBookingInput {
	return models.CreateBookingInput{
		CustomerID:  "user-1",
		GroundID:    "ground-1",
		BookingDate: "2026-05-02",
		StartTime:   "10:00",
		EndTime:     "11:00",
		BookingType: models.BookingTypePractice,
		Amount:      1200,
	}
}

func existingBooking(id, date, start, end, status string) *models.Booking {
	return &models.Booking{
		ID:          id,
		GroundID:    "ground-1",
		GroundSlot:  1,
		CustomerID:  "user-1",
		BookingDate: date,
		StartTime:   start,
		EndTime:     end,
		Duration:    clockToMinutes(end) - clockToMinutes(start),
		BookingType: models.BookingTypeMatch,
		Status:      status,
		Amount:      1000,
		CreatedAt:   testNow.Add(-24 * time.Hour),
	}
}
