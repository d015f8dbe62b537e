package payment

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
	"github.com/BruksfildServices01/tutor-scheduler/internal/notify"
	"github.com/BruksfildServices01/tutor-scheduler/internal/payments"
)

// fakeRepo guarda estado entre chamadas, pro teste de idempotência
// enxergar o efeito da primeira entrega na segunda.
type fakeRepo struct {
	users    map[uint]*models.User
	bookings map[uint]*models.Booking

	trialUsedCalls  int
	replaceCalls    int
	failNextReplace bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[uint]*models.User{},
		bookings: map[uint]*models.Booking{},
	}
}

func (f *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copy := *u
	return &copy, nil
}

func (f *fakeRepo) SetTrialUsed(ctx context.Context, studentID uint) error {
	f.trialUsedCalls++
	u, ok := f.users[studentID]
	if !ok {
		return errors.New("not found")
	}
	// UPDATE guardado: só escreve se ainda for false
	if !u.HasUsedTrial {
		u.HasUsedTrial = true
	}
	return nil
}

func (f *fakeRepo) GetTutorProfile(ctx context.Context, tutorID uint) (*models.TutorProfile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) CreateSeriesBookings(ctx context.Context, bs []*models.Booking) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) HasSlotConflict(ctx context.Context, tutorID uint, date, hhmm string) (bool, error) {
	return false, nil
}

func (f *fakeRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copy := *b
	return &copy, nil
}

func (f *fakeRepo) ReplaceBooking(ctx context.Context, b *models.Booking) error {
	f.replaceCalls++
	if f.failNextReplace {
		f.failNextReplace = false
		return fmt.Errorf("stale record")
	}
	copy := *b
	f.bookings[b.ID] = &copy
	return nil
}

func (f *fakeRepo) ListSeries(ctx context.Context, seriesID string) ([]models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) ListBookingsForTutorByDate(ctx context.Context, tutorID uint, date string) ([]models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) ListCompletionCandidates(ctx context.Context, cutoffDate string) ([]models.Booking, error) {
	return nil, errors.New("not implemented")
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeGateway struct {
	sessions   int
	lastAmount float64
	lastTrial  bool
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, bookingID, studentID uint, title string, amount float64, isTrial bool) (*payments.CheckoutSession, error) {
	g.sessions++
	g.lastAmount = amount
	g.lastTrial = isTrial
	return &payments.CheckoutSession{
		Ref:         fmt.Sprintf("pref-%d", g.sessions),
		CheckoutURL: "https://checkout.example.com/pref",
	}, nil
}

func (g *fakeGateway) FetchPayment(ctx context.Context, paymentID int) (*payments.ConfirmedPayment, error) {
	return nil, errors.New("not implemented")
}

var _ payments.Gateway = (*fakeGateway)(nil)

type fakeNotifier struct {
	sent []notify.BookingConfirmation
	fail bool
}

func (n *fakeNotifier) SendBookingConfirmation(c notify.BookingConfirmation) error {
	if n.fail {
		return errors.New("smtp down")
	}
	n.sent = append(n.sent, c)
	return nil
}

var _ notify.Notifier = (*fakeNotifier)(nil)
