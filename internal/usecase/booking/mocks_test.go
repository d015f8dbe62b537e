package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

// Mocks no estilo testify/mock

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) SetTrialUsed(ctx context.Context, studentID uint) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

func (m *MockRepository) GetTutorProfile(ctx context.Context, tutorID uint) (*models.TutorProfile, error) {
	args := m.Called(ctx, tutorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TutorProfile), args.Error(1)
}

func (m *MockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) CreateSeriesBookings(ctx context.Context, bs []*models.Booking) error {
	args := m.Called(ctx, bs)
	return args.Error(0)
}

func (m *MockRepository) HasSlotConflict(ctx context.Context, tutorID uint, date, hhmm string) (bool, error) {
	args := m.Called(ctx, tutorID, date, hhmm)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) ReplaceBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) ListSeries(ctx context.Context, seriesID string) ([]models.Booking, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) ListBookingsForTutorByDate(ctx context.Context, tutorID uint, date string) ([]models.Booking, error) {
	args := m.Called(ctx, tutorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) ListCompletionCandidates(ctx context.Context, cutoffDate string) ([]models.Booking, error) {
	args := m.Called(ctx, cutoffDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

type MockSlotLocker struct {
	mock.Mock
}

func (m *MockSlotLocker) AcquireSlot(ctx context.Context, tutorID uint, date, hhmm string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, tutorID, date, hhmm, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlotLocker) ReleaseSlot(ctx context.Context, tutorID uint, date, hhmm string) error {
	args := m.Called(ctx, tutorID, date, hhmm)
	return args.Error(0)
}
