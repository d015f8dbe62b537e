package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

var cancelNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func bookingFixture(status domain.Status) *models.Booking {
	return &models.Booking{
		ID:            7,
		TutorEmail:    "tiago@example.com",
		StudentEmail:  "ana@example.com",
		Date:          "2024-06-10",
		Time:          "14:00",
		Status:        string(status),
		PaymentStatus: string(domain.PaymentPending),
	}
}

func TestCancelBooking(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelBooking(repo, audit.NewDispatcher(nil))

	repo.On("GetBooking", mock.Anything, uint(7)).Return(bookingFixture(domain.StatusConfirmed), nil)
	repo.On("ReplaceBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	b, err := uc.Execute(context.Background(), 7, "ana@example.com", cancelNow)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), b.Status)
	assert.Equal(t, "ana@example.com", b.CancelledBy)
	repo.AssertExpectations(t)
}

func TestCancelBooking_AlreadyCancelledIsNoop(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelBooking(repo, audit.NewDispatcher(nil))

	already := bookingFixture(domain.StatusCancelled)
	already.CancelledBy = "tiago@example.com"
	repo.On("GetBooking", mock.Anything, uint(7)).Return(already, nil)

	b, err := uc.Execute(context.Background(), 7, "ana@example.com", cancelNow)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), b.Status)
	// quem cancelou primeiro permanece registrado
	assert.Equal(t, "tiago@example.com", b.CancelledBy)
	repo.AssertNotCalled(t, "ReplaceBooking", mock.Anything, mock.Anything)
}

func TestCancelBooking_StrangerForbidden(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelBooking(repo, audit.NewDispatcher(nil))

	repo.On("GetBooking", mock.Anything, uint(7)).Return(bookingFixture(domain.StatusConfirmed), nil)

	_, err := uc.Execute(context.Background(), 7, "intruso@example.com", cancelNow)

	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
	repo.AssertNotCalled(t, "ReplaceBooking", mock.Anything, mock.Anything)
}

func TestCancelBooking_CompletedRejected(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelBooking(repo, audit.NewDispatcher(nil))

	repo.On("GetBooking", mock.Anything, uint(7)).Return(bookingFixture(domain.StatusCompleted), nil)

	_, err := uc.Execute(context.Background(), 7, "ana@example.com", cancelNow)

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
