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

func seriesMember(id uint, date string, status domain.Status) models.Booking {
	return models.Booking{
		ID:           id,
		SeriesID:     "serie-1",
		TutorEmail:   "tiago@example.com",
		StudentEmail: "ana@example.com",
		Date:         date,
		Time:         "10:00",
		Status:       string(status),
	}
}

func TestCancelSeries_OnlyConfirmedFutureMembers(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelSeries(repo, audit.NewDispatcher(nil))

	now := time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC)

	members := []models.Booking{
		seriesMember(1, "2024-01-01", domain.StatusCompleted),
		seriesMember(2, "2024-01-08", domain.StatusCancelled),
		seriesMember(3, "2024-01-15", domain.StatusConfirmed), // passada
		seriesMember(4, "2024-01-22", domain.StatusConfirmed),
		seriesMember(5, "2024-01-29", domain.StatusConfirmed),
	}

	repo.On("ListSeries", mock.Anything, "serie-1").Return(members, nil)
	repo.On("ReplaceBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	count, err := uc.Execute(context.Background(), "serie-1", "ana@example.com", now)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	repo.AssertNumberOfCalls(t, "ReplaceBooking", 2)
}

func TestCancelSeries_TodayStillCancellable(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelSeries(repo, audit.NewDispatcher(nil))

	now := time.Date(2024, 1, 22, 8, 0, 0, 0, time.UTC)

	repo.On("ListSeries", mock.Anything, "serie-1").Return([]models.Booking{
		seriesMember(4, "2024-01-22", domain.StatusConfirmed),
	}, nil)
	repo.On("ReplaceBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	count, err := uc.Execute(context.Background(), "serie-1", "ana@example.com", now)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCancelSeries_MemberFailureDoesNotAbort(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelSeries(repo, audit.NewDispatcher(nil))

	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	members := []models.Booking{
		seriesMember(1, "2024-01-08", domain.StatusConfirmed),
		seriesMember(2, "2024-01-15", domain.StatusConfirmed),
	}

	repo.On("ListSeries", mock.Anything, "serie-1").Return(members, nil)
	repo.On("ReplaceBooking", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.ID == 1
	})).Return(httperr.ErrBusiness("stale_record"))
	repo.On("ReplaceBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	count, err := uc.Execute(context.Background(), "serie-1", "ana@example.com", now)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCancelSeries_UnknownSeries(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelSeries(repo, audit.NewDispatcher(nil))

	repo.On("ListSeries", mock.Anything, "fantasma").Return([]models.Booking{}, nil)

	_, err := uc.Execute(context.Background(), "fantasma", "ana@example.com", time.Now())

	assert.True(t, httperr.IsBusiness(err, "series_not_found"))
}

func TestCancelSeries_StrangerForbidden(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelSeries(repo, audit.NewDispatcher(nil))

	repo.On("ListSeries", mock.Anything, "serie-1").Return([]models.Booking{
		seriesMember(1, "2024-01-08", domain.StatusConfirmed),
	}, nil)

	_, err := uc.Execute(context.Background(), "serie-1", "intruso@example.com", time.Now())

	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
	repo.AssertNotCalled(t, "ReplaceBooking", mock.Anything, mock.Anything)
}
