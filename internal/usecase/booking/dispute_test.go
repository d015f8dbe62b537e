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

var disputeNow = time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)

func paidBooking(status domain.Status) *models.Booking {
	b := bookingFixture(status)
	b.PaymentStatus = string(domain.PaymentPaid)
	return b
}

func TestDisputeSession(t *testing.T) {
	repo := new(MockRepository)
	uc := NewDisputeSession(repo, audit.NewDispatcher(nil))

	repo.On("GetBooking", mock.Anything, uint(7)).Return(paidBooking(domain.StatusConfirmed), nil)
	repo.On("ReplaceBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	b, err := uc.Execute(context.Background(), 7, "ana@example.com", "tutor não apareceu", disputeNow)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusDisputed), b.Status)
	assert.Equal(t, "tutor não apareceu", b.DisputeReason)
	assert.Equal(t, "ana@example.com", b.DisputedBy)
}

func TestDisputeSession_BlankReason(t *testing.T) {
	repo := new(MockRepository)
	uc := NewDisputeSession(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 7, "ana@example.com", "   ", disputeNow)

	assert.True(t, httperr.IsBusiness(err, "missing_reason"))
	repo.AssertNotCalled(t, "GetBooking", mock.Anything, mock.Anything)
}

func TestDisputeSession_TutorCannotDispute(t *testing.T) {
	repo := new(MockRepository)
	uc := NewDisputeSession(repo, audit.NewDispatcher(nil))

	repo.On("GetBooking", mock.Anything, uint(7)).Return(paidBooking(domain.StatusConfirmed), nil)

	_, err := uc.Execute(context.Background(), 7, "tiago@example.com", "motivo", disputeNow)

	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
	repo.AssertNotCalled(t, "ReplaceBooking", mock.Anything, mock.Anything)
}

func TestDisputeSession_UnpaidRejected(t *testing.T) {
	repo := new(MockRepository)
	uc := NewDisputeSession(repo, audit.NewDispatcher(nil))

	repo.On("GetBooking", mock.Anything, uint(7)).Return(bookingFixture(domain.StatusConfirmed), nil)

	_, err := uc.Execute(context.Background(), 7, "ana@example.com", "motivo", disputeNow)

	assert.True(t, httperr.IsBusiness(err, "not_paid"))
}

func TestAttachMeetingLink(t *testing.T) {
	repo := new(MockRepository)
	uc := NewAttachMeetingLink(repo, audit.NewDispatcher(nil))

	repo.On("GetBooking", mock.Anything, uint(7)).Return(bookingFixture(domain.StatusConfirmed), nil)
	repo.On("ReplaceBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	b, err := uc.Execute(context.Background(), 7, "tiago@example.com", "https://meet.example.com/abc", disputeNow)

	require.NoError(t, err)
	assert.Equal(t, "https://meet.example.com/abc", b.MeetingLink)
	require.NotNil(t, b.MeetingLinkAddedAt)
}

func TestAttachMeetingLink_Guards(t *testing.T) {
	repo := new(MockRepository)
	uc := NewAttachMeetingLink(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 7, "tiago@example.com", "notaurl", disputeNow)
	assert.True(t, httperr.IsBusiness(err, "invalid_link"))

	repo.On("GetBooking", mock.Anything, uint(7)).Return(bookingFixture(domain.StatusConfirmed), nil)

	// aluno não anexa link
	_, err = uc.Execute(context.Background(), 7, "ana@example.com", "https://meet.example.com/abc", disputeNow)
	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
}

func TestGetBooking_PartyOnly(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetBooking(repo)

	repo.On("GetBooking", mock.Anything, uint(7)).Return(bookingFixture(domain.StatusConfirmed), nil)

	b, err := uc.Execute(context.Background(), 7, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint(7), b.ID)

	_, err = uc.Execute(context.Background(), 7, "intruso@example.com")
	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
}
