package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
)

const trialPrice = 9.90

func TestCreateCheckout(t *testing.T) {
	repo := newFakeRepo()
	gateway := &fakeGateway{}
	uc := NewCreateCheckout(repo, gateway, audit.NewDispatcher(nil), trialPrice)

	seedPendingBooking(repo)
	repo.bookings[7].HourlyRate = 50
	repo.bookings[7].DurationMinutes = 90

	session, err := uc.Execute(context.Background(), 7, "ana@example.com", false)

	require.NoError(t, err)
	assert.Equal(t, "pref-1", session.Ref)
	assert.NotEmpty(t, session.CheckoutURL)

	assert.InDelta(t, 75.0, gateway.lastAmount, 1e-9)
	assert.False(t, gateway.lastTrial)

	b := repo.bookings[7]
	assert.InDelta(t, 75.0, b.PaymentAmount, 1e-9)
	assert.Equal(t, "pref-1", b.CheckoutRef)
	// paid só chega via webhook
	assert.Equal(t, string(domain.PaymentPending), b.PaymentStatus)
}

func TestCreateCheckout_TrialPrice(t *testing.T) {
	repo := newFakeRepo()
	gateway := &fakeGateway{}
	uc := NewCreateCheckout(repo, gateway, audit.NewDispatcher(nil), trialPrice)

	seedPendingBooking(repo)
	repo.bookings[7].HourlyRate = 50
	repo.bookings[7].DurationMinutes = 60

	session, err := uc.Execute(context.Background(), 7, "ana@example.com", true)

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.InDelta(t, trialPrice, gateway.lastAmount, 1e-9)
	assert.True(t, gateway.lastTrial)
	assert.True(t, repo.bookings[7].IsTrial)
}

func TestCreateCheckout_TrialAlreadyUsedFallsBackToFullPrice(t *testing.T) {
	repo := newFakeRepo()
	gateway := &fakeGateway{}
	uc := NewCreateCheckout(repo, gateway, audit.NewDispatcher(nil), trialPrice)

	seedPendingBooking(repo)
	repo.users[10].HasUsedTrial = true
	repo.bookings[7].HourlyRate = 50
	repo.bookings[7].DurationMinutes = 60

	_, err := uc.Execute(context.Background(), 7, "ana@example.com", true)

	require.NoError(t, err)
	assert.InDelta(t, 50.0, gateway.lastAmount, 1e-9)
	assert.False(t, gateway.lastTrial)
	assert.False(t, repo.bookings[7].IsTrial)
}

func TestCreateCheckout_OnlyStudentPays(t *testing.T) {
	repo := newFakeRepo()
	gateway := &fakeGateway{}
	uc := NewCreateCheckout(repo, gateway, audit.NewDispatcher(nil), trialPrice)

	seedPendingBooking(repo)

	_, err := uc.Execute(context.Background(), 7, "tiago@example.com", false)

	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
	assert.Equal(t, 0, gateway.sessions)
}

func TestCreateCheckout_AlreadyPaid(t *testing.T) {
	repo := newFakeRepo()
	gateway := &fakeGateway{}
	uc := NewCreateCheckout(repo, gateway, audit.NewDispatcher(nil), trialPrice)

	seedPendingBooking(repo)
	repo.bookings[7].PaymentStatus = string(domain.PaymentPaid)

	_, err := uc.Execute(context.Background(), 7, "ana@example.com", false)

	assert.True(t, httperr.IsBusiness(err, "already_paid"))
	assert.Equal(t, 0, gateway.sessions)
}

func TestGetPaymentStatus(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetPaymentStatus(repo)

	seedPendingBooking(repo)
	repo.bookings[7].TutorEmail = "tiago@example.com"

	out, err := uc.Execute(context.Background(), 7, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentPending), out.PaymentStatus)
	assert.Nil(t, out.PaidAt)

	// tutor também enxerga
	_, err = uc.Execute(context.Background(), 7, "tiago@example.com")
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), 7, "intruso@example.com")
	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
}
