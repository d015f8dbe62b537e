package booking

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

type DisputeSession struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDisputeSession(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DisputeSession {
	return &DisputeSession{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DisputeSession) Execute(
	ctx context.Context,
	bookingID uint,
	callerEmail string,
	reason string,
	now time.Time,
) (*models.Booking, error) {

	if strings.TrimSpace(reason) == "" {
		return nil, httperr.ErrBusiness("missing_reason")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// Só o aluno contesta a aula
	if b.StudentEmail != callerEmail {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	if err := domain.Dispute(b, now, callerEmail, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.ReplaceBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "session_disputed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
