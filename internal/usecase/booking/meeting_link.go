package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
	"github.com/BruksfildServices01/tutor-scheduler/internal/validators"
)

type AttachMeetingLink struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAttachMeetingLink(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AttachMeetingLink {
	return &AttachMeetingLink{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AttachMeetingLink) Execute(
	ctx context.Context,
	bookingID uint,
	callerEmail string,
	link string,
	now time.Time,
) (*models.Booking, error) {

	if !validators.IsMeetingLinkValid(link) {
		return nil, httperr.ErrBusiness("invalid_link")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// Só o tutor da aula anexa o link
	if b.TutorEmail != callerEmail {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	domain.AttachMeetingLink(b, now, link)

	if err := uc.repo.ReplaceBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "meeting_link_added",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
