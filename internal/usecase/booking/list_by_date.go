package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

type ListTutorBookingsByDate struct {
	repo domain.Repository
}

func NewListTutorBookingsByDate(repo domain.Repository) *ListTutorBookingsByDate {
	return &ListTutorBookingsByDate{repo: repo}
}

func (uc *ListTutorBookingsByDate) Execute(
	ctx context.Context,
	tutorID uint,
	date string,
) ([]models.Booking, error) {

	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListBookingsForTutorByDate(ctx, tutorID, date)
}
