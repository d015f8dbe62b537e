package booking

import (
	"context"

	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Só o aluno ou o tutor da aula enxergam a reserva
func (uc *GetBooking) Execute(
	ctx context.Context,
	bookingID uint,
	callerEmail string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if !domain.IsParty(b, callerEmail) {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	return b, nil
}
