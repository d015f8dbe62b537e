package payment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
)

type PaymentStatusOutput struct {
	PaymentStatus string     `json:"payment_status"`
	PaidAt        *time.Time `json:"paid_at"`
}

type GetPaymentStatus struct {
	repo domain.Repository
}

func NewGetPaymentStatus(repo domain.Repository) *GetPaymentStatus {
	return &GetPaymentStatus{repo: repo}
}

func (uc *GetPaymentStatus) Execute(
	ctx context.Context,
	bookingID uint,
	callerEmail string,
) (*PaymentStatusOutput, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if !domain.IsParty(b, callerEmail) {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	return &PaymentStatusOutput{
		PaymentStatus: b.PaymentStatus,
		PaidAt:        b.PaidAt,
	}, nil
}
