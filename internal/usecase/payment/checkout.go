package payment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/payments"
)

// ======================================================
// USE CASE
// ======================================================

type CreateCheckout struct {
	repo       domain.Repository
	gateway    payments.Gateway
	audit      *audit.Dispatcher
	trialPrice float64
}

func NewCreateCheckout(
	repo domain.Repository,
	gateway payments.Gateway,
	audit *audit.Dispatcher,
	trialPrice float64,
) *CreateCheckout {
	return &CreateCheckout{
		repo:       repo,
		gateway:    gateway,
		audit:      audit,
		trialPrice: trialPrice,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateCheckout) Execute(
	ctx context.Context,
	bookingID uint,
	callerEmail string,
	wantsTrial bool,
) (*payments.CheckoutSession, error) {

	// --------------------------------------------------
	// 1️⃣ Reserva (só o aluno paga a própria aula)
	// --------------------------------------------------
	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.StudentEmail != callerEmail {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	if b.PaymentStatus == string(domain.PaymentPaid) {
		return nil, httperr.ErrBusiness("already_paid")
	}

	// --------------------------------------------------
	// 2️⃣ Aula experimental: preço fixo, uma vez por conta
	// --------------------------------------------------
	student, err := uc.repo.GetUserByID(ctx, b.StudentID)
	if err != nil {
		return nil, httperr.ErrBusiness("student_not_found")
	}

	isTrial := wantsTrial && !student.HasUsedTrial

	amount := b.HourlyRate * float64(b.DurationMinutes) / 60
	if isTrial {
		amount = uc.trialPrice
	}

	// --------------------------------------------------
	// 3️⃣ Sessão de checkout no provedor
	// --------------------------------------------------
	session, err := uc.gateway.CreateCheckoutSession(
		ctx,
		b.ID,
		b.StudentID,
		fmt.Sprintf("Aula com %s — %s %s", b.TutorName, b.Date, b.Time),
		amount,
		isTrial,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Valor e referência ficam gravados; paid só via webhook
	// --------------------------------------------------
	b.PaymentAmount = amount
	b.IsTrial = isTrial
	b.CheckoutRef = session.Ref

	if err := uc.repo.ReplaceBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &b.StudentID,
		Action:   "checkout_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return session, nil
}
