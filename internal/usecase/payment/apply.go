package payment

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/notify"
	"github.com/BruksfildServices01/tutor-scheduler/internal/payments"
)

// ApplyPayment processa a notificação do provedor. Entrega é at-least-once:
// aplicar a mesma notificação duas vezes tem que dar no mesmo estado.
type ApplyPayment struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
}

func NewApplyPayment(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
) *ApplyPayment {
	return &ApplyPayment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *ApplyPayment) Execute(
	ctx context.Context,
	p payments.ConfirmedPayment,
	now time.Time,
) error {

	b, err := uc.repo.GetBooking(ctx, p.BookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	// Redelivery de notificação já aplicada: não é erro
	if b.PaymentStatus == string(domain.PaymentPaid) {
		return nil
	}

	// Trial antes do paid: se o replace abaixo falhar, o redelivery
	// repete os dois passos e o UPDATE guardado continua idempotente
	if p.WasTrial {
		if err := uc.repo.SetTrialUsed(ctx, p.StudentID); err != nil {
			return err
		}
	}

	if err := domain.MarkPaid(b, now, p.Ref); err != nil {
		return err
	}

	if err := uc.repo.ReplaceBooking(ctx, b); err != nil {
		// stale = corrida com outra entrega; o provedor vai reentregar
		return err
	}

	// Confirmação é fire-and-forget: falha de e-mail não desfaz pagamento
	if err := uc.notifier.SendBookingConfirmation(notify.BookingConfirmation{
		StudentEmail: b.StudentEmail,
		TutorName:    b.TutorName,
		Date:         b.Date,
		Time:         b.Time,
		Amount:       b.PaymentAmount,
	}); err != nil {
		log.Printf("payment %s: confirmation failed: %v", p.Ref, err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &b.StudentID,
		Action:   "payment_applied",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"ref": p.Ref, "trial": p.WasTrial},
	})

	return nil
}
