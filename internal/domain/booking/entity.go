package booking

import (
	"time"

	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time, by string) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	b.CancelledBy = by
	return nil
}

func Complete(b *models.Booking, now time.Time, by string) error {
	if err := CanComplete(Status(b.Status), PaymentStatus(b.PaymentStatus)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	b.CompletedBy = by
	return nil
}

func Dispute(b *models.Booking, now time.Time, by string, reason string) error {
	if err := CanDispute(Status(b.Status), PaymentStatus(b.PaymentStatus)); err != nil {
		return err
	}

	b.Status = string(StatusDisputed)
	b.DisputedAt = &now
	b.DisputedBy = by
	b.DisputeReason = reason
	return nil
}

func MarkPaid(b *models.Booking, now time.Time, paymentRef string) error {
	if err := CanMarkPaid(PaymentStatus(b.PaymentStatus)); err != nil {
		return err
	}

	b.PaymentStatus = string(PaymentPaid)
	b.PaidAt = &now
	b.PaymentRef = paymentRef
	return nil
}

func AttachMeetingLink(b *models.Booking, now time.Time, url string) {
	b.MeetingLink = url
	b.MeetingLinkAddedAt = &now
}

// IsParty diz se o e-mail pertence ao aluno ou ao tutor da reserva
func IsParty(b *models.Booking, email string) bool {
	return b.StudentEmail == email || b.TutorEmail == email
}
