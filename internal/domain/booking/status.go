package booking

import "github.com/BruksfildServices01/tutor-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusDisputed  Status = "disputed"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// ===============================
// Validations
// ===============================

// CanCancel define se uma aula pode ser cancelada.
// Aula já cancelada é tratada como no-op pelo caso de uso, não chega aqui.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se uma aula pode ser concluída (só paga + confirmada)
func CanComplete(current Status, payment PaymentStatus) error {
	if current != StatusConfirmed || payment != PaymentPaid {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanDispute: precisa estar paga; cancelada/contestada não contesta de novo
func CanDispute(current Status, payment PaymentStatus) error {
	if payment != PaymentPaid {
		return httperr.ErrBusiness("not_paid")
	}
	if current == StatusDisputed || current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMarkPaid: pending → paid, um sentido só
func CanMarkPaid(payment PaymentStatus) error {
	if payment != PaymentPending {
		return httperr.ErrBusiness("already_paid")
	}
	return nil
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusConfirmed
}
