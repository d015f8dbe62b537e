package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	StudentID    uint
	StudentEmail string

	TutorID uint

	Date            string
	Time            string
	DurationMinutes int

	// Trava de preço no momento da reserva (opcional)
	AmountOverride *float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Aluno (conta suspensa não reserva)
	// --------------------------------------------------
	student, err := uc.repo.GetUserByID(ctx, in.StudentID)
	if err != nil {
		return nil, httperr.ErrBusiness("student_not_found")
	}
	if student.Suspended {
		return nil, httperr.ErrBusiness("student_suspended")
	}

	// --------------------------------------------------
	// 2️⃣ Tutor
	// --------------------------------------------------
	profile, err := uc.repo.GetTutorProfile(ctx, in.TutorID)
	if err != nil {
		return nil, httperr.ErrBusiness("tutor_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Dia + hora bem formados
	// --------------------------------------------------
	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse(domain.TimeLayout, in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 4️⃣ Duração e valor (snapshot, nunca recalculado)
	// --------------------------------------------------
	duration := in.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	amount := profile.HourlyRate * float64(duration) / 60
	if in.AmountOverride != nil {
		amount = *in.AmountOverride
	}

	// --------------------------------------------------
	// 5️⃣ Criação (status centralizado)
	// --------------------------------------------------
	b := &models.Booking{
		TutorID:      profile.UserID,
		TutorEmail:   profile.User.Email,
		TutorName:    profile.User.Name,
		StudentID:    student.ID,
		StudentEmail: student.Email,

		Date:            in.Date,
		Time:            in.Time,
		DurationMinutes: duration,

		HourlyRate:    profile.HourlyRate,
		PaymentAmount: amount,

		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.PaymentPending),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.StudentID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
