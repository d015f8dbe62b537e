package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/locks"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

const slotLeaseTTL = 10 * time.Second

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateSeriesInput struct {
	StudentID    uint
	StudentEmail string

	TutorID uint

	StartDate       string
	Time            string
	Weeks           int
	DurationMinutes int
}

type CreateSeriesOutput struct {
	SeriesID string               `json:"series_id"`
	Bookings []models.Booking     `json:"bookings"`
	Pricing  domain.SeriesPricing `json:"pricing"`
}

// SlotConflictError carrega TODAS as datas bloqueadas, não só a primeira
type SlotConflictError struct {
	Dates []string
}

func (e SlotConflictError) Error() string {
	return fmt.Sprintf("slot conflict: %s", strings.Join(e.Dates, ", "))
}

// ======================================================
// USE CASE
// ======================================================

type CreateSeries struct {
	repo   domain.Repository
	locker locks.SlotLocker
	audit  *audit.Dispatcher
}

func NewCreateSeries(
	repo domain.Repository,
	locker locks.SlotLocker,
	audit *audit.Dispatcher,
) *CreateSeries {
	return &CreateSeries{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSeries) Execute(
	ctx context.Context,
	in CreateSeriesInput,
) (*CreateSeriesOutput, error) {

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
	// 3️⃣ Preço do pacote (valida weeks ∈ {1,2,4,8})
	// --------------------------------------------------
	pricing, err := domain.PriceSeries(profile.HourlyRate, in.Weeks)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse(domain.TimeLayout, in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 4️⃣ Datas semanais (startDate + 7*i)
	// --------------------------------------------------
	dates, err := domain.SeriesDates(in.StartDate, in.Weeks)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Lease por slot: serializa check-then-create
	// --------------------------------------------------
	var leased []string
	defer func() {
		for _, d := range leased {
			_ = uc.locker.ReleaseSlot(ctx, in.TutorID, d, in.Time)
		}
	}()

	var conflicts []string
	for _, d := range dates {
		ok, err := uc.locker.AcquireSlot(ctx, in.TutorID, d, in.Time, slotLeaseTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			// alguém está criando neste slot agora
			conflicts = append(conflicts, d)
			continue
		}
		leased = append(leased, d)
	}

	// --------------------------------------------------
	// 6️⃣ Conflito: checa TODAS as datas antes de decidir
	// --------------------------------------------------
	for _, d := range dates {
		busy, err := uc.repo.HasSlotConflict(ctx, in.TutorID, d, in.Time)
		if err != nil {
			return nil, err
		}
		if busy && !contains(conflicts, d) {
			conflicts = append(conflicts, d)
		}
	}

	if len(conflicts) > 0 {
		return nil, SlotConflictError{Dates: conflicts}
	}

	// --------------------------------------------------
	// 7️⃣ Criação atômica da série
	// --------------------------------------------------
	duration := in.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	seriesID := domain.NewSeriesID()

	bs := make([]*models.Booking, 0, in.Weeks)
	for i, d := range dates {
		bs = append(bs, &models.Booking{
			SeriesID:    seriesID,
			SeriesIndex: i + 1,
			SeriesTotal: in.Weeks,

			TutorID:      profile.UserID,
			TutorEmail:   profile.User.Email,
			TutorName:    profile.User.Name,
			StudentID:    student.ID,
			StudentEmail: student.Email,

			Date:            d,
			Time:            in.Time,
			DurationMinutes: duration,

			HourlyRate:    profile.HourlyRate,
			PaymentAmount: pricing.PerLessonPrice,

			Status:        string(domain.InitialStatus()),
			PaymentStatus: string(domain.PaymentPending),
		})
	}

	if err := uc.repo.CreateSeriesBookings(ctx, bs); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID: &in.StudentID,
		Action: "series_created",
		Entity: "series",
		Metadata: map[string]any{
			"series_id": seriesID,
			"weeks":     in.Weeks,
		},
	})

	out := &CreateSeriesOutput{
		SeriesID: seriesID,
		Pricing:  pricing,
		Bookings: make([]models.Booking, 0, len(bs)),
	}
	for _, b := range bs {
		out.Bookings = append(out.Bookings, *b)
	}

	return out, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
