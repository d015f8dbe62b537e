package booking

import (
	"context"

	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

type Repository interface {
	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// SetTrialUsed marca hasUsedTrial=true; idempotente por construção
	SetTrialUsed(
		ctx context.Context,
		studentID uint,
	) error

	// -------- Tutor --------
	GetTutorProfile(
		ctx context.Context,
		tutorID uint,
	) (*models.TutorProfile, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// CreateSeriesBookings grava todos os membros numa transação:
	// qualquer violação de slot desfaz a série inteira
	CreateSeriesBookings(
		ctx context.Context,
		bs []*models.Booking,
	) error

	HasSlotConflict(
		ctx context.Context,
		tutorID uint,
		date string,
		hhmm string,
	) (bool, error)

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// ReplaceBooking falha com stale_record se a versão lida já mudou
	ReplaceBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Queries --------
	ListSeries(
		ctx context.Context,
		seriesID string,
	) ([]models.Booking, error)

	ListBookingsForTutorByDate(
		ctx context.Context,
		tutorID uint,
		date string,
	) ([]models.Booking, error)

	// ListCompletionCandidates: pagas + confirmadas com data até o corte
	ListCompletionCandidates(
		ctx context.Context,
		cutoffDate string,
	) ([]models.Booking, error)
}
