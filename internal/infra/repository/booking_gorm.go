package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) SetTrialUsed(
	ctx context.Context,
	studentID uint,
) error {

	// UPDATE direto: aplicar duas vezes dá no mesmo resultado
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND has_used_trial = false", studentID).
		Update("has_used_trial", true).Error
}

// --------------------------------------------------
// Tutor
// --------------------------------------------------

func (r *BookingGormRepository) GetTutorProfile(
	ctx context.Context,
	tutorID uint,
) (*models.TutorProfile, error) {

	var profile models.TutorProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND active = true", tutorID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Create(b).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *BookingGormRepository) CreateSeriesBookings(
	ctx context.Context,
	bs []*models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range bs {
			if err := tx.Create(b).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *BookingGormRepository) HasSlotConflict(
	ctx context.Context,
	tutorID uint,
	date string,
	hhmm string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"tutor_id = ? AND date = ? AND time = ? AND status <> 'cancelled'",
			tutorID,
			date,
			hhmm,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) ReplaceBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	readVersion := b.Version
	b.Version = readVersion + 1

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND version = ?", b.ID, readVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(b)

	if res.Error != nil {
		b.Version = readVersion
		return res.Error
	}

	// Ninguém atualizado = versão lida está velha
	if res.RowsAffected == 0 {
		b.Version = readVersion
		return httperr.ErrBusiness("stale_record")
	}

	return nil
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *BookingGormRepository) ListSeries(
	ctx context.Context,
	seriesID string,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Where("series_id = ?", seriesID).
		Order("series_index ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}

	return bs, nil
}

func (r *BookingGormRepository) ListBookingsForTutorByDate(
	ctx context.Context,
	tutorID uint,
	date string,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Where("tutor_id = ? AND date = ?", tutorID, date).
		Order("time ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}

	return bs, nil
}

func (r *BookingGormRepository) ListCompletionCandidates(
	ctx context.Context,
	cutoffDate string,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"payment_status = 'paid' AND status = 'confirmed' AND date <= ?",
			cutoffDate,
		).
		Order("date ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}

	return bs, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
