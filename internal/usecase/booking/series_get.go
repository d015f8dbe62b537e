package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

type SeriesStats struct {
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
	Cancelled int `json:"cancelled"`
}

type GetSeriesOutput struct {
	Bookings []models.Booking `json:"bookings"`
	Stats    SeriesStats      `json:"stats"`
}

type GetSeries struct {
	repo domain.Repository
}

func NewGetSeries(repo domain.Repository) *GetSeries {
	return &GetSeries{repo: repo}
}

func (uc *GetSeries) Execute(
	ctx context.Context,
	seriesID string,
	callerEmail string,
	now time.Time,
) (*GetSeriesOutput, error) {

	bs, err := uc.repo.ListSeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	if len(bs) == 0 {
		return nil, httperr.ErrBusiness("series_not_found")
	}

	// todos os membros compartilham aluno e tutor
	if !domain.IsParty(&bs[0], callerEmail) {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	today := now.Format(domain.DateLayout)

	var stats SeriesStats
	for _, b := range bs {
		switch b.Status {
		case string(domain.StatusCompleted):
			stats.Completed++
		case string(domain.StatusCancelled):
			stats.Cancelled++
		case string(domain.StatusConfirmed):
			if b.Date >= today {
				stats.Upcoming++
			}
		}
	}

	return &GetSeriesOutput{Bookings: bs, Stats: stats}, nil
}
