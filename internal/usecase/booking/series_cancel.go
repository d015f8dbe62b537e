package booking

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
)

type CancelSeries struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelSeries(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelSeries {
	return &CancelSeries{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancela só as aulas confirmadas de hoje em diante.
// Passadas, concluídas, contestadas e já canceladas ficam como estão.
// Falha em um membro não derruba os demais.
func (uc *CancelSeries) Execute(
	ctx context.Context,
	seriesID string,
	callerEmail string,
	now time.Time,
) (int, error) {

	bs, err := uc.repo.ListSeries(ctx, seriesID)
	if err != nil {
		return 0, err
	}
	if len(bs) == 0 {
		return 0, httperr.ErrBusiness("series_not_found")
	}

	if !domain.IsParty(&bs[0], callerEmail) {
		return 0, httperr.ErrBusiness("not_allowed")
	}

	today := now.Format(domain.DateLayout)

	cancelled := 0
	for i := range bs {
		b := &bs[i]

		if b.Status != string(domain.StatusConfirmed) || b.Date < today {
			continue
		}

		if err := domain.Cancel(b, now, callerEmail); err != nil {
			continue
		}

		if err := uc.repo.ReplaceBooking(ctx, b); err != nil {
			log.Printf("cancel series %s: booking %d: %v", seriesID, b.ID, err)
			continue
		}

		cancelled++
	}

	uc.audit.Dispatch(audit.Event{
		Action: "series_cancelled",
		Entity: "series",
		Metadata: map[string]any{
			"series_id": seriesID,
			"cancelled": cancelled,
		},
	})

	return cancelled, nil
}
