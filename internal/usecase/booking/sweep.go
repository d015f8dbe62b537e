package booking

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/tutor-scheduler/internal/domain/booking"
)

// SweepCompletions avança aulas pagas + confirmadas cujo início já passou
// de 24h para completed. Sem cursor: cada execução re-varre por predicado,
// então execução perdida se recupera na próxima.
type SweepCompletions struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewSweepCompletions(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *SweepCompletions {
	return &SweepCompletions{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *SweepCompletions) Execute(
	ctx context.Context,
	now time.Time,
) (int, error) {

	cutoff := now.Add(-24 * time.Hour)

	// Pré-filtro por dia no banco; o corte exato (dia+hora) é aplicado aqui
	candidates, err := uc.repo.ListCompletionCandidates(
		ctx,
		cutoff.In(uc.loc).Format(domain.DateLayout),
	)
	if err != nil {
		return 0, err
	}

	completed := 0
	failed := 0

	for i := range candidates {
		b := &candidates[i]

		start, err := domain.LessonStart(b.Date, b.Time, uc.loc)
		if err != nil {
			log.Printf("sweep: booking %d has bad date/time: %v", b.ID, err)
			failed++
			continue
		}
		if !start.Before(cutoff) {
			continue
		}

		// Guarda de estado segura contra varreduras sobrepostas
		if err := domain.Complete(b, now, "auto"); err != nil {
			continue
		}

		if err := uc.repo.ReplaceBooking(ctx, b); err != nil {
			// outra varredura (ou o aluno) chegou primeiro; segue o baile
			log.Printf("sweep: booking %d: %v", b.ID, err)
			failed++
			continue
		}

		completed++
	}

	uc.audit.Dispatch(audit.Event{
		Action: "sweep_completed",
		Entity: "booking",
		Metadata: map[string]any{
			"completed": completed,
			"failed":    failed,
		},
	})

	return completed, nil
}
