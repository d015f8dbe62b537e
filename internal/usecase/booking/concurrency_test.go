package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/tutor-scheduler/internal/audit"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
)

// raceRepo simula a semântica do índice único parcial: o primeiro
// insert num slot vence, os demais levam time_conflict.
type raceRepo struct {
	*MockRepository

	mu    sync.Mutex
	slots map[string]bool
}

func newRaceRepo() *raceRepo {
	return &raceRepo{
		MockRepository: new(MockRepository),
		slots:          map[string]bool{},
	}
}

func (r *raceRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return testStudent(), nil
}

func (r *raceRepo) GetTutorProfile(ctx context.Context, tutorID uint) (*models.TutorProfile, error) {
	return testTutorProfile(), nil
}

func (r *raceRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%d|%s|%s", b.TutorID, b.Date, b.Time)
	if r.slots[key] {
		return httperr.ErrBusiness("time_conflict")
	}
	r.slots[key] = true
	return nil
}

func TestCreateBooking_ConcurrentSameSlotHasOneWinner(t *testing.T) {
	repo := newRaceRepo()
	uc := NewCreateBooking(repo, audit.NewDispatcher(nil))

	const attempts = 50

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateBookingInput{
				StudentID: 10,
				TutorID:   20,
				Date:      "2024-06-03",
				Time:      "14:00",
			})
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	winners := 0
	conflicts := 0
	for err := range results {
		switch {
		case err == nil:
			winners++
		case httperr.IsBusiness(err, "time_conflict"):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, attempts-1, conflicts)
}
