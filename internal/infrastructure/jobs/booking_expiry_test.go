package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"wanderly.backend/internal/domain/entities"
)

type bookingExpiryRepoStub struct {
	cancelled  int64
	cancelErr  error
	sweepCalls int
	lastCutoff time.Time
	lastLimit  int
}

func (s *bookingExpiryRepoStub) CancelExpiredPending(_ context.Context, cutoff time.Time, limit int) (int64, error) {
	s.sweepCalls++
	s.lastCutoff = cutoff
	s.lastLimit = limit
	if s.cancelErr != nil {
		return 0, s.cancelErr
	}
	return s.cancelled, nil
}

func (s *bookingExpiryRepoStub) Create(context.Context, *entities.Booking) error { return nil }
func (s *bookingExpiryRepoStub) GetByID(context.Context, uuid.UUID) (*entities.Booking, error) {
	return nil, nil
}
func (s *bookingExpiryRepoStub) ListByParticipant(context.Context, uuid.UUID, int, int) ([]*entities.Booking, int64, error) {
	return nil, 0, nil
}
func (s *bookingExpiryRepoStub) AssignGuideIfUnassigned(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}
func (s *bookingExpiryRepoStub) ConfirmIfPending(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func TestSweepExpiredBookings(t *testing.T) {
	repo := &bookingExpiryRepoStub{cancelled: 2}
	job := &BookingExpiryJob{repo: repo, interval: time.Millisecond, stop: make(chan struct{})}

	job.sweepExpiredBookings(context.Background())
	require.Equal(t, 1, repo.sweepCalls)
	require.Equal(t, expiryBatchSize, repo.lastLimit)
	require.WithinDuration(t, time.Now(), repo.lastCutoff, time.Second)
}

func TestSweepExpiredBookings_Error(t *testing.T) {
	repo := &bookingExpiryRepoStub{cancelErr: errors.New("db down")}
	job := &BookingExpiryJob{repo: repo, interval: time.Millisecond, stop: make(chan struct{})}

	job.sweepExpiredBookings(context.Background())
	require.Equal(t, 1, repo.sweepCalls)
}

func TestStartStop_StopsByContext(t *testing.T) {
	repo := &bookingExpiryRepoStub{}
	job := NewBookingExpiryJob(repo, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on context cancel")
	}
}

func TestStartStop_StopsByStopChannel(t *testing.T) {
	repo := &bookingExpiryRepoStub{}
	job := NewBookingExpiryJob(repo, time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()
	job.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on Stop()")
	}
}
