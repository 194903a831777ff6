package jobs

import (
	"context"
	"log"
	"time"

	"wanderly.backend/internal/domain/repositories"
)

const expiryBatchSize = 100

// BookingExpiryJob cancels pending bookings whose start date has passed
// without ever being confirmed.
type BookingExpiryJob struct {
	repo     repositories.BookingRepository
	interval time.Duration
	stop     chan struct{}
}

func NewBookingExpiryJob(repo repositories.BookingRepository, interval time.Duration) *BookingExpiryJob {
	return &BookingExpiryJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *BookingExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting booking expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Booking expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Booking expiry job stopped")
			return
		case <-ticker.C:
			j.sweepExpiredBookings(ctx)
		}
	}
}

func (j *BookingExpiryJob) Stop() {
	close(j.stop)
}

func (j *BookingExpiryJob) sweepExpiredBookings(ctx context.Context) {
	cancelled, err := j.repo.CancelExpiredPending(ctx, time.Now(), expiryBatchSize)
	if err != nil {
		log.Printf("❌ Error cancelling expired bookings: %v", err)
		return
	}
	if cancelled > 0 {
		log.Printf("✅ Cancelled %d expired pending booking(s)", cancelled)
	}
}
