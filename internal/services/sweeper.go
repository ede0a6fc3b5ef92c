package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/example/blossom/internal/models"
)

// Sweeper periodically deletes accounts that never verified their signup OTP.
// It is owned by main and stopped on shutdown.
type Sweeper struct {
	db   *gorm.DB
	cron *cron.Cron
}

// NewSweeper builds a sweeper over the given database.
func NewSweeper(db *gorm.DB) *Sweeper {
	return &Sweeper{db: db, cron: cron.New()}
}

// Start schedules a sweep every minute.
func (s *Sweeper) Start() {
	s.cron.AddFunc("@every 1m", func() {
		count, err := s.Sweep()
		if err != nil {
			log.Printf("[Sweeper] error deleting expired users: %v", err)
			return
		}
		if count > 0 {
			log.Printf("[Sweeper] deleted %d expired users", count)
		}
	})
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep removes unverified accounts whose OTP window has elapsed and returns
// the number of rows deleted. Verified accounts are never touched, even with
// a stale expiry column.
func (s *Sweeper) Sweep() (int64, error) {
	result := s.db.
		Where("is_verified = ? AND otp_expires_at < ?", false, time.Now()).
		Delete(&models.User{})
	return result.RowsAffected, result.Error
}
