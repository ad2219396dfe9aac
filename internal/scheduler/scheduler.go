package scheduler

import (
	"context"
	"time"

	authdomain "github.com/fogonlabs/fogon/internal/auth/domain"
	"github.com/fogonlabs/fogon/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	purgeInterval = time.Hour
	// Expired and revoked sessions stick around briefly for audit, then
	// get swept.
	sessionRetention = 24 * time.Hour
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
}

// Scheduler runs periodic maintenance jobs.
type Scheduler struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
}

func New(p Params) *Scheduler {
	return &Scheduler{
		db:    p.DB,
		log:   p.Log.Named("scheduler"),
		clock: p.Clock,
	}
}

func (s *Scheduler) RunForever(ctx context.Context) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.PurgeSessions(ctx)
		}
	}
}

// PurgeSessions deletes sessions that expired or were revoked past the
// retention window.
func (s *Scheduler) PurgeSessions(ctx context.Context) {
	cutoff := s.clock.Now().Add(-sessionRetention)

	result := s.db.WithContext(ctx).
		Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)", cutoff, cutoff).
		Delete(&authdomain.Session{})
	if result.Error != nil {
		s.log.Warn("session purge failed", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		s.log.Info("sessions purged", zap.Int64("count", result.RowsAffected))
	}
}
