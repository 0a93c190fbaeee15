package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"nskk-web/session"
)

// StartSweeper drops idle sessions every interval until ctx is done.
func StartSweeper(ctx context.Context, store *session.Store, interval, ttl time.Duration, log *zap.Logger) {
	log.Info("starting session sweeper", zap.Duration("interval", interval), zap.Duration("ttl", ttl))

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info("session sweeper stopped")
				return
			case <-ticker.C:
				sweep(store, ttl, log)
			}
		}
	}()
}

func sweep(store *session.Store, ttl time.Duration, log *zap.Logger) {
	if n := store.Sweep(ttl); n > 0 {
		log.Debug("swept idle sessions", zap.Int("removed", n), zap.Int("remaining", store.Len()))
	}
}
