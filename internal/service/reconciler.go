package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Reconciler - фоновая сверка: находит котов, у которых last_seen отстает
// от их последнего репорта, и чинит его. Страховка на случай сбоя между
// записью репорта и обновлением кота.
type Reconciler struct {
	cats     CatRepository
	logger   *logrus.Logger
	interval time.Duration
}

// NewReconciler создает новый Reconciler
func NewReconciler(cats CatRepository, logger *logrus.Logger, interval time.Duration) *Reconciler {
	return &Reconciler{
		cats:     cats,
		logger:   logger,
		interval: interval,
	}
}

// Start запускает горутину периодической сверки
func (r *Reconciler) Start(ctx context.Context) {
	r.logger.WithField("interval", r.interval.String()).Info("Starting last_seen reconciler...")
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping last_seen reconciler.")
				return
			case <-ticker.C:
				repaired, err := r.cats.RepairLastSeen(ctx)
				if err != nil {
					r.logger.WithError(err).Error("Failed to repair stale last_seen")
					continue
				}
				if repaired > 0 {
					r.logger.WithField("repaired", repaired).Warn("Repaired cats with stale last_seen")
				}
			}
		}
	}()
}
