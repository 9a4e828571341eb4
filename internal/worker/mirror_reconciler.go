package worker

import (
	"context"
	"time"

	"github.com/moverhub/backend/internal/domain/mirror"
	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/services"
)

// reconcilePageSize bounds each repository read during a sweep
const reconcilePageSize = 200

// MirrorReconciler periodically re-syncs every profile into the tabular
// mirror. Request-time syncs are best effort, so rows can go stale when the
// mirror is down; the sweep repairs them.
type MirrorReconciler struct {
	profileRepo profile.Repository
	mirror      *services.MirrorService
	interval    time.Duration
	logger      *logger.Logger
}

// NewMirrorReconciler creates a new mirror reconciler worker
func NewMirrorReconciler(profileRepo profile.Repository, mirror *services.MirrorService, interval time.Duration, log *logger.Logger) *MirrorReconciler {
	return &MirrorReconciler{
		profileRepo: profileRepo,
		mirror:      mirror,
		interval:    interval,
		logger:      log,
	}
}

// Start begins the periodic reconciliation loop. It blocks until ctx is
// cancelled.
func (w *MirrorReconciler) Start(ctx context.Context) {
	w.logger.Infof("Starting mirror reconciler, interval %s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-ctx.Done():
			w.logger.Info("Mirror reconciler stopped")
			return
		}
	}
}

func (w *MirrorReconciler) sweep(ctx context.Context) {
	var synced, failed int

	for offset := 0; ; offset += reconcilePageSize {
		profiles, err := w.profileRepo.List(ctx, reconcilePageSize, offset)
		if err != nil {
			w.logger.ErrorWithErr(err, "Failed to list profiles for mirror sweep")
			return
		}
		if len(profiles) == 0 {
			break
		}

		for _, p := range profiles {
			if ctx.Err() != nil {
				return
			}
			outcome := w.mirror.Sync(ctx, p)
			if outcome.Outcome == mirror.OutcomeFailed {
				failed++
			} else {
				synced++
			}
		}
	}

	w.logger.WithFields(map[string]interface{}{
		"synced": synced,
		"failed": failed,
	}).Info("Mirror sweep completed")
}
