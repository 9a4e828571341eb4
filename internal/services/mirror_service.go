package services

import (
	"context"

	"github.com/moverhub/backend/internal/config"
	"github.com/moverhub/backend/internal/domain/mirror"
	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/pkg/metrics"
)

// MirrorService pushes canonical profiles into the tabular mirror.
// Sync never fails the caller: every problem is folded into the returned
// outcome so profile writes stay authoritative regardless of mirror health.
type MirrorService struct {
	store  mirror.Store
	cfg    config.MirrorConfig
	logger *logger.Logger
}

// NewMirrorService creates a new mirror service
func NewMirrorService(store mirror.Store, cfg config.MirrorConfig, log *logger.Logger) *MirrorService {
	return &MirrorService{
		store:  store,
		cfg:    cfg,
		logger: log,
	}
}

// Sync upserts the profile's row in the mirror, keyed by email.
func (s *MirrorService) Sync(ctx context.Context, p *profile.Profile) mirror.SyncOutcome {
	outcome := s.sync(ctx, p)
	metrics.RecordMirrorSync(outcome.Outcome)

	switch outcome.Outcome {
	case mirror.OutcomeFailed:
		s.logger.WithFields(map[string]interface{}{
			"email": emailOf(p),
		}).WithError(outcome.Err).Warn("Mirror sync failed")
	case mirror.OutcomeSkipped:
		s.logger.Debugf("Mirror sync skipped for %q", emailOf(p))
	default:
		s.logger.WithFields(map[string]interface{}{
			"email":   p.Email,
			"outcome": outcome.Outcome,
		}).Debug("Mirror sync completed")
	}

	return outcome
}

func (s *MirrorService) sync(ctx context.Context, p *profile.Profile) mirror.SyncOutcome {
	if s.store == nil || !s.cfg.Configured() || p == nil || p.Email == "" {
		return mirror.SyncOutcome{Outcome: mirror.OutcomeSkipped}
	}

	fields := mirrorFields(p)

	existing, err := s.store.FindByEmail(ctx, s.cfg.TableName, p.Email)
	if err != nil {
		return mirror.SyncOutcome{Outcome: mirror.OutcomeFailed, Err: err}
	}

	if existing != nil {
		if err := s.store.Update(ctx, s.cfg.TableName, existing.ID, fields); err != nil {
			return mirror.SyncOutcome{Outcome: mirror.OutcomeFailed, Err: err}
		}
		return mirror.SyncOutcome{Outcome: mirror.OutcomeUpdated}
	}

	if _, err := s.store.Create(ctx, s.cfg.TableName, fields); err != nil {
		return mirror.SyncOutcome{Outcome: mirror.OutcomeFailed, Err: err}
	}
	return mirror.SyncOutcome{Outcome: mirror.OutcomeCreated}
}

func mirrorFields(p *profile.Profile) mirror.Fields {
	name := p.BusinessName
	if name == "" {
		name = p.FullName
	}
	if name == "" {
		name = "Mover"
	}

	fields := mirror.Fields{
		"Email": p.Email,
		"Name":  name,
		"Phone": p.Phone,
		"City":  p.City,
		"State": p.State,
		"Plan":  p.Plan,
	}
	if p.LogoURL != "" {
		fields["Logo"] = []mirror.Attachment{{URL: p.LogoURL}}
	}
	if p.StartingPrice != nil {
		fields["Starting price"] = *p.StartingPrice
	}
	return fields
}

func emailOf(p *profile.Profile) string {
	if p == nil {
		return ""
	}
	return p.Email
}
