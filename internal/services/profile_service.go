package services

import (
	"context"

	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/pkg/logger"
)

// ProfileService implements profile.Service
type ProfileService struct {
	profileRepo profile.Repository
	mirror      *MirrorService
	logger      *logger.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo profile.Repository, mirror *MirrorService, log *logger.Logger) profile.Service {
	return &ProfileService{
		profileRepo: profileRepo,
		mirror:      mirror,
		logger:      log,
	}
}

// GetProfile returns the canonical profile for an email
func (s *ProfileService) GetProfile(ctx context.Context, email string) (*profile.Profile, error) {
	return s.profileRepo.GetByEmail(ctx, email)
}

// GetByEmail returns the dashboard projection for a profile
func (s *ProfileService) GetByEmail(ctx context.Context, email string) (*profile.MoverView, error) {
	p, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	view := profile.Project(p)
	return &view, nil
}

// UpdateByEmail applies a partial edit to the stored profile. Only fields
// present in upd change; the canonical row is written before the mirror is
// touched, and a mirror failure never fails the edit.
func (s *ProfileService) UpdateByEmail(ctx context.Context, email string, upd profile.Update) (*profile.MoverView, error) {
	p, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	applyUpdate(p, upd)

	if err := s.profileRepo.Update(ctx, p); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update profile")
		return nil, err
	}

	s.mirror.Sync(ctx, p)

	view := profile.Project(p)
	return &view, nil
}

// SetLogoURL stores a new logo URL for the profile
func (s *ProfileService) SetLogoURL(ctx context.Context, email, logoURL string) (*profile.MoverView, error) {
	return s.UpdateByEmail(ctx, email, profile.Update{LogoURL: &logoURL})
}

func applyUpdate(p *profile.Profile, upd profile.Update) {
	if upd.FullName != nil {
		p.FullName = *upd.FullName
	}
	if upd.BusinessName != nil {
		p.BusinessName = *upd.BusinessName
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.City != nil {
		p.City = *upd.City
	}
	if upd.State != nil {
		p.State = *upd.State
	}
	if upd.LogoURL != nil {
		p.LogoURL = *upd.LogoURL
	}
	if upd.StartingPrice != nil {
		p.StartingPrice = upd.StartingPrice
	}
}
