package services

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
)

// ProfileService defines the interface for member profile operations
type ProfileService interface {
	Service[models.Profile]
	ActivateProfile(ctx context.Context, id string) (dto.APIResponse[models.Profile], error)
	DeactivateProfile(ctx context.Context, id string) (dto.APIResponse[models.Profile], error)
	UpdateNotifications(ctx context.Context, id string, settings dto.Patch) (dto.APIResponse[models.Profile], error)
}

type profileServiceImpl struct {
	facade[models.Profile]
	profiles repositories.ProfileDataSource
}

// NewProfileService creates a new profile service instance
func NewProfileService(source repositories.ProfileDataSource) ProfileService {
	return &profileServiceImpl{facade: facade[models.Profile]{source: source}, profiles: source}
}

func (s *profileServiceImpl) ActivateProfile(ctx context.Context, id string) (dto.APIResponse[models.Profile], error) {
	return s.do(ctx, id, models.ActionActivate)
}

func (s *profileServiceImpl) DeactivateProfile(ctx context.Context, id string) (dto.APIResponse[models.Profile], error) {
	return s.do(ctx, id, models.ActionDeactivate)
}

func (s *profileServiceImpl) UpdateNotifications(ctx context.Context, id string, settings dto.Patch) (dto.APIResponse[models.Profile], error) {
	return s.profiles.UpdateNotifications(ctx, id, settings)
}
