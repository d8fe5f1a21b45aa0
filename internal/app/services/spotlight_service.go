package services

import (
	"context"
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
)

// SpotlightService defines the interface for alumni spotlight operations
type SpotlightService interface {
	Service[models.Spotlight]
	PublishSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error)
	UnpublishSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error)
	ScheduleSpotlight(ctx context.Context, id string, at time.Time) (dto.APIResponse[models.Spotlight], error)
	ArchiveSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error)
	FeatureSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error)
	UnfeatureSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error)
	LikeSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error)
	UnlikeSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error)
	IncrementViewCount(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error)
	IncrementShareCount(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error)
}

type spotlightServiceImpl struct {
	facade[models.Spotlight]
}

// NewSpotlightService creates a new spotlight service instance
func NewSpotlightService(source repositories.SpotlightDataSource) SpotlightService {
	return &spotlightServiceImpl{facade[models.Spotlight]{source: source}}
}

func (s *spotlightServiceImpl) PublishSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error) {
	return s.do(ctx, id, models.ActionPublish)
}

func (s *spotlightServiceImpl) UnpublishSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error) {
	return s.do(ctx, id, models.ActionUnpublish)
}

func (s *spotlightServiceImpl) ScheduleSpotlight(ctx context.Context, id string, at time.Time) (dto.APIResponse[models.Spotlight], error) {
	return s.Do(ctx, id, models.ActionSchedule, dto.Patch{"scheduledDate": at.UTC().Format(time.RFC3339Nano)})
}

func (s *spotlightServiceImpl) ArchiveSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error) {
	return s.do(ctx, id, models.ActionArchive)
}

func (s *spotlightServiceImpl) FeatureSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error) {
	return s.do(ctx, id, models.ActionFeature)
}

func (s *spotlightServiceImpl) UnfeatureSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error) {
	return s.do(ctx, id, models.ActionUnfeature)
}

func (s *spotlightServiceImpl) LikeSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error) {
	return s.do(ctx, id, models.ActionLike)
}

func (s *spotlightServiceImpl) UnlikeSpotlight(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error) {
	return s.do(ctx, id, models.ActionUnlike)
}

func (s *spotlightServiceImpl) IncrementViewCount(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error) {
	return s.do(ctx, id, models.ActionView)
}

func (s *spotlightServiceImpl) IncrementShareCount(ctx context.Context, id string) (dto.APIResponse[models.Spotlight], error) {
	return s.do(ctx, id, models.ActionShare)
}
