package services

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
)

// EventService defines the interface for event operations
type EventService interface {
	Service[models.Event]
	PublishEvent(ctx context.Context, id string) (dto.APIResponse[models.Event], error)
	UnpublishEvent(ctx context.Context, id string) (dto.APIResponse[models.Event], error)
	CancelEvent(ctx context.Context, id string) (dto.APIResponse[models.Event], error)
	CompleteEvent(ctx context.Context, id string) (dto.APIResponse[models.Event], error)
	RegisterAttendee(ctx context.Context, id string) (dto.APIResponse[models.Event], error)
	UnregisterAttendee(ctx context.Context, id string) (dto.APIResponse[models.Event], error)
	IncrementViewCount(ctx context.Context, id string) (dto.APIResponse[models.Event], error)
}

type eventServiceImpl struct {
	facade[models.Event]
}

// NewEventService creates a new event service instance
func NewEventService(source repositories.EventDataSource) EventService {
	return &eventServiceImpl{facade[models.Event]{source: source}}
}

func (s *eventServiceImpl) PublishEvent(ctx context.Context, id string) (dto.APIResponse[models.Event], error) {
	return s.do(ctx, id, models.ActionPublish)
}

func (s *eventServiceImpl) UnpublishEvent(ctx context.Context, id string) (dto.APIResponse[models.Event], error) {
	return s.do(ctx, id, models.ActionUnpublish)
}

func (s *eventServiceImpl) CancelEvent(ctx context.Context, id string) (dto.APIResponse[models.Event], error) {
	return s.do(ctx, id, models.ActionCancel)
}

func (s *eventServiceImpl) CompleteEvent(ctx context.Context, id string) (dto.APIResponse[models.Event], error) {
	return s.do(ctx, id, models.ActionComplete)
}

func (s *eventServiceImpl) RegisterAttendee(ctx context.Context, id string) (dto.APIResponse[models.Event], error) {
	return s.do(ctx, id, models.ActionRegister)
}

func (s *eventServiceImpl) UnregisterAttendee(ctx context.Context, id string) (dto.APIResponse[models.Event], error) {
	return s.do(ctx, id, models.ActionUnregister)
}

func (s *eventServiceImpl) IncrementViewCount(ctx context.Context, id string) (dto.APIResponse[models.Event], error) {
	return s.do(ctx, id, models.ActionView)
}
