package services

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// Service is the operation set every domain façade exposes.
// Results are passed through from the data source unchanged; a non-nil error is a transport failure.
type Service[T any] interface {
	List(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[T], error)
	Get(ctx context.Context, id string) (dto.APIResponse[T], error)
	Create(ctx context.Context, item T) (dto.APIResponse[T], error)
	Update(ctx context.Context, id string, patch dto.Patch) (dto.APIResponse[T], error)
	Delete(ctx context.Context, id string) (dto.APIResponse[dto.Empty], error)
	Do(ctx context.Context, id string, action models.Action, payload dto.Patch) (dto.APIResponse[T], error)
	Bulk(ctx context.Context, op models.Action, ids []string) (dto.APIResponse[dto.BulkOperationResult], error)
}

// facade forwards to one data source, normalizing list paging on the way.
type facade[T any] struct {
	source repositories.DataSource[T]
}

func (f facade[T]) List(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[T], error) {
	return f.source.List(ctx, helpers.NormalizeListParams(params))
}

func (f facade[T]) Get(ctx context.Context, id string) (dto.APIResponse[T], error) {
	return f.source.Get(ctx, id)
}

func (f facade[T]) Create(ctx context.Context, item T) (dto.APIResponse[T], error) {
	return f.source.Create(ctx, item)
}

func (f facade[T]) Update(ctx context.Context, id string, patch dto.Patch) (dto.APIResponse[T], error) {
	return f.source.Update(ctx, id, patch)
}

func (f facade[T]) Delete(ctx context.Context, id string) (dto.APIResponse[dto.Empty], error) {
	return f.source.Delete(ctx, id)
}

func (f facade[T]) Do(ctx context.Context, id string, action models.Action, payload dto.Patch) (dto.APIResponse[T], error) {
	return f.source.Perform(ctx, id, action, payload)
}

func (f facade[T]) Bulk(ctx context.Context, op models.Action, ids []string) (dto.APIResponse[dto.BulkOperationResult], error) {
	return f.source.BulkOperation(ctx, op, ids)
}

func (f facade[T]) do(ctx context.Context, id string, action models.Action) (dto.APIResponse[T], error) {
	return f.source.Perform(ctx, id, action, nil)
}

// Services holds every domain façade.
type Services struct {
	Events        EventService
	Chapters      ChapterService
	Sponsors      SponsorService
	Opportunities OpportunityService
	Mentorships   MentorshipService
	QA            QAService
	Spotlights    SpotlightService
	Profiles      ProfileService
}

// NewServices builds the façades over the data sources chosen at composition time.
func NewServices(sources repositories.DataSources) *Services {
	return &Services{
		Events:        NewEventService(sources.Events),
		Chapters:      NewChapterService(sources.Chapters),
		Sponsors:      NewSponsorService(sources.Sponsors),
		Opportunities: NewOpportunityService(sources.Opportunities),
		Mentorships:   NewMentorshipService(sources.Mentorships),
		QA:            NewQAService(sources.QA),
		Spotlights:    NewSpotlightService(sources.Spotlights),
		Profiles:      NewProfileService(sources.Profiles),
	}
}
