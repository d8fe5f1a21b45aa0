package repositories

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
)

// DataSource is the storage strategy behind one domain's façade.
// The mock and remote implementations return identical envelopes; a non-nil error
// only reports a transport failure of the remote path.
type DataSource[T any] interface {
	List(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[T], error)
	Get(ctx context.Context, id string) (dto.APIResponse[T], error)
	Create(ctx context.Context, item T) (dto.APIResponse[T], error)
	Update(ctx context.Context, id string, patch dto.Patch) (dto.APIResponse[T], error)
	Delete(ctx context.Context, id string) (dto.APIResponse[dto.Empty], error)
	Perform(ctx context.Context, id string, action models.Action, payload dto.Patch) (dto.APIResponse[T], error)
	BulkOperation(ctx context.Context, op models.Action, ids []string) (dto.APIResponse[dto.BulkOperationResult], error)
}

// EventDataSource stores events.
type EventDataSource interface {
	DataSource[models.Event]
}

// ChapterDataSource stores chapters.
type ChapterDataSource interface {
	DataSource[models.Chapter]
}

// SponsorDataSource stores sponsors and lists partners.
type SponsorDataSource interface {
	DataSource[models.Sponsor]
	ListPartners(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[models.Sponsor], error)
}

// OpportunityDataSource stores opportunities.
type OpportunityDataSource interface {
	DataSource[models.Opportunity]
}

// MentorshipDataSource stores mentorships.
type MentorshipDataSource interface {
	DataSource[models.Mentorship]
}

// QADataSource stores questions and answers.
type QADataSource interface {
	DataSource[models.QAItem]
}

// SpotlightDataSource stores alumni spotlights.
type SpotlightDataSource interface {
	DataSource[models.Spotlight]
}

// ProfileDataSource stores member profiles.
type ProfileDataSource interface {
	DataSource[models.Profile]
	UpdateNotifications(ctx context.Context, id string, settings dto.Patch) (dto.APIResponse[models.Profile], error)
}

// DataSources holds the data source of every domain. It is chosen once, when the application is composed.
type DataSources struct {
	Events        EventDataSource
	Chapters      ChapterDataSource
	Sponsors      SponsorDataSource
	Opportunities OpportunityDataSource
	Mentorships   MentorshipDataSource
	QA            QADataSource
	Spotlights    SpotlightDataSource
	Profiles      ProfileDataSource
}
