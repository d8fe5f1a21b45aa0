package mockapi

import (
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
)

var (
	_ repositories.EventDataSource       = (*EventsMockAPI)(nil)
	_ repositories.ChapterDataSource     = (*ChaptersMockAPI)(nil)
	_ repositories.SponsorDataSource     = (*SponsorsMockAPI)(nil)
	_ repositories.OpportunityDataSource = (*OpportunitiesMockAPI)(nil)
	_ repositories.MentorshipDataSource  = (*MentorshipMockAPI)(nil)
	_ repositories.QADataSource          = (*QAMockAPI)(nil)
	_ repositories.SpotlightDataSource   = (*SpotlightsMockAPI)(nil)
	_ repositories.ProfileDataSource     = (*ProfilesMockAPI)(nil)
)

// NewDataSources builds every domain's mock API over one shared store.
func NewDataSources(store *mockdata.Store, opts Options) repositories.DataSources {
	return repositories.DataSources{
		Events:        NewEventsMockAPI(store, opts),
		Chapters:      NewChaptersMockAPI(store, opts),
		Sponsors:      NewSponsorsMockAPI(store, opts),
		Opportunities: NewOpportunitiesMockAPI(store, opts),
		Mentorships:   NewMentorshipMockAPI(store, opts),
		QA:            NewQAMockAPI(store, opts),
		Spotlights:    NewSpotlightsMockAPI(store, opts),
		Profiles:      NewProfilesMockAPI(store, opts),
	}
}
