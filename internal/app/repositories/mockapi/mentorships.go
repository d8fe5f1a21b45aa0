package mockapi

import (
	"context"
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
)

// MentorshipMockAPI serves mentorships from the mock store.
type MentorshipMockAPI struct {
	*resource[models.Mentorship]
}

// NewMentorshipMockAPI creates the mentorships mock API.
func NewMentorshipMockAPI(store *mockdata.Store, opts Options) *MentorshipMockAPI {
	api := &MentorshipMockAPI{&resource[models.Mentorship]{
		store:         store,
		collection:    models.CollectionMentorships,
		entity:        "mentorship",
		label:         "Mentorship",
		plural:        "Mentorships",
		latency:       opts.Latency,
		logger:        opts.Logger,
		lifecycle:     models.MentorshipLifecycle,
		initialStatus: string(models.MentorshipStatusPending),
		actions: map[models.Action]action{
			models.ActionAccept:   transitionWith(stampOnce("startDate")),
			models.ActionDecline:  transition(),
			models.ActionComplete: transitionWith(stampOnce("endDate")),
			models.ActionCancel:   transition(),
			models.ActionSession:  count("sessionCount", 1),
		},
		counters:     []string{"sessionCount"},
		arrays:       []string{"goals"},
		searchFields: []string{"title", "description", "mentorName", "menteeName"},
		sorter: sorter[models.Mentorship]{
			defaultKey:  "createdAt",
			defaultDesc: true,
			keys: map[string]compareFunc[models.Mentorship]{
				"createdAt":    byTime(func(m models.Mentorship) time.Time { return m.CreatedAt }),
				"title":        byString(func(m models.Mentorship) string { return m.Title }),
				"startDate":    byOptionalTime(func(m models.Mentorship) *time.Time { return m.StartDate }),
				"sessionCount": byNumber(func(m models.Mentorship) int { return m.SessionCount }),
			},
		},
	}}
	api.defaults = api.fillNames
	api.decorate = func(ctx context.Context, m *models.Mentorship, _ time.Time) {
		if m.MentorName == "" && m.MentorID != "" {
			m.MentorName = api.participantName(ctx, m.MentorID, "Mentor")
		}
		if m.MenteeName == "" && m.MenteeID != "" {
			m.MenteeName = api.participantName(ctx, m.MenteeID, "Mentee")
		}
	}
	return api
}

func (a *MentorshipMockAPI) fillNames(ctx context.Context, doc mockdata.Document, _ time.Time) error {
	if doc.Blank("mentorName") && !doc.Blank("mentorId") {
		doc["mentorName"] = a.participantName(ctx, doc.String("mentorId"), "Mentor")
	}
	if doc.Blank("menteeName") && !doc.Blank("menteeId") {
		doc["menteeName"] = a.participantName(ctx, doc.String("menteeId"), "Mentee")
	}
	return nil
}

// participantName resolves a member's display name from profiles, falling back to "<role> <id>".
func (a *MentorshipMockAPI) participantName(ctx context.Context, id, role string) string {
	profile, found, err := mockdata.Get[models.Profile](ctx, a.store, models.CollectionProfiles, id)
	if err != nil {
		a.logger.Debug().Err(err).Str("id", id).Msg("Profile lookup failed")
	}
	if found && err == nil {
		if name := profile.FullName(); name != "" {
			return name
		}
	}
	return role + " " + id
}
