package mockapi

import (
	"context"
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
)

// ProfilesMockAPI serves member profiles from the mock store.
type ProfilesMockAPI struct {
	*resource[models.Profile]
}

// NewProfilesMockAPI creates the profiles mock API.
func NewProfilesMockAPI(store *mockdata.Store, opts Options) *ProfilesMockAPI {
	return &ProfilesMockAPI{&resource[models.Profile]{
		store:         store,
		collection:    models.CollectionProfiles,
		entity:        "profile",
		label:         "Profile",
		plural:        "Profiles",
		latency:       opts.Latency,
		logger:        opts.Logger,
		lifecycle:     models.ProfileLifecycle,
		initialStatus: string(models.ProfileStatusPending),
		actions: map[models.Action]action{
			models.ActionActivate:            transition(),
			models.ActionDeactivate:          transition(),
			models.ActionUpdateNotifications: {apply: mergeNotifications},
		},
		arrays:       []string{"chapterIds", "skills"},
		searchFields: []string{"firstName", "lastName", "email", "company"},
		sorter: sorter[models.Profile]{
			defaultKey: "lastName",
			keys: map[string]compareFunc[models.Profile]{
				"lastName": thenBy(
					byString(func(p models.Profile) string { return p.LastName }),
					byString(func(p models.Profile) string { return p.FirstName }),
				),
				"email":          byString(func(p models.Profile) string { return p.Email }),
				"graduationYear": byNumber(func(p models.Profile) int { return p.GraduationYear }),
				"createdAt":      byTime(func(p models.Profile) time.Time { return p.CreatedAt }),
			},
		},
		defaults: profileDefaults,
	}}
}

// DefaultNotifications are the settings of a newly created profile.
var DefaultNotifications = models.NotificationSettings{
	Email:     true,
	Digest:    "weekly",
	Events:    true,
	Mentoring: true,
}

func profileDefaults(_ context.Context, doc mockdata.Document, _ time.Time) error {
	current, _ := doc["notifications"].(map[string]interface{})
	for _, v := range current {
		if v != nil && v != false && v != "" {
			return nil
		}
	}
	defaults, err := mockdata.Encode(DefaultNotifications)
	if err != nil {
		return err
	}
	doc["notifications"] = map[string]interface{}(defaults)
	return nil
}

// UpdateNotifications merges settings into the profile's notification preferences, keeping unspecified keys.
func (a *ProfilesMockAPI) UpdateNotifications(ctx context.Context, id string, settings dto.Patch) (dto.APIResponse[models.Profile], error) {
	return a.Perform(ctx, id, models.ActionUpdateNotifications, settings)
}

func mergeNotifications(doc mockdata.Document, payload map[string]interface{}, _ time.Time) (bool, error) {
	if len(payload) == 0 {
		return false, nil
	}
	merged := mockdata.MergeNested(doc, "notifications", payload)
	doc["notifications"] = merged["notifications"]
	return true, nil
}
