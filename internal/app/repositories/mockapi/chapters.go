package mockapi

import (
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
)

// ChaptersMockAPI serves chapters from the mock store.
type ChaptersMockAPI struct {
	*resource[models.Chapter]
}

// NewChaptersMockAPI creates the chapters mock API.
func NewChaptersMockAPI(store *mockdata.Store, opts Options) *ChaptersMockAPI {
	return &ChaptersMockAPI{&resource[models.Chapter]{
		store:         store,
		collection:    models.CollectionChapters,
		entity:        "chapter",
		label:         "Chapter",
		plural:        "Chapters",
		latency:       opts.Latency,
		logger:        opts.Logger,
		lifecycle:     models.ChapterLifecycle,
		initialStatus: string(models.ChapterStatusPending),
		actions: map[models.Action]action{
			models.ActionActivate:   transition(),
			models.ActionDeactivate: transition(),
			models.ActionApprove:    transition(),
			models.ActionReject:     transition(),
			models.ActionJoin:       count("memberCount", 1),
			models.ActionLeave:      count("memberCount", -1),
		},
		counters:     []string{"memberCount", "eventCount"},
		arrays:       []string{"focusAreas"},
		searchFields: []string{"name", "city", "country", "description"},
		sorter: sorter[models.Chapter]{
			defaultKey: "name",
			keys: map[string]compareFunc[models.Chapter]{
				"name":        byString(func(c models.Chapter) string { return c.Name }),
				"city":        byString(func(c models.Chapter) string { return c.City }),
				"memberCount": byNumber(func(c models.Chapter) int { return c.MemberCount }),
				"createdAt":   byTime(func(c models.Chapter) time.Time { return c.CreatedAt }),
			},
		},
	}}
}
