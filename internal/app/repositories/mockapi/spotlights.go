package mockapi

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// SpotlightsMockAPI serves alumni spotlights from the mock store.
type SpotlightsMockAPI struct {
	*resource[models.Spotlight]
}

// NewSpotlightsMockAPI creates the spotlights mock API.
func NewSpotlightsMockAPI(store *mockdata.Store, opts Options) *SpotlightsMockAPI {
	return &SpotlightsMockAPI{&resource[models.Spotlight]{
		store:         store,
		collection:    models.CollectionSpotlights,
		entity:        "spotlight",
		label:         "Spotlight",
		plural:        "Spotlights",
		latency:       opts.Latency,
		logger:        opts.Logger,
		lifecycle:     models.SpotlightLifecycle,
		initialStatus: string(models.SpotlightStatusDraft),
		actions: map[models.Action]action{
			models.ActionPublish:   transitionWith(stampOnce("publishedDate")),
			models.ActionUnpublish: transition(),
			models.ActionSchedule:  transitionWith(schedule),
			models.ActionArchive:   transition(),
			models.ActionFeature:   {apply: setFlag("featured", true)},
			models.ActionUnfeature: {apply: setFlag("featured", false)},
			models.ActionLike:      count("likeCount", 1),
			models.ActionUnlike:    count("likeCount", -1),
			models.ActionView:      count("viewCount", 1),
			models.ActionShare:     count("shareCount", 1),
		},
		counters:     []string{"viewCount", "likeCount", "shareCount"},
		arrays:       []string{"tags"},
		searchFields: []string{"title", "summary", "alumniName"},
		sorter: sorter[models.Spotlight]{
			defaultKey:  "featured",
			defaultDesc: true,
			keys: map[string]compareFunc[models.Spotlight]{
				"featured": thenBy(
					byNumber(func(s models.Spotlight) int { return boolRank(s.Featured) }),
					byOptionalTime(func(s models.Spotlight) *time.Time { return s.PublishedDate }),
				),
				"publishedDate":  byOptionalTime(func(s models.Spotlight) *time.Time { return s.PublishedDate }),
				"engagementRate": byNumber(func(s models.Spotlight) float64 { return s.EngagementRate }),
				"viewCount":      byNumber(func(s models.Spotlight) int { return s.ViewCount }),
				"title":          byString(func(s models.Spotlight) string { return s.Title }),
			},
		},
		decorate: func(_ context.Context, s *models.Spotlight, _ time.Time) {
			s.EngagementRate = EngagementRate(s.LikeCount, s.ShareCount, s.ViewCount)
		},
	}}
}

// EngagementRate is likes plus shares per hundred views, rounded to two decimals. No views rate 0.
func EngagementRate(likes, shares, views int) float64 {
	if views <= 0 {
		return 0
	}
	return helpers.Round2(float64(likes+shares) / float64(views) * 100)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// schedule sets scheduledDate from the payload. A date in the past is rejected.
func schedule(doc mockdata.Document, payload map[string]interface{}, now time.Time) (bool, error) {
	raw, _ := payload["scheduledDate"].(string)
	if raw == "" {
		return false, fmt.Errorf("%w: scheduledDate is required", apperrors.ErrValidationFailed)
	}
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return false, fmt.Errorf("%w: scheduledDate: %v", apperrors.ErrValidationFailed, err)
	}
	if at.Before(now) {
		return false, fmt.Errorf("%w: scheduledDate is in the past", apperrors.ErrValidationFailed)
	}
	doc.SetTime("scheduledDate", at)
	return true, nil
}
