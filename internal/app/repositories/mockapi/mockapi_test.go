package mockapi

import (
	"context"
	"math"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
	"github.com/yigit/alumnihub/internal/seed"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fixture is a fresh set of mock APIs over the bundled seed with a controllable clock.
type fixture struct {
	repositories.DataSources
	now time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{now: testNow}
	store := mockdata.NewStore(
		mockdata.NewLayeredSource(mockdata.NewSeedSource(seed.Default()), mockdata.NewMemorySource()),
		mockdata.WithClock(func() time.Time { return f.now }),
	)
	f.DataSources = NewDataSources(store, Options{Latency: 0})
	return f
}

// outcome pairs an envelope with its transport error so calls can be passed to requireOK directly.
type outcome[T any] struct {
	resp dto.APIResponse[T]
	err  error
}

func result[T any](resp dto.APIResponse[T], err error) outcome[T] {
	return outcome[T]{resp: resp, err: err}
}

func requireOK[T any](t *testing.T, o outcome[T]) T {
	t.Helper()
	require.NoError(t, o.err)
	require.Nil(t, o.resp.Error, "unexpected error envelope: %+v", o.resp.Error)
	require.True(t, o.resp.Success)
	return o.resp.Data
}

func requireFailure[T any](t *testing.T, resp dto.APIResponse[T], err error, status int, code dto.ErrorCode) {
	t.Helper()
	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, status, resp.Error.Code)
	assert.Equal(t, code, resp.Error.Type)
}

func newEvent(capacity int) models.Event {
	return models.Event{
		Title:     "Spring Networking Mixer",
		Type:      models.EventTypeNetworking,
		StartDate: time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC),
		Location:  "Boston",
		Capacity:  capacity,
	}
}

func TestEventsMockAPI_CreateThenGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := requireOK(t, result(f.Events.Create(ctx, newEvent(50))))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.EventStatusDraft, created.Status)
	assert.True(t, created.CreatedAt.Equal(testNow))
	assert.Equal(t, 0, created.AttendeeCount)
	assert.NotNil(t, created.Tags)

	got := requireOK(t, result(f.Events.Get(ctx, created.ID)))
	assert.Equal(t, created, got)
}

func TestEventsMockAPI_DeleteTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	requireOK(t, result(f.Events.Delete(ctx, "evt-003")))

	resp, err := f.Events.Delete(ctx, "evt-003")
	requireFailure(t, resp, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound)

	getResp, err := f.Events.Get(ctx, "evt-003")
	requireFailure(t, getResp, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound)
}

func TestEventsMockAPI_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		params  dto.ListParams
		wantIDs []string
		total   int
	}{
		{
			name:    "default order is start date",
			params:  dto.ListParams{},
			wantIDs: []string{"evt-002", "evt-001", "evt-003"},
			total:   3,
		},
		{
			name:    "status filter",
			params:  dto.ListParams{Filters: dto.Filters{"status": "published"}},
			wantIDs: []string{"evt-002", "evt-001"},
			total:   2,
		},
		{
			name:    "explicit sort descending",
			params:  dto.ListParams{Filters: dto.Filters{"sortBy": "startDate", "sortOrder": "desc"}},
			wantIDs: []string{"evt-003", "evt-001", "evt-002"},
			total:   3,
		},
		{
			name:    "paging",
			params:  dto.ListParams{Page: 2, Limit: 2},
			wantIDs: []string{"evt-003"},
			total:   3,
		},
		{
			name:    "page past the end",
			params:  dto.ListParams{Page: 9, Limit: 2},
			wantIDs: []string{},
			total:   3,
		},
		{
			name:    "huge page",
			params:  dto.ListParams{Page: math.MaxInt64 / 10, Limit: 20},
			wantIDs: []string{},
			total:   3,
		},
		{
			name:    "no match",
			params:  dto.ListParams{Filters: dto.Filters{"status": "cancelled"}},
			wantIDs: []string{},
			total:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.Events.List(ctx, tt.params)
			require.NoError(t, err)
			require.True(t, resp.Success)
			got := make([]string, len(resp.Data))
			for i, e := range resp.Data {
				got[i] = e.ID
			}
			assert.Equal(t, tt.wantIDs, got)
			assert.Equal(t, tt.total, resp.Pagination.Total)
		})
	}
}

func TestEventsMockAPI_ListSearch(t *testing.T) {
	f := newFixture(t)

	resp, err := f.Events.List(context.Background(), dto.ListParams{Filters: dto.Filters{"search": "zzz-no-such-text"}})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
}

func TestEventsMockAPI_PublishIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := requireOK(t, result(f.Events.Create(ctx, newEvent(10))))

	published := requireOK(t, result(f.Events.Perform(ctx, created.ID, models.ActionPublish, nil)))
	assert.Equal(t, models.EventStatusPublished, published.Status)
	require.NotNil(t, published.PublishedDate)
	assert.True(t, published.PublishedDate.Equal(testNow))

	f.now = testNow.Add(48 * time.Hour)
	again := requireOK(t, result(f.Events.Perform(ctx, created.ID, models.ActionPublish, nil)))
	assert.Equal(t, models.EventStatusPublished, again.Status)
	require.NotNil(t, again.PublishedDate)
	assert.True(t, again.PublishedDate.Equal(testNow))
	assert.True(t, again.UpdatedAt.Equal(published.UpdatedAt))
}

func TestEventsMockAPI_InvalidTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.Events.Perform(ctx, "evt-003", models.ActionComplete, nil)
	requireFailure(t, resp, err, http.StatusConflict, dto.ErrorCodeInvalidTransition)

	got := requireOK(t, result(f.Events.Get(ctx, "evt-003")))
	assert.Equal(t, models.EventStatusDraft, got.Status)
}

func TestEventsMockAPI_UnsupportedAction(t *testing.T) {
	f := newFixture(t)

	resp, err := f.Events.Perform(context.Background(), "evt-001", models.ActionLike, nil)
	requireFailure(t, resp, err, http.StatusBadRequest, dto.ErrorCodeUnsupportedAction)
}

func TestEventsMockAPI_RegisterRespectsCapacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := requireOK(t, result(f.Events.Create(ctx, newEvent(2))))
	for i := 0; i < 2; i++ {
		requireOK(t, result(f.Events.Perform(ctx, created.ID, models.ActionRegister, nil)))
	}

	resp, err := f.Events.Perform(ctx, created.ID, models.ActionRegister, nil)
	requireFailure(t, resp, err, http.StatusConflict, dto.ErrorCodeConflict)

	got := requireOK(t, result(f.Events.Get(ctx, created.ID)))
	assert.Equal(t, 2, got.AttendeeCount)
}

func TestEventsMockAPI_UnregisterFloorsAtZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got := requireOK(t, result(f.Events.Perform(ctx, "evt-003", models.ActionUnregister, nil)))
	assert.Equal(t, 0, got.AttendeeCount)
}

func TestEventsMockAPI_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("merges fields and ignores counters", func(t *testing.T) {
		got := requireOK(t, result(f.Events.Update(ctx, "evt-003", dto.Patch{
			"title":         "Fall Gala",
			"attendeeCount": 999,
			"id":            "other",
		})))
		assert.Equal(t, "evt-003", got.ID)
		assert.Equal(t, "Fall Gala", got.Title)
		assert.Equal(t, 0, got.AttendeeCount)
		assert.True(t, got.UpdatedAt.Equal(testNow))
	})

	t.Run("rejects status jumps", func(t *testing.T) {
		resp, err := f.Events.Update(ctx, "evt-003", dto.Patch{"status": "completed"})
		requireFailure(t, resp, err, http.StatusConflict, dto.ErrorCodeInvalidTransition)
	})

	t.Run("allows status moves an action could make", func(t *testing.T) {
		got := requireOK(t, result(f.Events.Update(ctx, "evt-003", dto.Patch{"status": "published"})))
		assert.Equal(t, models.EventStatusPublished, got.Status)
	})

	t.Run("missing record", func(t *testing.T) {
		resp, err := f.Events.Update(ctx, "evt-404", dto.Patch{"title": "x"})
		requireFailure(t, resp, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound)
	})

	t.Run("schema violation", func(t *testing.T) {
		resp, err := f.Events.Update(ctx, "evt-001", dto.Patch{"capacity": "lots"})
		requireFailure(t, resp, err, http.StatusBadRequest, dto.ErrorCodeValidationFailed)
	})
}

func TestEventsMockAPI_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	badRule := newEvent(10)
	badRule.Recurrence = "FREQ=SOMETIMES"
	resp, err := f.Events.Create(ctx, badRule)
	requireFailure(t, resp, err, http.StatusBadRequest, dto.ErrorCodeValidationFailed)

	backwards := newEvent(10)
	end := backwards.StartDate.Add(-time.Hour)
	backwards.EndDate = &end
	resp, err = f.Events.Create(ctx, backwards)
	requireFailure(t, resp, err, http.StatusBadRequest, dto.ErrorCodeValidationFailed)
}

func TestSpotlightsMockAPI_CreateStartsCountersAtZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := requireOK(t, result(f.Spotlights.Create(ctx, models.Spotlight{
		Title:      "Class of 2010 founder",
		LikeCount:  50,
		ViewCount:  900,
		ShareCount: 12,
	})))
	assert.Equal(t, 0, created.LikeCount)
	assert.Equal(t, 0, created.ViewCount)
	assert.Equal(t, 0, created.ShareCount)
	assert.Equal(t, 0.0, created.EngagementRate)

	liked := requireOK(t, result(f.Spotlights.Perform(ctx, created.ID, models.ActionLike, nil)))
	assert.Equal(t, 1, liked.LikeCount)
}

func TestSpotlightsMockAPI_CreateChecksStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.Spotlights.Create(ctx, models.Spotlight{Title: "Unknown", Status: "bogus"})
	requireFailure(t, resp, err, http.StatusBadRequest, dto.ErrorCodeValidationFailed)

	list, err := f.Spotlights.List(ctx, dto.ListParams{Filters: dto.Filters{"status": "bogus"}})
	require.NoError(t, err)
	assert.Empty(t, list.Data)

	draft := requireOK(t, result(f.Spotlights.Create(ctx, models.Spotlight{Title: "Defaulted"})))
	assert.Equal(t, models.SpotlightStatusDraft, draft.Status)

	scheduled := requireOK(t, result(f.Spotlights.Create(ctx, models.Spotlight{Title: "Given", Status: models.SpotlightStatusScheduled})))
	assert.Equal(t, models.SpotlightStatusScheduled, scheduled.Status)
}

func TestEventsMockAPI_NextOccurrence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	recurring := requireOK(t, result(f.Events.Get(ctx, "evt-002")))
	require.NotNil(t, recurring.NextOccurrence)
	assert.True(t, recurring.NextOccurrence.Equal(time.Date(2026, 3, 17, 18, 0, 0, 0, time.UTC)),
		"got %s", recurring.NextOccurrence)

	single := requireOK(t, result(f.Events.Get(ctx, "evt-001")))
	assert.Nil(t, single.NextOccurrence)
}

func TestEventsMockAPI_CanceledContext(t *testing.T) {
	store := mockdata.NewStore(mockdata.NewSeedSource(seed.Default()))
	api := NewEventsMockAPI(store, Options{Latency: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := api.Get(ctx, "evt-001")
	requireFailure(t, resp, err, dto.StatusClientClosedRequest, dto.ErrorCodeRequestCanceled)

	list, err := api.List(ctx, dto.ListParams{})
	require.NoError(t, err)
	assert.False(t, list.Success)
	assert.Empty(t, list.Data)
}

func TestEventsMockAPI_Actions(t *testing.T) {
	api := NewEventsMockAPI(mockdata.NewStore(mockdata.NewMemorySource()), Options{})

	assert.Equal(t, []models.Action{
		models.ActionCancel,
		models.ActionComplete,
		models.ActionPublish,
		models.ActionRegister,
		models.ActionUnpublish,
		models.ActionUnregister,
		models.ActionView,
	}, api.Actions())
}

func TestQAMockAPI_LikesAccumulate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := requireOK(t, result(f.QA.Create(ctx, models.QAItem{Question: "How do I join a chapter?"})))
	assert.Equal(t, models.QAStatusPending, created.Status)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.QA.Perform(ctx, created.ID, models.ActionLike, nil)
		}()
	}
	wg.Wait()

	got := requireOK(t, result(f.QA.Get(ctx, created.ID)))
	assert.Equal(t, 3, got.LikeCount)
}

func TestQAMockAPI_Answer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.QA.Perform(ctx, "qa-002", models.ActionAnswer, dto.Patch{"answer": "  "})
	requireFailure(t, resp, err, http.StatusBadRequest, dto.ErrorCodeValidationFailed)

	answered := requireOK(t, result(f.QA.Perform(ctx, "qa-002", models.ActionAnswer, dto.Patch{
		"answer":     "Visit the chapters page and press join.",
		"answeredBy": "usr-001",
	})))
	assert.Equal(t, models.QAStatusAnswered, answered.Status)
	assert.Equal(t, "usr-001", answered.AnsweredBy)
	require.NotNil(t, answered.AnsweredAt)
	assert.True(t, answered.AnsweredAt.Equal(testNow))

	published := requireOK(t, result(f.QA.Perform(ctx, "qa-002", models.ActionPublish, nil)))
	assert.Equal(t, models.QAStatusPublished, published.Status)
}

func TestMentorshipMockAPI_BulkAccept(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bulk := requireOK(t, result(f.Mentorships.BulkOperation(ctx, models.ActionAccept, []string{"mnt-002", "mnt-404"})))
	assert.Equal(t, "accept", bulk.Operation)
	assert.Equal(t, 2, bulk.Requested)
	assert.Equal(t, 1, bulk.UpdatedCount)
	assert.Equal(t, 1, bulk.FailedCount)
	require.Len(t, bulk.Results, 2)
	assert.True(t, bulk.Results[0].Success)
	assert.False(t, bulk.Results[1].Success)
	require.NotNil(t, bulk.Results[1].Error)
	assert.Equal(t, http.StatusNotFound, bulk.Results[1].Error.Code)

	accepted := requireOK(t, result(f.Mentorships.Get(ctx, "mnt-002")))
	assert.Equal(t, models.MentorshipStatusActive, accepted.Status)
	require.NotNil(t, accepted.StartDate)
	assert.True(t, accepted.StartDate.Equal(testNow))
}

func TestMentorshipMockAPI_BulkMixedFailures(t *testing.T) {
	f := newFixture(t)

	bulk := requireOK(t, result(f.Mentorships.BulkOperation(context.Background(), models.ActionDecline, []string{"mnt-001", "mnt-002"})))
	assert.Equal(t, 1, bulk.UpdatedCount)
	require.Len(t, bulk.Results, 2)
	require.NotNil(t, bulk.Results[0].Error)
	assert.Equal(t, dto.ErrorCodeInvalidTransition, bulk.Results[0].Error.Type)
}

func TestMentorshipMockAPI_BulkRejectsUnknownOperation(t *testing.T) {
	f := newFixture(t)

	resp, err := f.Mentorships.BulkOperation(context.Background(), models.ActionLike, []string{"mnt-001"})
	requireFailure(t, resp, err, http.StatusBadRequest, dto.ErrorCodeUnsupportedAction)
}

func TestMentorshipMockAPI_BulkDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bulk := requireOK(t, result(f.Mentorships.BulkOperation(ctx, models.ActionDelete, []string{"mnt-001", "mnt-001"})))
	assert.Equal(t, 1, bulk.UpdatedCount)
	assert.Equal(t, 1, bulk.FailedCount)

	list, err := f.Mentorships.List(ctx, dto.ListParams{})
	require.NoError(t, err)
	assert.Len(t, list.Data, 1)
}

func TestMentorshipMockAPI_NameFallback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := requireOK(t, result(f.Mentorships.Create(ctx, models.Mentorship{
		Title:    "Product management coaching",
		MentorID: "usr-001",
		MenteeID: "usr-999",
	})))
	assert.Equal(t, models.MentorshipStatusPending, created.Status)
	assert.Equal(t, "Alice Johnson", created.MentorName)
	assert.Equal(t, "Mentee usr-999", created.MenteeName)

	resp, err := f.Mentorships.List(ctx, dto.ListParams{Filters: dto.Filters{"mentorId": "usr-002"}})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Marco Rossi", resp.Data[0].MentorName)
	assert.Equal(t, "Chen Wei", resp.Data[0].MenteeName)
}

func TestProfilesMockAPI_UpdateNotifications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got := requireOK(t, result(f.Profiles.UpdateNotifications(ctx, "usr-001", dto.Patch{"digest": "daily", "sms": true})))
	assert.Equal(t, models.NotificationSettings{
		Email:     true,
		Push:      false,
		SMS:       true,
		Digest:    "daily",
		Events:    true,
		Mentoring: true,
	}, got.Notifications)
	assert.Equal(t, "Alice", got.FirstName)

	resp, err := f.Profiles.UpdateNotifications(ctx, "usr-404", dto.Patch{"digest": "daily"})
	requireFailure(t, resp, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound)
}

func TestProfilesMockAPI_CreateAppliesDefaultNotifications(t *testing.T) {
	f := newFixture(t)

	created := requireOK(t, result(f.Profiles.Create(context.Background(), models.Profile{
		FirstName: "Dana",
		LastName:  "Okafor",
		Email:     "dana@example.org",
	})))
	assert.Equal(t, DefaultNotifications, created.Notifications)
	assert.Equal(t, models.ProfileStatusPending, created.Status)

	active := requireOK(t, result(f.Profiles.Perform(context.Background(), created.ID, models.ActionActivate, nil)))
	assert.Equal(t, models.ProfileStatusActive, active.Status)
}

func TestSponsorsMockAPI_ListPartners(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	partners, err := f.Sponsors.ListPartners(ctx, dto.ListParams{})
	require.NoError(t, err)
	require.Len(t, partners.Data, 1)
	assert.Equal(t, "spn-002", partners.Data[0].ID)

	all, err := f.Sponsors.List(ctx, dto.ListParams{})
	require.NoError(t, err)
	require.Len(t, all.Data, 3)
	assert.Equal(t, models.SponsorTierPlatinum, all.Data[0].Tier)
	assert.Equal(t, models.SponsorTierPartner, all.Data[2].Tier)
}

func TestSponsorsMockAPI_RejectsNegativeContribution(t *testing.T) {
	f := newFixture(t)

	resp, err := f.Sponsors.Create(context.Background(), models.Sponsor{
		Name:               "Acme",
		ContributionAmount: decimal.NewFromInt(-5),
	})
	requireFailure(t, resp, err, http.StatusBadRequest, dto.ErrorCodeValidationFailed)
}

func TestSponsorsMockAPI_ApproveStampsStart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := requireOK(t, result(f.Sponsors.Create(ctx, models.Sponsor{Name: "Acme", ContributionAmount: decimal.NewFromInt(5000)})))
	approved := requireOK(t, result(f.Sponsors.Perform(ctx, created.ID, models.ActionApprove, nil)))
	assert.Equal(t, models.SponsorStatusActive, approved.Status)
	require.NotNil(t, approved.SponsorshipStart)
	assert.True(t, approved.SponsorshipStart.Equal(testNow))
}

func TestSpotlightsMockAPI_EngagementRate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got := requireOK(t, result(f.Spotlights.Get(ctx, "spt-001")))
	assert.Equal(t, 10.0, got.EngagementRate)

	liked := requireOK(t, result(f.Spotlights.Perform(ctx, "spt-001", models.ActionLike, nil)))
	assert.Equal(t, 97, liked.LikeCount)
	assert.Equal(t, 10.08, liked.EngagementRate)

	draft := requireOK(t, result(f.Spotlights.Get(ctx, "spt-002")))
	assert.Equal(t, 0.0, draft.EngagementRate)
}

func TestSpotlightsMockAPI_Schedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.Spotlights.Perform(ctx, "spt-002", models.ActionSchedule, dto.Patch{"scheduledDate": "2020-01-01T00:00:00Z"})
	requireFailure(t, resp, err, http.StatusBadRequest, dto.ErrorCodeValidationFailed)

	scheduled := requireOK(t, result(f.Spotlights.Perform(ctx, "spt-002", models.ActionSchedule, dto.Patch{"scheduledDate": "2026-04-01T09:00:00Z"})))
	assert.Equal(t, models.SpotlightStatusScheduled, scheduled.Status)
	require.NotNil(t, scheduled.ScheduledDate)
	assert.True(t, scheduled.ScheduledDate.Equal(time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)))
}

func TestSpotlightsMockAPI_FeatureIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	featured := requireOK(t, result(f.Spotlights.Perform(ctx, "spt-002", models.ActionFeature, nil)))
	assert.True(t, featured.Featured)

	again := requireOK(t, result(f.Spotlights.Perform(ctx, "spt-002", models.ActionFeature, nil)))
	assert.True(t, again.Featured)
	assert.True(t, again.UpdatedAt.Equal(featured.UpdatedAt))

	requireOK(t, result(f.Spotlights.Perform(ctx, "spt-001", models.ActionUnfeature, nil)))

	list, err := f.Spotlights.List(ctx, dto.ListParams{})
	require.NoError(t, err)
	require.NotEmpty(t, list.Data)
	assert.Equal(t, "spt-002", list.Data[0].ID)
}

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		likes, shares, views int
		want                 float64
	}{
		{0, 0, 0, 0},
		{5, 5, 0, 0},
		{1, 0, 3, 33.33},
		{50, 50, 100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EngagementRate(tt.likes, tt.shares, tt.views))
	}
}
