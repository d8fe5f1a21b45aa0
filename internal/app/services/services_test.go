package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// MockSource is a mock implementation of a domain data source
type MockSource[T any] struct {
	mock.Mock
}

func (m *MockSource[T]) List(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[T], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(dto.PaginatedResponse[T]), args.Error(1)
}

func (m *MockSource[T]) Get(ctx context.Context, id string) (dto.APIResponse[T], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.APIResponse[T]), args.Error(1)
}

func (m *MockSource[T]) Create(ctx context.Context, item T) (dto.APIResponse[T], error) {
	args := m.Called(ctx, item)
	return args.Get(0).(dto.APIResponse[T]), args.Error(1)
}

func (m *MockSource[T]) Update(ctx context.Context, id string, patch dto.Patch) (dto.APIResponse[T], error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(dto.APIResponse[T]), args.Error(1)
}

func (m *MockSource[T]) Delete(ctx context.Context, id string) (dto.APIResponse[dto.Empty], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.APIResponse[dto.Empty]), args.Error(1)
}

func (m *MockSource[T]) Perform(ctx context.Context, id string, action models.Action, payload dto.Patch) (dto.APIResponse[T], error) {
	args := m.Called(ctx, id, action, payload)
	return args.Get(0).(dto.APIResponse[T]), args.Error(1)
}

func (m *MockSource[T]) BulkOperation(ctx context.Context, op models.Action, ids []string) (dto.APIResponse[dto.BulkOperationResult], error) {
	args := m.Called(ctx, op, ids)
	return args.Get(0).(dto.APIResponse[dto.BulkOperationResult]), args.Error(1)
}

type MockSponsorSource struct {
	MockSource[models.Sponsor]
}

func (m *MockSponsorSource) ListPartners(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[models.Sponsor], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(dto.PaginatedResponse[models.Sponsor]), args.Error(1)
}

type MockProfileSource struct {
	MockSource[models.Profile]
}

func (m *MockProfileSource) UpdateNotifications(ctx context.Context, id string, settings dto.Patch) (dto.APIResponse[models.Profile], error) {
	args := m.Called(ctx, id, settings)
	return args.Get(0).(dto.APIResponse[models.Profile]), args.Error(1)
}

func TestFacade_ListNormalizesParams(t *testing.T) {
	ctx := context.Background()
	source := new(MockSource[models.Event])
	svc := NewEventService(source)

	want := dto.ListParams{Page: 2, Limit: helpers.MaxPageSize, Filters: dto.Filters{"status": "published"}}
	page := dto.PaginatedResponse[models.Event]{Success: true, Data: []models.Event{{ID: "evt-001"}}}
	source.On("List", ctx, want).Return(page, nil).Once()

	got, err := svc.List(ctx, dto.ListParams{Limit: 5000, Filters: dto.Filters{"page": "2", "status": "published"}})
	require.NoError(t, err)
	assert.Equal(t, page, got)
	source.AssertExpectations(t)
}

func TestFacade_PassesEnvelopesThrough(t *testing.T) {
	ctx := context.Background()
	source := new(MockSource[models.Mentorship])
	svc := NewMentorshipService(source)

	failure := dto.APIResponse[models.Mentorship]{Error: dto.NotFoundDetail("Mentorship not found")}
	source.On("Perform", ctx, "mnt-404", models.ActionAccept, dto.Patch(nil)).Return(failure, nil).Once()

	got, err := svc.AcceptMentorship(ctx, "mnt-404")
	require.NoError(t, err)
	assert.Equal(t, failure, got)
	source.AssertExpectations(t)
}

func TestFacade_PropagatesTransportErrors(t *testing.T) {
	ctx := context.Background()
	source := new(MockSource[models.Chapter])
	svc := NewChapterService(source)

	boom := errors.New("connection refused")
	source.On("Get", ctx, "chp-001").Return(dto.APIResponse[models.Chapter]{}, boom).Once()
	source.On("BulkOperation", ctx, models.ActionActivate, []string{"chp-001"}).
		Return(dto.APIResponse[dto.BulkOperationResult]{}, boom).Once()

	_, err := svc.Get(ctx, "chp-001")
	assert.ErrorIs(t, err, boom)
	_, err = svc.Bulk(ctx, models.ActionActivate, []string{"chp-001"})
	assert.ErrorIs(t, err, boom)
	source.AssertExpectations(t)
}

func TestQAService_AnswerQuestion(t *testing.T) {
	ctx := context.Background()
	source := new(MockSource[models.QAItem])
	svc := NewQAService(source)

	ok := dto.APIResponse[models.QAItem]{Success: true}
	source.On("Perform", ctx, "qa-002", models.ActionAnswer, dto.Patch{"answer": "Yes", "answeredBy": "usr-001"}).Return(ok, nil).Once()
	source.On("Perform", ctx, "qa-002", models.ActionAnswer, dto.Patch{"answer": "No"}).Return(ok, nil).Once()

	_, err := svc.AnswerQuestion(ctx, "qa-002", "Yes", "usr-001")
	require.NoError(t, err)
	_, err = svc.AnswerQuestion(ctx, "qa-002", "No", "")
	require.NoError(t, err)
	source.AssertExpectations(t)
}

func TestSpotlightService_ScheduleSendsUTC(t *testing.T) {
	ctx := context.Background()
	source := new(MockSource[models.Spotlight])
	svc := NewSpotlightService(source)

	at := time.Date(2026, 6, 1, 11, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	source.On("Perform", ctx, "spt-002", models.ActionSchedule, dto.Patch{"scheduledDate": "2026-06-01T09:00:00Z"}).
		Return(dto.APIResponse[models.Spotlight]{Success: true}, nil).Once()

	_, err := svc.ScheduleSpotlight(ctx, "spt-002", at)
	require.NoError(t, err)
	source.AssertExpectations(t)
}

func TestSponsorService_GetPartners(t *testing.T) {
	ctx := context.Background()
	source := new(MockSponsorSource)
	svc := NewSponsorService(source)

	want := dto.ListParams{Page: helpers.DefaultPage, Limit: helpers.DefaultPageSize, Filters: dto.Filters{}}
	source.On("ListPartners", ctx, want).Return(dto.PaginatedResponse[models.Sponsor]{Success: true}, nil).Once()

	_, err := svc.GetPartners(ctx, dto.ListParams{})
	require.NoError(t, err)
	source.AssertExpectations(t)
}

func TestProfileService_UpdateNotifications(t *testing.T) {
	ctx := context.Background()
	source := new(MockProfileSource)
	svc := NewProfileService(source)

	settings := dto.Patch{"digest": "daily"}
	source.On("UpdateNotifications", ctx, "usr-001", settings).Return(dto.APIResponse[models.Profile]{Success: true}, nil).Once()

	got, err := svc.UpdateNotifications(ctx, "usr-001", settings)
	require.NoError(t, err)
	assert.True(t, got.Success)
	source.AssertExpectations(t)
}
