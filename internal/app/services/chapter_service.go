package services

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
)

// ChapterService defines the interface for chapter operations
type ChapterService interface {
	Service[models.Chapter]
	ActivateChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error)
	DeactivateChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error)
	ApproveChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error)
	RejectChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error)
	JoinChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error)
	LeaveChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error)
}

type chapterServiceImpl struct {
	facade[models.Chapter]
}

// NewChapterService creates a new chapter service instance
func NewChapterService(source repositories.ChapterDataSource) ChapterService {
	return &chapterServiceImpl{facade[models.Chapter]{source: source}}
}

func (s *chapterServiceImpl) ActivateChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error) {
	return s.do(ctx, id, models.ActionActivate)
}

func (s *chapterServiceImpl) DeactivateChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error) {
	return s.do(ctx, id, models.ActionDeactivate)
}

func (s *chapterServiceImpl) ApproveChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error) {
	return s.do(ctx, id, models.ActionApprove)
}

func (s *chapterServiceImpl) RejectChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error) {
	return s.do(ctx, id, models.ActionReject)
}

func (s *chapterServiceImpl) JoinChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error) {
	return s.do(ctx, id, models.ActionJoin)
}

func (s *chapterServiceImpl) LeaveChapter(ctx context.Context, id string) (dto.APIResponse[models.Chapter], error) {
	return s.do(ctx, id, models.ActionLeave)
}
