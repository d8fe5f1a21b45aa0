package services

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
)

// QAService defines the interface for question and answer operations
type QAService interface {
	Service[models.QAItem]
	AnswerQuestion(ctx context.Context, id, answer, answeredBy string) (dto.APIResponse[models.QAItem], error)
	PublishQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error)
	UnpublishQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error)
	RejectQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error)
	ArchiveQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error)
	LikeQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error)
	UnlikeQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error)
	IncrementViewCount(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error)
}

type qaServiceImpl struct {
	facade[models.QAItem]
}

// NewQAService creates a new Q&A service instance
func NewQAService(source repositories.QADataSource) QAService {
	return &qaServiceImpl{facade[models.QAItem]{source: source}}
}

func (s *qaServiceImpl) AnswerQuestion(ctx context.Context, id, answer, answeredBy string) (dto.APIResponse[models.QAItem], error) {
	payload := dto.Patch{"answer": answer}
	if answeredBy != "" {
		payload["answeredBy"] = answeredBy
	}
	return s.Do(ctx, id, models.ActionAnswer, payload)
}

func (s *qaServiceImpl) PublishQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error) {
	return s.do(ctx, id, models.ActionPublish)
}

func (s *qaServiceImpl) UnpublishQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error) {
	return s.do(ctx, id, models.ActionUnpublish)
}

func (s *qaServiceImpl) RejectQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error) {
	return s.do(ctx, id, models.ActionReject)
}

func (s *qaServiceImpl) ArchiveQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error) {
	return s.do(ctx, id, models.ActionArchive)
}

func (s *qaServiceImpl) LikeQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error) {
	return s.do(ctx, id, models.ActionLike)
}

func (s *qaServiceImpl) UnlikeQuestion(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error) {
	return s.do(ctx, id, models.ActionUnlike)
}

func (s *qaServiceImpl) IncrementViewCount(ctx context.Context, id string) (dto.APIResponse[models.QAItem], error) {
	return s.do(ctx, id, models.ActionView)
}
