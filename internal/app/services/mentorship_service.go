package services

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
)

// MentorshipService defines the interface for mentorship operations
type MentorshipService interface {
	Service[models.Mentorship]
	AcceptMentorship(ctx context.Context, id string) (dto.APIResponse[models.Mentorship], error)
	DeclineMentorship(ctx context.Context, id string) (dto.APIResponse[models.Mentorship], error)
	CompleteMentorship(ctx context.Context, id string) (dto.APIResponse[models.Mentorship], error)
	CancelMentorship(ctx context.Context, id string) (dto.APIResponse[models.Mentorship], error)
	LogSession(ctx context.Context, id string) (dto.APIResponse[models.Mentorship], error)
}

type mentorshipServiceImpl struct {
	facade[models.Mentorship]
}

// NewMentorshipService creates a new mentorship service instance
func NewMentorshipService(source repositories.MentorshipDataSource) MentorshipService {
	return &mentorshipServiceImpl{facade[models.Mentorship]{source: source}}
}

func (s *mentorshipServiceImpl) AcceptMentorship(ctx context.Context, id string) (dto.APIResponse[models.Mentorship], error) {
	return s.do(ctx, id, models.ActionAccept)
}

func (s *mentorshipServiceImpl) DeclineMentorship(ctx context.Context, id string) (dto.APIResponse[models.Mentorship], error) {
	return s.do(ctx, id, models.ActionDecline)
}

func (s *mentorshipServiceImpl) CompleteMentorship(ctx context.Context, id string) (dto.APIResponse[models.Mentorship], error) {
	return s.do(ctx, id, models.ActionComplete)
}

func (s *mentorshipServiceImpl) CancelMentorship(ctx context.Context, id string) (dto.APIResponse[models.Mentorship], error) {
	return s.do(ctx, id, models.ActionCancel)
}

func (s *mentorshipServiceImpl) LogSession(ctx context.Context, id string) (dto.APIResponse[models.Mentorship], error) {
	return s.do(ctx, id, models.ActionSession)
}
