package services

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
)

// OpportunityService defines the interface for opportunity operations
type OpportunityService interface {
	Service[models.Opportunity]
	ActivateOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error)
	ApproveOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error)
	RejectOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error)
	CancelOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error)
	MarkFilled(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error)
	ExpireOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error)
	RenewOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error)
	IncrementViewCount(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error)
	RecordApplication(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error)
}

type opportunityServiceImpl struct {
	facade[models.Opportunity]
}

// NewOpportunityService creates a new opportunity service instance
func NewOpportunityService(source repositories.OpportunityDataSource) OpportunityService {
	return &opportunityServiceImpl{facade[models.Opportunity]{source: source}}
}

func (s *opportunityServiceImpl) ActivateOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error) {
	return s.do(ctx, id, models.ActionActivate)
}

func (s *opportunityServiceImpl) ApproveOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error) {
	return s.do(ctx, id, models.ActionApprove)
}

func (s *opportunityServiceImpl) RejectOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error) {
	return s.do(ctx, id, models.ActionReject)
}

func (s *opportunityServiceImpl) CancelOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error) {
	return s.do(ctx, id, models.ActionCancel)
}

func (s *opportunityServiceImpl) MarkFilled(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error) {
	return s.do(ctx, id, models.ActionMarkFilled)
}

func (s *opportunityServiceImpl) ExpireOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error) {
	return s.do(ctx, id, models.ActionExpire)
}

func (s *opportunityServiceImpl) RenewOpportunity(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error) {
	return s.do(ctx, id, models.ActionRenew)
}

func (s *opportunityServiceImpl) IncrementViewCount(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error) {
	return s.do(ctx, id, models.ActionView)
}

func (s *opportunityServiceImpl) RecordApplication(ctx context.Context, id string) (dto.APIResponse[models.Opportunity], error) {
	return s.do(ctx, id, models.ActionApply)
}
