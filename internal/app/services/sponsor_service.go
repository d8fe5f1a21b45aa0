package services

import (
	"context"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// SponsorService defines the interface for sponsor and partner operations
type SponsorService interface {
	Service[models.Sponsor]
	GetPartners(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[models.Sponsor], error)
	ApproveSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error)
	RejectSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error)
	ActivateSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error)
	DeactivateSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error)
	ExpireSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error)
	RenewSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error)
}

type sponsorServiceImpl struct {
	facade[models.Sponsor]
	sponsors repositories.SponsorDataSource
}

// NewSponsorService creates a new sponsor service instance
func NewSponsorService(source repositories.SponsorDataSource) SponsorService {
	return &sponsorServiceImpl{facade: facade[models.Sponsor]{source: source}, sponsors: source}
}

func (s *sponsorServiceImpl) GetPartners(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[models.Sponsor], error) {
	return s.sponsors.ListPartners(ctx, helpers.NormalizeListParams(params))
}

func (s *sponsorServiceImpl) ApproveSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error) {
	return s.do(ctx, id, models.ActionApprove)
}

func (s *sponsorServiceImpl) RejectSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error) {
	return s.do(ctx, id, models.ActionReject)
}

func (s *sponsorServiceImpl) ActivateSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error) {
	return s.do(ctx, id, models.ActionActivate)
}

func (s *sponsorServiceImpl) DeactivateSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error) {
	return s.do(ctx, id, models.ActionDeactivate)
}

func (s *sponsorServiceImpl) ExpireSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error) {
	return s.do(ctx, id, models.ActionExpire)
}

func (s *sponsorServiceImpl) RenewSponsor(ctx context.Context, id string) (dto.APIResponse[models.Sponsor], error) {
	return s.do(ctx, id, models.ActionRenew)
}
