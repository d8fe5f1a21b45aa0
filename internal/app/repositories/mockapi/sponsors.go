package mockapi

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// SponsorsMockAPI serves sponsors and partners from the mock store.
type SponsorsMockAPI struct {
	*resource[models.Sponsor]
}

// NewSponsorsMockAPI creates the sponsors mock API.
func NewSponsorsMockAPI(store *mockdata.Store, opts Options) *SponsorsMockAPI {
	return &SponsorsMockAPI{&resource[models.Sponsor]{
		store:         store,
		collection:    models.CollectionSponsors,
		entity:        "sponsor",
		label:         "Sponsor",
		plural:        "Sponsors",
		latency:       opts.Latency,
		logger:        opts.Logger,
		lifecycle:     models.SponsorLifecycle,
		initialStatus: string(models.SponsorStatusPending),
		actions: map[models.Action]action{
			models.ActionApprove:    transitionWith(stampOnce("sponsorshipStart")),
			models.ActionReject:     transition(),
			models.ActionActivate:   transition(),
			models.ActionDeactivate: transition(),
			models.ActionExpire:     transition(),
			models.ActionRenew:      transitionWith(extendTime("sponsorshipEnd", 1, 0, 0)),
		},
		arrays:       []string{"sponsoredEventIds", "benefits"},
		searchFields: []string{"name", "description", "industry"},
		sorter: sorter[models.Sponsor]{
			defaultKey: "tier",
			keys: map[string]compareFunc[models.Sponsor]{
				"tier": thenBy(
					byNumber(func(s models.Sponsor) int { return s.Tier.Rank() }),
					byString(func(s models.Sponsor) string { return s.Name }),
				),
				"name": byString(func(s models.Sponsor) string { return s.Name }),
				"contributionAmount": func(a, b models.Sponsor) int {
					return a.ContributionAmount.Cmp(b.ContributionAmount)
				},
				"createdAt": byTime(func(s models.Sponsor) time.Time { return s.CreatedAt }),
			},
		},
		check: checkSponsor,
	}}
}

// ListPartners lists sponsors of the partner tier.
func (a *SponsorsMockAPI) ListPartners(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[models.Sponsor], error) {
	filters := dto.Filters{}
	for k, v := range params.Filters {
		filters[k] = v
	}
	filters["tier"] = string(models.SponsorTierPartner)
	params.Filters = filters
	return a.List(ctx, params)
}

func checkSponsor(doc mockdata.Document) error {
	if raw, ok := doc["contributionAmount"]; ok && raw != nil {
		amount, err := decimal.NewFromString(fmt.Sprint(raw))
		if err != nil {
			return fmt.Errorf("%w: contributionAmount: %v", apperrors.ErrValidationFailed, err)
		}
		if amount.IsNegative() {
			return fmt.Errorf("%w: contributionAmount must not be negative", apperrors.ErrValidationFailed)
		}
	}
	start, hasStart := doc.Time("sponsorshipStart")
	end, hasEnd := doc.Time("sponsorshipEnd")
	if hasStart && hasEnd && end.Before(start) {
		return fmt.Errorf("%w: sponsorshipEnd is before sponsorshipStart", apperrors.ErrValidationFailed)
	}
	return nil
}
