package mockapi

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// OpportunityTTL is how long a posting stays open, and how far renew pushes its expiry.
const OpportunityTTL = 30 * 24 * time.Hour

// OpportunitiesMockAPI serves opportunities from the mock store.
type OpportunitiesMockAPI struct {
	*resource[models.Opportunity]
}

// NewOpportunitiesMockAPI creates the opportunities mock API.
func NewOpportunitiesMockAPI(store *mockdata.Store, opts Options) *OpportunitiesMockAPI {
	return &OpportunitiesMockAPI{&resource[models.Opportunity]{
		store:         store,
		collection:    models.CollectionOpportunities,
		entity:        "opportunity",
		label:         "Opportunity",
		plural:        "Opportunities",
		latency:       opts.Latency,
		logger:        opts.Logger,
		lifecycle:     models.OpportunityLifecycle,
		initialStatus: string(models.OpportunityStatusPending),
		actions: map[models.Action]action{
			models.ActionActivate:   transition(),
			models.ActionApprove:    transition(),
			models.ActionReject:     transition(),
			models.ActionCancel:     transition(),
			models.ActionMarkFilled: transition(),
			models.ActionExpire:     transition(),
			models.ActionRenew:      transitionWith(extendTime("expiryDate", 0, 0, 30)),
			models.ActionView:       count("viewCount", 1),
			models.ActionApply:      count("applicationCount", 1),
		},
		counters:     []string{"viewCount", "applicationCount"},
		arrays:       []string{"requirements", "tags"},
		searchFields: []string{"title", "company", "description", "location"},
		sorter: sorter[models.Opportunity]{
			defaultKey:  "postedDate",
			defaultDesc: true,
			keys: map[string]compareFunc[models.Opportunity]{
				"postedDate": byOptionalTime(func(o models.Opportunity) *time.Time { return o.PostedDate }),
				"expiryDate": byOptionalTime(func(o models.Opportunity) *time.Time { return o.ExpiryDate }),
				"title":      byString(func(o models.Opportunity) string { return o.Title }),
				"company":    byString(func(o models.Opportunity) string { return o.Company }),
				"salaryMax": func(a, b models.Opportunity) int {
					return a.SalaryMax.Cmp(b.SalaryMax)
				},
				"createdAt": byTime(func(o models.Opportunity) time.Time { return o.CreatedAt }),
			},
		},
		defaults: opportunityDefaults,
		check:    checkOpportunity,
	}}
}

func opportunityDefaults(_ context.Context, doc mockdata.Document, now time.Time) error {
	if doc.Blank("postedDate") {
		doc.SetTime("postedDate", now)
	}
	if doc.Blank("expiryDate") {
		posted, _ := doc.Time("postedDate")
		doc.SetTime("expiryDate", posted.Add(OpportunityTTL))
	}
	return nil
}

func checkOpportunity(doc mockdata.Document) error {
	low, err := amount(doc, "salaryMin")
	if err != nil {
		return err
	}
	high, err := amount(doc, "salaryMax")
	if err != nil {
		return err
	}
	if low.IsNegative() || high.IsNegative() {
		return fmt.Errorf("%w: salary must not be negative", apperrors.ErrValidationFailed)
	}
	if !high.IsZero() && high.LessThan(low) {
		return fmt.Errorf("%w: salaryMax is below salaryMin", apperrors.ErrValidationFailed)
	}
	posted, hasPosted := doc.Time("postedDate")
	expiry, hasExpiry := doc.Time("expiryDate")
	if hasPosted && hasExpiry && expiry.Before(posted) {
		return fmt.Errorf("%w: expiryDate is before postedDate", apperrors.ErrValidationFailed)
	}
	return nil
}

func amount(doc mockdata.Document, field string) (decimal.Decimal, error) {
	raw, ok := doc[field]
	if !ok || raw == nil || raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(fmt.Sprint(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %v", apperrors.ErrValidationFailed, field, err)
	}
	return d, nil
}
