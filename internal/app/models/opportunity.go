package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpportunityStatus is the lifecycle status of an opportunity
type OpportunityStatus string

const (
	OpportunityStatusDraft     OpportunityStatus = "draft"
	OpportunityStatusPending   OpportunityStatus = "pending"
	OpportunityStatusActive    OpportunityStatus = "active"
	OpportunityStatusCancelled OpportunityStatus = "cancelled"
	OpportunityStatusExpired   OpportunityStatus = "expired"
	OpportunityStatusFilled    OpportunityStatus = "filled"
)

// OpportunityType classifies an opportunity
type OpportunityType string

const (
	OpportunityTypeFullTime   OpportunityType = "full-time"
	OpportunityTypePartTime   OpportunityType = "part-time"
	OpportunityTypeContract   OpportunityType = "contract"
	OpportunityTypeInternship OpportunityType = "internship"
	OpportunityTypeVolunteer  OpportunityType = "volunteer"
)

// ExperienceLevel is the seniority an opportunity targets
type ExperienceLevel string

const (
	ExperienceLevelEntry     ExperienceLevel = "entry"
	ExperienceLevelMid       ExperienceLevel = "mid"
	ExperienceLevelSenior    ExperienceLevel = "senior"
	ExperienceLevelExecutive ExperienceLevel = "executive"
)

// Opportunity represents a job or volunteering opening posted to the network
type Opportunity struct {
	ID               string            `json:"id"`
	Title            string            `json:"title" validate:"required,min=3,max=200"`
	Company          string            `json:"company" validate:"required"`
	Description      string            `json:"description"`
	Type             OpportunityType   `json:"type" validate:"omitempty,oneof=full-time part-time contract internship volunteer"`
	Level            ExperienceLevel   `json:"level" validate:"omitempty,oneof=entry mid senior executive"`
	Status           OpportunityStatus `json:"status"`
	Location         string            `json:"location"`
	IsRemote         bool              `json:"isRemote"`
	SalaryMin        decimal.Decimal   `json:"salaryMin"`
	SalaryMax        decimal.Decimal   `json:"salaryMax"`
	Currency         string            `json:"currency,omitempty"`
	ApplicationURL   string            `json:"applicationUrl,omitempty" validate:"omitempty,url"`
	PostedBy         string            `json:"postedBy,omitempty"`
	Requirements     []string          `json:"requirements"`
	Tags             []string          `json:"tags"`
	ViewCount        int               `json:"viewCount"`
	ApplicationCount int               `json:"applicationCount"`
	PostedDate       *time.Time        `json:"postedDate,omitempty"`
	ExpiryDate       *time.Time        `json:"expiryDate,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// OpportunityLifecycle is the opportunity status table
var OpportunityLifecycle = NewStateMachine("opportunity", map[Action]Transition[OpportunityStatus]{
	ActionActivate:   {From: []OpportunityStatus{OpportunityStatusDraft, OpportunityStatusPending}, To: OpportunityStatusActive},
	ActionApprove:    {From: []OpportunityStatus{OpportunityStatusPending}, To: OpportunityStatusActive},
	ActionReject:     {From: []OpportunityStatus{OpportunityStatusPending}, To: OpportunityStatusCancelled},
	ActionCancel:     {From: []OpportunityStatus{OpportunityStatusDraft, OpportunityStatusPending, OpportunityStatusActive}, To: OpportunityStatusCancelled},
	ActionMarkFilled: {From: []OpportunityStatus{OpportunityStatusActive}, To: OpportunityStatusFilled},
	ActionExpire:     {From: []OpportunityStatus{OpportunityStatusActive}, To: OpportunityStatusExpired},
	ActionRenew:      {From: []OpportunityStatus{OpportunityStatusActive, OpportunityStatusExpired}, To: OpportunityStatusActive},
})
