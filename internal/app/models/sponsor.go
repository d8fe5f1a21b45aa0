package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SponsorStatus is the lifecycle status of a sponsor
type SponsorStatus string

const (
	SponsorStatusPending  SponsorStatus = "pending"
	SponsorStatusActive   SponsorStatus = "active"
	SponsorStatusInactive SponsorStatus = "inactive"
	SponsorStatusExpired  SponsorStatus = "expired"
)

// SponsorTier ranks sponsors by commitment
type SponsorTier string

const (
	SponsorTierPlatinum SponsorTier = "platinum"
	SponsorTierGold     SponsorTier = "gold"
	SponsorTierSilver   SponsorTier = "silver"
	SponsorTierBronze   SponsorTier = "bronze"
	SponsorTierPartner  SponsorTier = "partner"
)

// Rank orders tiers from highest (0) to lowest; unknown tiers sort last.
func (t SponsorTier) Rank() int {
	switch t {
	case SponsorTierPlatinum:
		return 0
	case SponsorTierGold:
		return 1
	case SponsorTierSilver:
		return 2
	case SponsorTierBronze:
		return 3
	case SponsorTierPartner:
		return 4
	}
	return 5
}

// Sponsor represents a sponsoring organization or partner
type Sponsor struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name" validate:"required,min=2,max=160"`
	Description        string          `json:"description"`
	Tier               SponsorTier     `json:"tier" validate:"omitempty,oneof=platinum gold silver bronze partner"`
	Status             SponsorStatus   `json:"status"`
	Industry           string          `json:"industry,omitempty"`
	Website            string          `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL            string          `json:"logoUrl,omitempty"`
	ContactName        string          `json:"contactName,omitempty"`
	ContactEmail       string          `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContributionAmount decimal.Decimal `json:"contributionAmount"`
	Currency           string          `json:"currency,omitempty"`
	SponsoredEventIDs  []string        `json:"sponsoredEventIds"`
	Benefits           []string        `json:"benefits"`
	SponsorshipStart   *time.Time      `json:"sponsorshipStart,omitempty"`
	SponsorshipEnd     *time.Time      `json:"sponsorshipEnd,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// SponsorLifecycle is the sponsor status table
var SponsorLifecycle = NewStateMachine("sponsor", map[Action]Transition[SponsorStatus]{
	ActionApprove:    {From: []SponsorStatus{SponsorStatusPending}, To: SponsorStatusActive},
	ActionReject:     {From: []SponsorStatus{SponsorStatusPending}, To: SponsorStatusInactive},
	ActionActivate:   {From: []SponsorStatus{SponsorStatusInactive}, To: SponsorStatusActive},
	ActionDeactivate: {From: []SponsorStatus{SponsorStatusActive}, To: SponsorStatusInactive},
	ActionExpire:     {From: []SponsorStatus{SponsorStatusActive}, To: SponsorStatusExpired},
	ActionRenew:      {From: []SponsorStatus{SponsorStatusActive, SponsorStatusExpired}, To: SponsorStatusActive},
})
