package models

import "time"

// MentorshipStatus is the lifecycle status of a mentorship
type MentorshipStatus string

const (
	MentorshipStatusPending   MentorshipStatus = "pending"
	MentorshipStatusActive    MentorshipStatus = "active"
	MentorshipStatusCompleted MentorshipStatus = "completed"
	MentorshipStatusCancelled MentorshipStatus = "cancelled"
	MentorshipStatusDeclined  MentorshipStatus = "declined"
)

// MentorshipCategory is the subject area of a mentorship
type MentorshipCategory string

const (
	MentorshipCategoryCareer       MentorshipCategory = "career"
	MentorshipCategoryTechnical    MentorshipCategory = "technical"
	MentorshipCategoryLeadership   MentorshipCategory = "leadership"
	MentorshipCategoryEntrepreneur MentorshipCategory = "entrepreneurship"
	MentorshipCategoryAcademic     MentorshipCategory = "academic"
)

// Mentorship pairs a mentor with a mentee
type Mentorship struct {
	ID           string             `json:"id"`
	Title        string             `json:"title" validate:"required"`
	Description  string             `json:"description"`
	Category     MentorshipCategory `json:"category" validate:"omitempty,oneof=career technical leadership entrepreneurship academic"`
	Status       MentorshipStatus   `json:"status"`
	MentorID     string             `json:"mentorId,omitempty"`
	MentorName   string             `json:"mentorName,omitempty"`
	MenteeID     string             `json:"menteeId,omitempty"`
	MenteeName   string             `json:"menteeName,omitempty"`
	Goals        []string           `json:"goals"`
	SessionCount int                `json:"sessionCount"`
	StartDate    *time.Time         `json:"startDate,omitempty"`
	EndDate      *time.Time         `json:"endDate,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// MentorshipLifecycle is the mentorship status table
var MentorshipLifecycle = NewStateMachine("mentorship", map[Action]Transition[MentorshipStatus]{
	ActionAccept:   {From: []MentorshipStatus{MentorshipStatusPending}, To: MentorshipStatusActive},
	ActionDecline:  {From: []MentorshipStatus{MentorshipStatusPending}, To: MentorshipStatusDeclined},
	ActionComplete: {From: []MentorshipStatus{MentorshipStatusActive}, To: MentorshipStatusCompleted},
	ActionCancel:   {From: []MentorshipStatus{MentorshipStatusPending, MentorshipStatusActive}, To: MentorshipStatusCancelled},
})
