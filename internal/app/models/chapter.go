package models

import "time"

// ChapterStatus is the lifecycle status of a chapter
type ChapterStatus string

const (
	ChapterStatusPending  ChapterStatus = "pending"
	ChapterStatusActive   ChapterStatus = "active"
	ChapterStatusInactive ChapterStatus = "inactive"
)

// ChapterType classifies a chapter
type ChapterType string

const (
	ChapterTypeRegional      ChapterType = "regional"
	ChapterTypeInternational ChapterType = "international"
	ChapterTypeProfessional  ChapterType = "professional"
	ChapterTypeAffinity      ChapterType = "affinity"
)

// Chapter represents a local or interest-based alumni chapter
type Chapter struct {
	ID           string        `json:"id"`
	Name         string        `json:"name" validate:"required,min=2,max=120"`
	Description  string        `json:"description"`
	Type         ChapterType   `json:"type" validate:"omitempty,oneof=regional international professional affinity"`
	Status       ChapterStatus `json:"status"`
	City         string        `json:"city"`
	Country      string        `json:"country"`
	LeaderID     string        `json:"leaderId,omitempty"`
	ContactEmail string        `json:"contactEmail,omitempty" validate:"omitempty,email"`
	MemberCount  int           `json:"memberCount"`
	EventCount   int           `json:"eventCount"`
	FocusAreas   []string      `json:"focusAreas"`
	FoundedDate  *time.Time    `json:"foundedDate,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// ChapterLifecycle is the chapter status table
var ChapterLifecycle = NewStateMachine("chapter", map[Action]Transition[ChapterStatus]{
	ActionActivate:   {From: []ChapterStatus{ChapterStatusPending, ChapterStatusInactive}, To: ChapterStatusActive},
	ActionDeactivate: {From: []ChapterStatus{ChapterStatusActive}, To: ChapterStatusInactive},
	ActionApprove:    {From: []ChapterStatus{ChapterStatusPending}, To: ChapterStatusActive},
	ActionReject:     {From: []ChapterStatus{ChapterStatusPending}, To: ChapterStatusInactive},
})
