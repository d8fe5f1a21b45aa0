package models

import "time"

// SpotlightStatus is the lifecycle status of a spotlight
type SpotlightStatus string

const (
	SpotlightStatusDraft     SpotlightStatus = "draft"
	SpotlightStatusScheduled SpotlightStatus = "scheduled"
	SpotlightStatusPublished SpotlightStatus = "published"
	SpotlightStatusArchived  SpotlightStatus = "archived"
)

// SpotlightCategory classifies a spotlight story
type SpotlightCategory string

const (
	SpotlightCategoryCareer     SpotlightCategory = "career"
	SpotlightCategoryInnovation SpotlightCategory = "innovation"
	SpotlightCategoryCommunity  SpotlightCategory = "community"
	SpotlightCategoryResearch   SpotlightCategory = "research"
)

// Spotlight is a featured alumni story
type Spotlight struct {
	ID             string            `json:"id"`
	Title          string            `json:"title" validate:"required,min=3,max=200"`
	Summary        string            `json:"summary"`
	Content        string            `json:"content"`
	Category       SpotlightCategory `json:"category" validate:"omitempty,oneof=career innovation community research"`
	Status         SpotlightStatus   `json:"status"`
	AlumniID       string            `json:"alumniId,omitempty"`
	AlumniName     string            `json:"alumniName,omitempty"`
	GraduationYear int               `json:"graduationYear,omitempty"`
	ImageURL       string            `json:"imageUrl,omitempty"`
	Featured       bool              `json:"featured"`
	Tags           []string          `json:"tags"`
	ViewCount      int               `json:"viewCount"`
	LikeCount      int               `json:"likeCount"`
	ShareCount     int               `json:"shareCount"`
	EngagementRate float64           `json:"engagementRate"`
	ScheduledDate  *time.Time        `json:"scheduledDate,omitempty"`
	PublishedDate  *time.Time        `json:"publishedDate,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// SpotlightLifecycle is the spotlight status table
var SpotlightLifecycle = NewStateMachine("spotlight", map[Action]Transition[SpotlightStatus]{
	ActionPublish:   {From: []SpotlightStatus{SpotlightStatusDraft, SpotlightStatusScheduled, SpotlightStatusArchived}, To: SpotlightStatusPublished},
	ActionUnpublish: {From: []SpotlightStatus{SpotlightStatusPublished}, To: SpotlightStatusDraft},
	ActionSchedule:  {From: []SpotlightStatus{SpotlightStatusDraft}, To: SpotlightStatusScheduled},
	ActionArchive:   {From: []SpotlightStatus{SpotlightStatusDraft, SpotlightStatusScheduled, SpotlightStatusPublished}, To: SpotlightStatusArchived},
})
