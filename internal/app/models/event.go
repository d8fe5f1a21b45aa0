package models

import "time"

// EventStatus is the lifecycle status of an event
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// EventType classifies an event
type EventType string

const (
	EventTypeNetworking EventType = "networking"
	EventTypeWorkshop   EventType = "workshop"
	EventTypeReunion    EventType = "reunion"
	EventTypeWebinar    EventType = "webinar"
	EventTypeFundraiser EventType = "fundraiser"
	EventTypeSocial     EventType = "social"
)

// Valid reports whether t is a known event type
func (t EventType) Valid() bool {
	switch t {
	case EventTypeNetworking, EventTypeWorkshop, EventTypeReunion, EventTypeWebinar, EventTypeFundraiser, EventTypeSocial:
		return true
	}
	return false
}

// Event represents an alumni event
type Event struct {
	ID             string      `json:"id"`
	Title          string      `json:"title" validate:"required,min=3,max=200"`
	Description    string      `json:"description"`
	Type           EventType   `json:"type" validate:"omitempty,oneof=networking workshop reunion webinar fundraiser social"`
	Status         EventStatus `json:"status"`
	StartDate      time.Time   `json:"startDate" validate:"required"`
	EndDate        *time.Time  `json:"endDate,omitempty"`
	Location       string      `json:"location"`
	IsVirtual      bool        `json:"isVirtual"`
	VirtualLink    string      `json:"virtualLink,omitempty" validate:"omitempty,url"`
	ChapterID      string      `json:"chapterId,omitempty"`
	OrganizerID    string      `json:"organizerId,omitempty"`
	SponsorIDs     []string    `json:"sponsorIds"`
	Capacity       int         `json:"capacity" validate:"min=0"`
	AttendeeCount  int         `json:"attendeeCount"`
	ViewCount      int         `json:"viewCount"`
	Recurrence     string      `json:"recurrence,omitempty" validate:"omitempty,rrule"`
	NextOccurrence *time.Time  `json:"nextOccurrence,omitempty"`
	Tags           []string    `json:"tags"`
	ImageURL       string      `json:"imageUrl,omitempty"`
	PublishedDate  *time.Time  `json:"publishedDate,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// EventLifecycle is the event status table
var EventLifecycle = NewStateMachine("event", map[Action]Transition[EventStatus]{
	ActionPublish:   {From: []EventStatus{EventStatusDraft}, To: EventStatusPublished},
	ActionUnpublish: {From: []EventStatus{EventStatusPublished}, To: EventStatusDraft},
	ActionCancel:    {From: []EventStatus{EventStatusDraft, EventStatusPublished}, To: EventStatusCancelled},
	ActionComplete:  {From: []EventStatus{EventStatusPublished}, To: EventStatusCompleted},
})
