package models

import "time"

// ProfileStatus is the account status of a member profile
type ProfileStatus string

const (
	ProfileStatusPending  ProfileStatus = "pending"
	ProfileStatusActive   ProfileStatus = "active"
	ProfileStatusInactive ProfileStatus = "inactive"
)

// NotificationSettings are the member's delivery preferences
type NotificationSettings struct {
	Email     bool   `json:"email"`
	Push      bool   `json:"push"`
	SMS       bool   `json:"sms"`
	Digest    string `json:"digest,omitempty" validate:"omitempty,oneof=daily weekly monthly never"`
	Events    bool   `json:"events"`
	Mentoring bool   `json:"mentoring"`
}

// Profile represents an alumni member
type Profile struct {
	ID             string               `json:"id"`
	FirstName      string               `json:"firstName" validate:"required"`
	LastName       string               `json:"lastName" validate:"required"`
	Email          string               `json:"email" validate:"required,email"`
	Role           string               `json:"role,omitempty" validate:"omitempty,oneof=alumni admin moderator"`
	Status         ProfileStatus        `json:"status"`
	GraduationYear int                  `json:"graduationYear,omitempty"`
	Degree         string               `json:"degree,omitempty"`
	Company        string               `json:"company,omitempty"`
	JobTitle       string               `json:"jobTitle,omitempty"`
	City           string               `json:"city,omitempty"`
	Country        string               `json:"country,omitempty"`
	ChapterIDs     []string             `json:"chapterIds"`
	Skills         []string             `json:"skills"`
	Notifications  NotificationSettings `json:"notifications"`
	LastLoginAt    *time.Time           `json:"lastLoginAt,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// FullName joins the first and last name
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// ProfileLifecycle is the profile status table
var ProfileLifecycle = NewStateMachine("profile", map[Action]Transition[ProfileStatus]{
	ActionActivate:   {From: []ProfileStatus{ProfileStatusPending, ProfileStatusInactive}, To: ProfileStatusActive},
	ActionDeactivate: {From: []ProfileStatus{ProfileStatusActive}, To: ProfileStatusInactive},
})
