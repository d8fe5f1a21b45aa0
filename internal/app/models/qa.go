package models

import "time"

// QAStatus is the lifecycle status of a question
type QAStatus string

const (
	QAStatusPending   QAStatus = "pending"
	QAStatusAnswered  QAStatus = "answered"
	QAStatusPublished QAStatus = "published"
	QAStatusRejected  QAStatus = "rejected"
	QAStatusArchived  QAStatus = "archived"
)

// QACategory groups questions by topic
type QACategory string

const (
	QACategoryCareer   QACategory = "career"
	QACategoryAcademic QACategory = "academic"
	QACategoryNetwork  QACategory = "networking"
	QACategoryGeneral  QACategory = "general"
)

// QAItem is a question asked by a member and its answer
type QAItem struct {
	ID            string     `json:"id"`
	Question      string     `json:"question" validate:"required,min=5"`
	Answer        string     `json:"answer,omitempty"`
	Category      QACategory `json:"category" validate:"omitempty,oneof=career academic networking general"`
	Status        QAStatus   `json:"status"`
	AskedBy       string     `json:"askedBy,omitempty"`
	AnsweredBy    string     `json:"answeredBy,omitempty"`
	IsAnonymous   bool       `json:"isAnonymous"`
	Tags          []string   `json:"tags"`
	LikeCount     int        `json:"likeCount"`
	ViewCount     int        `json:"viewCount"`
	AnsweredAt    *time.Time `json:"answeredAt,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// QALifecycle is the question status table
var QALifecycle = NewStateMachine("question", map[Action]Transition[QAStatus]{
	ActionAnswer:    {From: []QAStatus{QAStatusPending, QAStatusAnswered}, To: QAStatusAnswered},
	ActionPublish:   {From: []QAStatus{QAStatusAnswered}, To: QAStatusPublished},
	ActionUnpublish: {From: []QAStatus{QAStatusPublished}, To: QAStatusAnswered},
	ActionReject:    {From: []QAStatus{QAStatusPending, QAStatusAnswered}, To: QAStatusRejected},
	ActionArchive:   {From: []QAStatus{QAStatusPending, QAStatusAnswered, QAStatusPublished, QAStatusRejected}, To: QAStatusArchived},
})
