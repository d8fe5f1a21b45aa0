package models

import (
	"sort"

	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// Action names a lifecycle transition or an engagement operation on a record.
type Action string

// Lifecycle actions
const (
	ActionActivate   Action = "activate"
	ActionDeactivate Action = "deactivate"
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	ActionPublish    Action = "publish"
	ActionUnpublish  Action = "unpublish"
	ActionSchedule   Action = "schedule"
	ActionArchive    Action = "archive"
	ActionCancel     Action = "cancel"
	ActionComplete   Action = "complete"
	ActionAccept     Action = "accept"
	ActionDecline    Action = "decline"
	ActionMarkFilled Action = "markFilled"
	ActionRenew      Action = "renew"
	ActionExpire     Action = "expire"
	ActionAnswer     Action = "answer"
)

// Engagement and field actions
const (
	ActionLike       Action = "like"
	ActionUnlike     Action = "unlike"
	ActionView       Action = "view"
	ActionShare      Action = "share"
	ActionRegister   Action = "register"
	ActionUnregister Action = "unregister"
	ActionJoin       Action = "join"
	ActionLeave      Action = "leave"
	ActionApply      Action = "apply"
	ActionSession    Action = "session"
	ActionFeature    Action = "feature"
	ActionUnfeature  Action = "unfeature"

	ActionUpdateNotifications Action = "notifications"

	// ActionDelete is accepted by bulk operations only.
	ActionDelete Action = "delete"
)

// IsEngagement reports whether action is a public counter operation rather than an administrative change.
func IsEngagement(action Action) bool {
	switch action {
	case ActionLike, ActionUnlike, ActionView, ActionShare,
		ActionRegister, ActionUnregister, ActionJoin, ActionLeave, ActionApply:
		return true
	}
	return false
}

// Transition is one row of a lifecycle table.
type Transition[S ~string] struct {
	From []S
	To   S
}

// Lifecycle resolves status changes for records whose status is held as a plain string.
type Lifecycle interface {
	Resolve(current string, action Action) (string, error)
	Permits(from, to string) bool
	Handles(action Action) bool
	Knows(status string) bool
}

// StateMachine is the status table of one entity.
type StateMachine[S ~string] struct {
	entity      string
	transitions map[Action]Transition[S]
}

// NewStateMachine creates a state machine for entity from its transition table.
func NewStateMachine[S ~string](entity string, transitions map[Action]Transition[S]) StateMachine[S] {
	return StateMachine[S]{entity: entity, transitions: transitions}
}

// Next returns the status action leads to from current.
// Invoking an action on a record already in its target status is a no-op.
func (m StateMachine[S]) Next(current S, action Action) (S, error) {
	t, ok := m.transitions[action]
	if !ok {
		return current, apperrors.NewUnsupportedActionError(m.entity, string(action))
	}
	if current == t.To {
		return current, nil
	}
	for _, from := range t.From {
		if from == current {
			return t.To, nil
		}
	}
	return current, apperrors.NewInvalidTransitionError(m.entity, string(current), string(action))
}

// Resolve implements Lifecycle.
func (m StateMachine[S]) Resolve(current string, action Action) (string, error) {
	next, err := m.Next(S(current), action)
	return string(next), err
}

// Permits reports whether some action moves a record from one status to another.
func (m StateMachine[S]) Permits(from, to string) bool {
	if from == to {
		return true
	}
	for _, t := range m.transitions {
		if string(t.To) != to {
			continue
		}
		for _, f := range t.From {
			if string(f) == from {
				return true
			}
		}
	}
	return false
}

// Handles reports whether action is part of the table.
func (m StateMachine[S]) Handles(action Action) bool {
	_, ok := m.transitions[action]
	return ok
}

// Knows reports whether status appears anywhere in the table.
func (m StateMachine[S]) Knows(status string) bool {
	for _, t := range m.transitions {
		if string(t.To) == status {
			return true
		}
		for _, f := range t.From {
			if string(f) == status {
				return true
			}
		}
	}
	return false
}

// Actions lists the table's actions in name order.
func (m StateMachine[S]) Actions() []Action {
	actions := make([]Action, 0, len(m.transitions))
	for a := range m.transitions {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}
