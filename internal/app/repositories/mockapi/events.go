package mockapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// EventsMockAPI serves events from the mock store.
type EventsMockAPI struct {
	*resource[models.Event]
}

// NewEventsMockAPI creates the events mock API.
func NewEventsMockAPI(store *mockdata.Store, opts Options) *EventsMockAPI {
	return &EventsMockAPI{&resource[models.Event]{
		store:         store,
		collection:    models.CollectionEvents,
		entity:        "event",
		label:         "Event",
		plural:        "Events",
		latency:       opts.Latency,
		logger:        opts.Logger,
		lifecycle:     models.EventLifecycle,
		initialStatus: string(models.EventStatusDraft),
		actions: map[models.Action]action{
			models.ActionPublish:    transitionWith(stampOnce("publishedDate")),
			models.ActionUnpublish:  transition(),
			models.ActionCancel:     transition(),
			models.ActionComplete:   transition(),
			models.ActionRegister:   countUpTo("attendeeCount", "capacity", 1),
			models.ActionUnregister: count("attendeeCount", -1),
			models.ActionView:       count("viewCount", 1),
		},
		counters:     []string{"attendeeCount", "viewCount"},
		arrays:       []string{"sponsorIds", "tags"},
		searchFields: []string{"title", "description", "location"},
		sorter: sorter[models.Event]{
			defaultKey: "startDate",
			keys: map[string]compareFunc[models.Event]{
				"startDate": byTime(func(e models.Event) time.Time { return e.StartDate }),
				"createdAt": byTime(func(e models.Event) time.Time { return e.CreatedAt }),
				"title":     byString(func(e models.Event) string { return e.Title }),
				"attendeeCount": byNumber(func(e models.Event) int {
					return e.AttendeeCount
				}),
			},
		},
		check:    checkEvent,
		decorate: decorateEvent,
	}}
}

func checkEvent(doc mockdata.Document) error {
	if t := doc.String("type"); t != "" && !models.EventType(t).Valid() {
		return fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidationFailed, t)
	}
	if recurrence := doc.String("recurrence"); recurrence != "" {
		if _, err := parseRecurrence(recurrence); err != nil {
			return fmt.Errorf("%w: recurrence: %v", apperrors.ErrValidationFailed, err)
		}
	}
	start, hasStart := doc.Time("startDate")
	end, hasEnd := doc.Time("endDate")
	if hasStart && hasEnd && end.Before(start) {
		return fmt.Errorf("%w: endDate is before startDate", apperrors.ErrValidationFailed)
	}
	return nil
}

func parseRecurrence(s string) (*rrule.RRule, error) {
	return rrule.StrToRRule(strings.TrimPrefix(strings.TrimSpace(s), "RRULE:"))
}

// decorateEvent derives the next occurrence of a recurring event.
func decorateEvent(_ context.Context, e *models.Event, now time.Time) {
	e.NextOccurrence = nil
	if e.Recurrence == "" || e.StartDate.IsZero() {
		return
	}
	rule, err := parseRecurrence(e.Recurrence)
	if err != nil {
		return
	}
	rule.DTStart(e.StartDate)
	if next := rule.After(now, true); !next.IsZero() {
		e.NextOccurrence = helpers.TimePtr(next)
	}
}
