// Package mockapi implements every domain data source over the mock store.
// Calls never return Go errors: failures are reported inside the envelope.
package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// DefaultLatency is the simulated network delay applied before every call.
const DefaultLatency = 300 * time.Millisecond

// Options configures the mock APIs.
type Options struct {
	Latency time.Duration
	Logger  zerolog.Logger
}

// counter is a bounded numeric field moved by an engagement action.
type counter struct {
	field string
	delta int
	limit string // field holding the upper bound; zero or absent means unbounded
}

// apply moves the counter and reports whether the stored value changed.
func (c counter) apply(doc mockdata.Document) (bool, error) {
	old := doc.Int(c.field)
	value := old + c.delta
	if value < 0 {
		value = 0
	}
	if c.limit != "" && c.delta > 0 {
		if bound := doc.Int(c.limit); bound > 0 && value > bound {
			return false, fmt.Errorf("%w: %s is at its limit of %d", apperrors.ErrCapacityReached, c.field, bound)
		}
	}
	doc[c.field] = value
	return value != old, nil
}

// sideEffect edits fields alongside an action. It runs under the store lock and must not call the store.
type sideEffect func(doc mockdata.Document, payload map[string]interface{}, now time.Time) (bool, error)

type action struct {
	transition bool
	counter    *counter
	apply      sideEffect
}

// resource is the CRUD, action and bulk engine shared by every domain.
type resource[T any] struct {
	store      *mockdata.Store
	collection string
	entity     string // singular, lower case
	label      string // singular, title case
	plural     string
	latency    time.Duration
	logger     zerolog.Logger

	lifecycle     models.Lifecycle
	initialStatus string
	actions       map[models.Action]action
	counters      []string
	arrays        []string
	searchFields  []string
	sorter        sorter[T]

	defaults func(ctx context.Context, doc mockdata.Document, now time.Time) error
	check    func(doc mockdata.Document) error
	decorate func(ctx context.Context, item *T, now time.Time)
}

func (r *resource[T]) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *resource[T]) fail(err error, op, id string) *dto.ErrorDetail {
	detail := dto.DetailFromError(err)
	event := r.logger.Warn()
	if detail.Code >= 500 {
		event = r.logger.Error()
	}
	event.Err(err).
		Str("collection", r.collection).
		Str("op", op).
		Str("id", id).
		Int("status", detail.Code).
		Msg("Mock API call failed")
	return detail
}

func (r *resource[T]) notFound(id string) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s with id %s not found", r.label, id))
}

func (r *resource[T]) respond(ctx context.Context, doc mockdata.Document, message string) (dto.APIResponse[T], error) {
	item, err := mockdata.Decode[T](doc)
	if err != nil {
		return dto.Fail[T](r.fail(err, "decode", doc.ID())), nil
	}
	r.decorateItem(ctx, &item)
	return dto.OK(item, message), nil
}

func (r *resource[T]) decorateItem(ctx context.Context, item *T) {
	if r.decorate != nil {
		r.decorate(ctx, item, r.store.Now())
	}
}

// List returns one page of records matching params.Filters.
// No match is a successful empty page.
func (r *resource[T]) List(ctx context.Context, params dto.ListParams) (dto.PaginatedResponse[T], error) {
	params = helpers.NormalizeListParams(params)
	empty := helpers.NewPaginationInfo(0, params.Page, params.Limit)
	if err := r.wait(ctx); err != nil {
		return dto.FailPaginated[T](r.fail(err, "list", ""), empty), nil
	}

	docs, err := r.store.Collection(ctx, r.collection)
	if err != nil {
		return dto.FailPaginated[T](r.fail(err, "list", ""), empty), nil
	}
	docs = mockdata.FilterItems(docs, params.Filters)
	docs = mockdata.SearchItems(docs, params.Filters.Search(), r.searchFields...)

	items, err := mockdata.DecodeAll[T](docs)
	if err != nil {
		return dto.FailPaginated[T](r.fail(err, "list", ""), empty), nil
	}
	for i := range items {
		r.decorateItem(ctx, &items[i])
	}
	field, desc, explicit := params.Filters.Sort()
	r.sorter.sort(items, field, desc, explicit)

	page := helpers.PaginateItems(items, params.Page, params.Limit)
	pagination := helpers.NewPaginationInfo(len(items), params.Page, params.Limit)
	return dto.NewPaginated(page, pagination, fmt.Sprintf("%s retrieved successfully", r.plural)), nil
}

// Get returns the record with id, or a 404 envelope.
func (r *resource[T]) Get(ctx context.Context, id string) (dto.APIResponse[T], error) {
	if err := r.wait(ctx); err != nil {
		return dto.Fail[T](r.fail(err, "get", id)), nil
	}
	doc, found, err := r.store.FindByID(ctx, r.collection, id)
	if err != nil {
		return dto.Fail[T](r.fail(err, "get", id)), nil
	}
	if !found {
		return dto.Fail[T](r.fail(r.notFound(id), "get", id)), nil
	}
	return r.respond(ctx, doc, fmt.Sprintf("%s retrieved successfully", r.label))
}

// Create stores item with a fresh id, timestamps and the defaults its domain derives.
// Counters start at zero and a given status must belong to the domain's lifecycle.
func (r *resource[T]) Create(ctx context.Context, item T) (dto.APIResponse[T], error) {
	if err := r.wait(ctx); err != nil {
		return dto.Fail[T](r.fail(err, "create", "")), nil
	}

	doc, err := mockdata.Encode(item)
	if err != nil {
		return dto.Fail[T](r.fail(err, "create", "")), nil
	}
	now := r.store.Now()
	doc[mockdata.FieldID] = r.store.NewID()
	doc.SetTime(mockdata.FieldCreatedAt, now)
	doc.SetTime(mockdata.FieldUpdatedAt, now)
	if doc.Blank(mockdata.FieldStatus) && r.initialStatus != "" {
		doc[mockdata.FieldStatus] = r.initialStatus
	}
	if status := doc.String(mockdata.FieldStatus); r.lifecycle != nil && !r.lifecycle.Knows(status) {
		err := fmt.Errorf("%w: unknown %s status %q", apperrors.ErrValidationFailed, r.entity, status)
		return dto.Fail[T](r.fail(err, "create", "")), nil
	}
	// counters only move through actions
	for _, field := range r.counters {
		doc[field] = 0
	}
	for _, field := range r.arrays {
		if doc[field] == nil {
			doc[field] = []interface{}{}
		}
	}
	if r.defaults != nil {
		if err := r.defaults(ctx, doc, now); err != nil {
			return dto.Fail[T](r.fail(err, "create", "")), nil
		}
	}
	if r.check != nil {
		if err := r.check(doc); err != nil {
			return dto.Fail[T](r.fail(err, "create", "")), nil
		}
	}

	created, err := r.store.Create(ctx, r.collection, doc)
	if err != nil {
		return dto.Fail[T](r.fail(err, "create", "")), nil
	}
	r.logger.Info().Str("collection", r.collection).Str("id", created.ID()).Msg("Record created")
	return r.respond(ctx, created, fmt.Sprintf("%s created successfully", r.label))
}

// Update merges patch into the record with id.
// id, createdAt and counters are not writable; a status change must be one the lifecycle allows.
func (r *resource[T]) Update(ctx context.Context, id string, patch dto.Patch) (dto.APIResponse[T], error) {
	if err := r.wait(ctx); err != nil {
		return dto.Fail[T](r.fail(err, "update", id)), nil
	}
	clean, err := normalize(patch)
	if err != nil {
		return dto.Fail[T](r.fail(err, "update", id)), nil
	}
	for _, field := range r.counters {
		delete(clean, field)
	}
	delete(clean, mockdata.FieldUpdatedAt)

	now := r.store.Now()
	doc, found, err := r.store.Update(ctx, r.collection, id, func(current mockdata.Document) (mockdata.Document, error) {
		if raw, ok := clean[mockdata.FieldStatus]; ok && r.lifecycle != nil {
			to, _ := raw.(string)
			from := current.String(mockdata.FieldStatus)
			if !r.lifecycle.Permits(from, to) {
				return nil, apperrors.NewInvalidStatusChangeError(r.entity, from, to)
			}
		}
		merged := mockdata.MergeShallow(current, clean)
		merged.SetTime(mockdata.FieldUpdatedAt, now)
		if _, err := mockdata.Decode[T](merged); err != nil {
			return nil, err
		}
		if r.check != nil {
			if err := r.check(merged); err != nil {
				return nil, err
			}
		}
		return merged, nil
	})
	if err != nil {
		return dto.Fail[T](r.fail(err, "update", id)), nil
	}
	if !found {
		return dto.Fail[T](r.fail(r.notFound(id), "update", id)), nil
	}
	return r.respond(ctx, doc, fmt.Sprintf("%s updated successfully", r.label))
}

// Delete removes the record with id. A repeated delete reports 404.
func (r *resource[T]) Delete(ctx context.Context, id string) (dto.APIResponse[dto.Empty], error) {
	if err := r.wait(ctx); err != nil {
		return dto.Fail[dto.Empty](r.fail(err, "delete", id)), nil
	}
	removed, err := r.store.Delete(ctx, r.collection, id)
	if err != nil {
		return dto.Fail[dto.Empty](r.fail(err, "delete", id)), nil
	}
	if !removed {
		return dto.Fail[dto.Empty](r.fail(r.notFound(id), "delete", id)), nil
	}
	r.logger.Info().Str("collection", r.collection).Str("id", id).Msg("Record deleted")
	return dto.OK(dto.Empty{}, fmt.Sprintf("%s deleted successfully", r.label)), nil
}

// Perform runs a lifecycle or engagement action on the record with id.
func (r *resource[T]) Perform(ctx context.Context, id string, act models.Action, payload dto.Patch) (dto.APIResponse[T], error) {
	if err := r.wait(ctx); err != nil {
		return dto.Fail[T](r.fail(err, string(act), id)), nil
	}
	doc, err := r.perform(ctx, id, act, payload)
	if err != nil {
		return dto.Fail[T](r.fail(err, string(act), id)), nil
	}
	return r.respond(ctx, doc, fmt.Sprintf("%s %s completed successfully", r.label, act))
}

func (r *resource[T]) perform(ctx context.Context, id string, act models.Action, payload dto.Patch) (mockdata.Document, error) {
	spec, ok := r.actions[act]
	if !ok {
		return nil, apperrors.NewUnsupportedActionError(r.entity, string(act))
	}
	clean, err := normalize(payload)
	if err != nil {
		return nil, err
	}

	now := r.store.Now()
	doc, found, err := r.store.Update(ctx, r.collection, id, func(current mockdata.Document) (mockdata.Document, error) {
		changed := false
		if spec.transition {
			from := current.String(mockdata.FieldStatus)
			to, err := r.lifecycle.Resolve(from, act)
			if err != nil {
				return nil, err
			}
			if to != from {
				current[mockdata.FieldStatus] = to
				changed = true
			}
		}
		if spec.counter != nil {
			moved, err := spec.counter.apply(current)
			if err != nil {
				return nil, err
			}
			changed = changed || moved
		}
		if spec.apply != nil {
			edited, err := spec.apply(current, clean, now)
			if err != nil {
				return nil, err
			}
			changed = changed || edited
		}
		if !changed {
			return nil, nil
		}
		if _, err := mockdata.Decode[T](current); err != nil {
			return nil, err
		}
		current.SetTime(mockdata.FieldUpdatedAt, now)
		return current, nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, r.notFound(id)
	}
	r.logger.Debug().Str("collection", r.collection).Str("id", id).Str("action", string(act)).Msg("Action applied")
	return doc, nil
}

// BulkOperation applies op to every id independently and reports the outcome per id.
// op is any action of the domain, or delete.
func (r *resource[T]) BulkOperation(ctx context.Context, op models.Action, ids []string) (dto.APIResponse[dto.BulkOperationResult], error) {
	if err := r.wait(ctx); err != nil {
		return dto.Fail[dto.BulkOperationResult](r.fail(err, "bulk", "")), nil
	}
	if _, ok := r.actions[op]; !ok && op != models.ActionDelete {
		err := apperrors.NewUnsupportedActionError(r.entity, string(op))
		return dto.Fail[dto.BulkOperationResult](r.fail(err, "bulk", "")), nil
	}

	result := dto.BulkOperationResult{
		Operation: string(op),
		Requested: len(ids),
		Results:   make([]dto.BulkItemResult, 0, len(ids)),
	}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			result.Record(id, dto.DetailFromError(err))
			continue
		}
		var err error
		if op == models.ActionDelete {
			var removed bool
			removed, err = r.store.Delete(ctx, r.collection, id)
			if err == nil && !removed {
				err = r.notFound(id)
			}
		} else {
			_, err = r.perform(ctx, id, op, nil)
		}
		if err != nil {
			result.Record(id, dto.DetailFromError(err))
			continue
		}
		result.Record(id, nil)
	}
	r.store.ClearCache(r.collection)

	r.logger.Info().
		Str("collection", r.collection).
		Str("action", string(op)).
		Int("updated", result.UpdatedCount).
		Int("failed", result.FailedCount).
		Msg("Bulk operation processed")
	return dto.OK(result, fmt.Sprintf("Bulk %s processed: %d of %d updated", op, result.UpdatedCount, len(ids))), nil
}

// Actions lists the actions the domain supports, in name order.
func (r *resource[T]) Actions() []models.Action {
	out := make([]models.Action, 0, len(r.actions))
	for a := range r.actions {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// normalize round-trips a payload through JSON so typed values (times, decimals, structs)
// are stored the way documents hold them.
func normalize(payload dto.Patch) (map[string]interface{}, error) {
	if len(payload) == 0 {
		return map[string]interface{}{}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err)
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err)
	}
	return out, nil
}

func transition() action { return action{transition: true} }

func transitionWith(fn sideEffect) action { return action{transition: true, apply: fn} }

func count(field string, delta int) action {
	return action{counter: &counter{field: field, delta: delta}}
}

func countUpTo(field, limit string, delta int) action {
	return action{counter: &counter{field: field, delta: delta, limit: limit}}
}

// stampOnce sets a timestamp field only when it is unset.
func stampOnce(field string) sideEffect {
	return func(doc mockdata.Document, _ map[string]interface{}, now time.Time) (bool, error) {
		if !doc.Blank(field) {
			return false, nil
		}
		doc.SetTime(field, now)
		return true, nil
	}
}

// setFlag writes a boolean field.
func setFlag(field string, value bool) sideEffect {
	return func(doc mockdata.Document, _ map[string]interface{}, _ time.Time) (bool, error) {
		if current, _ := doc[field].(bool); current == value {
			return false, nil
		}
		doc[field] = value
		return true, nil
	}
}

// extendTime pushes a date field forward, starting from now when it is unset or already past.
func extendTime(field string, years, months, days int) sideEffect {
	return func(doc mockdata.Document, _ map[string]interface{}, now time.Time) (bool, error) {
		base, ok := doc.Time(field)
		if !ok || base.Before(now) {
			base = now
		}
		doc.SetTime(field, base.AddDate(years, months, days))
		return true, nil
	}
}
