// Package mockdata is the collection-addressed pseudo-database behind the mock APIs.
package mockdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// Store caches collections loaded from a Source and writes every mutation back to it.
// All mutations of one store are serialized, so read-modify-write operations are atomic.
type Store struct {
	mu     sync.Mutex
	source Source
	cache  map[string][]Document
	now    func() time.Time
	newID  func() string
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger sets the store logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a store over source.
func NewStore(source Source, opts ...Option) *Store {
	s := &Store{
		source: source,
		cache:  make(map[string][]Document),
		now:    time.Now,
		newID:  newTimeOrderedID,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Now returns the store clock's current time in UTC.
func (s *Store) Now() time.Time {
	return s.now().UTC()
}

// NewID returns a fresh record id.
func (s *Store) NewID() string {
	return s.newID()
}

// load returns the cached collection, reading it from the source on first use. Callers hold s.mu.
func (s *Store) load(ctx context.Context, collection string) ([]Document, error) {
	if docs, ok := s.cache[collection]; ok {
		return docs, nil
	}

	raw, err := s.source.Load(ctx, collection)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCollectionAbsent) {
			return nil, fmt.Errorf("load collection %s: %w", collection, err)
		}
		raw = nil
	}

	docs, err := parseCollection(collection, raw)
	if err != nil {
		return nil, err
	}

	s.cache[collection] = docs
	s.logger.Debug().Str("collection", collection).Int("count", len(docs)).Msg("Collection loaded")
	return docs, nil
}

// persist writes docs through to the source. On failure the cached copy is dropped so the next read reloads.
func (s *Store) persist(ctx context.Context, collection string, docs []Document) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		delete(s.cache, collection)
		return fmt.Errorf("%w: encode collection %s: %v", apperrors.ErrStorage, collection, err)
	}
	if err := s.source.Save(ctx, collection, raw); err != nil {
		delete(s.cache, collection)
		s.logger.Error().Err(err).Str("collection", collection).Msg("Failed to persist collection")
		return fmt.Errorf("%w: save collection %s: %v", apperrors.ErrStorage, collection, err)
	}
	s.cache[collection] = docs
	return nil
}

// Collection returns a copy of every record in collection, in stored order.
func (s *Store) Collection(ctx context.Context, collection string) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = d.Clone()
	}
	return out, nil
}

// FindByID returns a copy of the record with id. A missing id reports false, not an error.
func (s *Store) FindByID(ctx context.Context, collection, id string) (Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(ctx, collection)
	if err != nil {
		return nil, false, err
	}
	if i := indexOf(docs, id); i >= 0 {
		return docs[i].Clone(), true, nil
	}
	return nil, false, nil
}

// Create appends doc to collection. A missing id or createdAt is filled in.
func (s *Store) Create(ctx context.Context, collection string, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}

	item := doc.Clone()
	if item == nil {
		item = Document{}
	}
	now := s.Now()
	if item.Blank(FieldID) {
		item[FieldID] = s.newID()
	}
	if item.Blank(FieldCreatedAt) {
		item.SetTime(FieldCreatedAt, now)
	}
	if item.Blank(FieldUpdatedAt) {
		item.SetTime(FieldUpdatedAt, now)
	}

	next := append(cloneSlice(docs), item)
	if err := s.persist(ctx, collection, next); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("collection", collection).Str("id", item.ID()).Msg("Record created")
	return item.Clone(), nil
}

// Put replaces the record with id. The stored id and createdAt are kept.
func (s *Store) Put(ctx context.Context, collection, id string, doc Document) (Document, bool, error) {
	return s.Update(ctx, collection, id, func(current Document) (Document, error) {
		replaced := doc.Clone()
		if replaced == nil {
			replaced = Document{}
		}
		replaced[FieldID] = current[FieldID]
		if created, ok := current[FieldCreatedAt]; ok {
			replaced[FieldCreatedAt] = created
		}
		return replaced, nil
	})
}

// Patch shallow-merges partial into the record with id.
func (s *Store) Patch(ctx context.Context, collection, id string, partial map[string]interface{}) (Document, bool, error) {
	return s.Update(ctx, collection, id, func(current Document) (Document, error) {
		return MergeShallow(current, partial), nil
	})
}

// Update applies fn to a copy of the record with id and stores the result.
// fn returning nil leaves the record untouched. A missing id reports false.
func (s *Store) Update(ctx context.Context, collection, id string, fn func(Document) (Document, error)) (Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(ctx, collection)
	if err != nil {
		return nil, false, err
	}
	i := indexOf(docs, id)
	if i < 0 {
		return nil, false, nil
	}

	updated, err := fn(docs[i].Clone())
	if err != nil {
		return nil, true, err
	}
	if updated == nil {
		return docs[i].Clone(), true, nil
	}

	next := cloneSlice(docs)
	next[i] = updated
	if err := s.persist(ctx, collection, next); err != nil {
		return nil, true, err
	}
	return updated.Clone(), true, nil
}

// Increment adds delta to a counter field, flooring it at zero, and refreshes updatedAt.
func (s *Store) Increment(ctx context.Context, collection, id, field string, delta int) (Document, bool, error) {
	return s.Update(ctx, collection, id, func(current Document) (Document, error) {
		value := current.Int(field) + delta
		if value < 0 {
			value = 0
		}
		current[field] = value
		current.SetTime(FieldUpdatedAt, s.Now())
		return current, nil
	})
}

// Delete removes the record with id and reports whether it existed.
func (s *Store) Delete(ctx context.Context, collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load(ctx, collection)
	if err != nil {
		return false, err
	}
	i := indexOf(docs, id)
	if i < 0 {
		return false, nil
	}

	next := make([]Document, 0, len(docs)-1)
	next = append(next, docs[:i]...)
	next = append(next, docs[i+1:]...)
	if err := s.persist(ctx, collection, next); err != nil {
		return false, err
	}
	s.logger.Debug().Str("collection", collection).Str("id", id).Msg("Record deleted")
	return true, nil
}

// ClearCache drops the cached copy of collection so the next read reloads it from the source.
func (s *Store) ClearCache(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, collection)
}

// ClearAll drops every cached collection.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string][]Document)
}

func indexOf(docs []Document, id string) int {
	for i, d := range docs {
		if d.ID() == id {
			return i
		}
	}
	return -1
}

func cloneSlice(docs []Document) []Document {
	out := make([]Document, len(docs))
	copy(out, docs)
	return out
}

// All decodes every record of collection into T.
func All[T any](ctx context.Context, s *Store, collection string) ([]T, error) {
	docs, err := s.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	return DecodeAll[T](docs)
}

// Get decodes the record with id into T.
func Get[T any](ctx context.Context, s *Store, collection, id string) (T, bool, error) {
	var zero T
	doc, ok, err := s.FindByID(ctx, collection, id)
	if err != nil || !ok {
		return zero, ok, err
	}
	item, err := Decode[T](doc)
	if err != nil {
		return zero, true, err
	}
	return item, true, nil
}
