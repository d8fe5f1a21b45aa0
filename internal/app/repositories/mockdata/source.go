package mockdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// Source persists whole collections as JSON arrays.
// Load returns apperrors.ErrCollectionAbsent for a collection it has never stored.
type Source interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
}

// MemorySource keeps collections in process memory.
type MemorySource struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemorySource creates an empty in-memory source.
func NewMemorySource() *MemorySource {
	return &MemorySource{data: make(map[string][]byte)}
}

// Load implements Source.
func (m *MemorySource) Load(_ context.Context, collection string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[collection]
	if !ok {
		return nil, apperrors.ErrCollectionAbsent
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Save implements Source.
func (m *MemorySource) Save(_ context.Context, collection string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.data[collection] = buf
	return nil
}

// SeedSource serves collections from a read-only seed document of the form {"events": [...], ...}.
// The document is parsed on first use so a malformed seed surfaces as a load error.
type SeedSource struct {
	raw []byte

	once        sync.Once
	collections map[string]json.RawMessage
	err         error
}

// NewSeedSource wraps a seed document.
func NewSeedSource(raw []byte) *SeedSource {
	return &SeedSource{raw: raw}
}

func (s *SeedSource) parse() {
	s.once.Do(func() {
		if err := json.Unmarshal(s.raw, &s.collections); err != nil {
			s.err = fmt.Errorf("%w: %v", apperrors.ErrSeedMalformed, err)
		}
	})
}

// Load implements Source.
func (s *SeedSource) Load(_ context.Context, collection string) ([]byte, error) {
	s.parse()
	if s.err != nil {
		return nil, s.err
	}
	raw, ok := s.collections[collection]
	if !ok {
		return nil, apperrors.ErrCollectionAbsent
	}
	return raw, nil
}

// Save implements Source. Seed data is never written.
func (s *SeedSource) Save(context.Context, string, []byte) error {
	return apperrors.ErrSourceReadOnly
}

// Names lists the collections present in the seed document.
func (s *SeedSource) Names() ([]string, error) {
	s.parse()
	if s.err != nil {
		return nil, s.err
	}
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

// LayeredSource reads persisted collections first and falls back to the seed.
// Writes always go to the persistent layer.
type LayeredSource struct {
	seed    Source
	persist Source
}

// NewLayeredSource stacks persist over seed.
func NewLayeredSource(seed, persist Source) *LayeredSource {
	return &LayeredSource{seed: seed, persist: persist}
}

// Load implements Source.
func (l *LayeredSource) Load(ctx context.Context, collection string) ([]byte, error) {
	raw, err := l.persist.Load(ctx, collection)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, apperrors.ErrCollectionAbsent) {
		return nil, err
	}
	return l.seed.Load(ctx, collection)
}

// Save implements Source.
func (l *LayeredSource) Save(ctx context.Context, collection string, data []byte) error {
	return l.persist.Save(ctx, collection, data)
}
