// Package seed provides the starter alumni data and copies it into a persistent mock store.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

//go:embed data/alumni.json
var defaultSeed []byte

// Default returns a copy of the bundled seed document.
func Default() []byte {
	out := make([]byte, len(defaultSeed))
	copy(out, defaultSeed)
	return out
}

// Load reads the seed document at path, or the bundled one when path is empty.
// The document must be an object whose values are arrays of records.
func Load(path string) ([]byte, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var doc map[string][]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrSeedMalformed, path, err)
	}
	return raw, nil
}

// Populate copies every seed collection the target has never stored. Collections already
// persisted are left untouched, so running it again is harmless. It returns the names it wrote.
func Populate(ctx context.Context, raw []byte, target mockdata.Source, lgr zerolog.Logger) ([]string, error) {
	source := mockdata.NewSeedSource(raw)
	names, err := source.Names()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	lgr.Info().Int("collections", len(names)).Msg("Checking/Creating seed collections...")

	var written []string
	var finalErr error
	for _, name := range names {
		_, err := target.Load(ctx, name)
		switch {
		case err == nil:
			lgr.Debug().Str("collection", name).Msg("Collection already persisted, skipping")
			continue
		case !errors.Is(err, apperrors.ErrCollectionAbsent):
			lgr.Error().Err(err).Str("collection", name).Msg("Error checking collection")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		data, err := source.Load(ctx, name)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err := target.Save(ctx, name, data); err != nil {
			lgr.Error().Err(err).Str("collection", name).Msg("Error seeding collection")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		written = append(written, name)
		lgr.Info().Str("collection", name).Msg("Collection seeded")
	}

	return written, finalErr
}
