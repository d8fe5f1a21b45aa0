package seed

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

func TestDefault_DecodesIntoModels(t *testing.T) {
	var doc struct {
		Events        []models.Event       `json:"events"`
		Chapters      []models.Chapter     `json:"chapters"`
		Sponsors      []models.Sponsor     `json:"sponsors"`
		Opportunities []models.Opportunity `json:"opportunities"`
		Mentorships   []models.Mentorship  `json:"mentorships"`
		QA            []models.QAItem      `json:"qa"`
		Spotlights    []models.Spotlight   `json:"spotlights"`
		Profiles      []models.Profile     `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(Default(), &doc))

	assert.NotEmpty(t, doc.Events)
	assert.NotEmpty(t, doc.Chapters)
	assert.NotEmpty(t, doc.Sponsors)
	assert.NotEmpty(t, doc.Opportunities)
	assert.NotEmpty(t, doc.Mentorships)
	assert.NotEmpty(t, doc.QA)
	assert.NotEmpty(t, doc.Spotlights)
	assert.NotEmpty(t, doc.Profiles)
	assert.True(t, doc.Sponsors[0].ContributionAmount.IsPositive())
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a[0] = 'x'
	assert.NotEqual(t, a[0], Default()[0])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	raw, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), raw)

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"events": [{"id": "e1"}]}`), 0o600))
	raw, err = Load(good)
	require.NoError(t, err)
	assert.JSONEq(t, `{"events": [{"id": "e1"}]}`, string(raw))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"events": {"id": "e1"}}`), 0o600))
	_, err = Load(bad)
	assert.True(t, errors.Is(err, apperrors.ErrSeedMalformed))

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestPopulate_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	target := mockdata.NewMemorySource()
	require.NoError(t, target.Save(ctx, models.CollectionEvents, []byte(`[]`)))

	written, err := Populate(ctx, Default(), target, zerolog.Nop())
	require.NoError(t, err)
	assert.NotContains(t, written, models.CollectionEvents)
	assert.Contains(t, written, models.CollectionProfiles)

	events, err := target.Load(ctx, models.CollectionEvents)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(events))

	again, err := Populate(ctx, Default(), target, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestPopulate_MalformedSeed(t *testing.T) {
	_, err := Populate(context.Background(), []byte(`not json`), mockdata.NewMemorySource(), zerolog.Nop())
	assert.True(t, errors.Is(err, apperrors.ErrSeedMalformed))
}
