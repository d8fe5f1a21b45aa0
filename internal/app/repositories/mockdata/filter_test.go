package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/alumnihub/internal/app/models/dto"
)

func sampleDocs() []Document {
	return []Document{
		{"id": "1", "title": "Homecoming Weekend", "status": "published", "tags": []interface{}{"reunion"}, "capacity": float64(200)},
		{"id": "2", "title": "Career Fair", "status": "Draft", "tags": []interface{}{"career", "networking"}},
		{"id": "3", "title": "Networking Night", "status": "published", "description": "Career mixer"},
	}
}

func ids(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID()
	}
	return out
}

func TestFilterItems(t *testing.T) {
	tests := []struct {
		name    string
		filters dto.Filters
		want    []string
	}{
		{name: "no filters", filters: nil, want: []string{"1", "2", "3"}},
		{name: "case insensitive scalar", filters: dto.Filters{"status": "draft"}, want: []string{"2"}},
		{name: "array membership", filters: dto.Filters{"tags": "networking"}, want: []string{"2"}},
		{name: "numeric field", filters: dto.Filters{"capacity": "200"}, want: []string{"1"}},
		{name: "every filter must match", filters: dto.Filters{"status": "published", "tags": "reunion"}, want: []string{"1"}},
		{name: "empty value ignored", filters: dto.Filters{"status": "  "}, want: []string{"1", "2", "3"}},
		{name: "reserved keys ignored", filters: dto.Filters{"search": "x", "sortBy": "title", "page": "2"}, want: []string{"1", "2", "3"}},
		{name: "missing field excludes", filters: dto.Filters{"location": "Boston"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterItems(sampleDocs(), tt.filters)))
		})
	}
}

func TestSearchItems(t *testing.T) {
	docs := sampleDocs()

	assert.Equal(t, []string{"2", "3"}, ids(SearchItems(docs, "career", "title", "description")))
	assert.Equal(t, []string{"2"}, ids(SearchItems(docs, "CAREER", "title")))
	assert.Len(t, SearchItems(docs, "  ", "title"), 3)
	assert.Empty(t, SearchItems(docs, "gala", "title"))
}

func TestMergeShallow(t *testing.T) {
	base := Document{
		"id":            "1",
		"createdAt":     "2026-01-01T00:00:00Z",
		"title":         "Old",
		"notifications": map[string]interface{}{"email": true, "digest": "weekly"},
	}

	merged := MergeShallow(base, map[string]interface{}{
		"id":            "2",
		"createdAt":     "2030-01-01T00:00:00Z",
		"title":         "New",
		"notifications": map[string]interface{}{"email": false},
	})

	assert.Equal(t, "1", merged.ID())
	assert.Equal(t, "2026-01-01T00:00:00Z", merged.String("createdAt"))
	assert.Equal(t, "New", merged.String("title"))
	assert.Equal(t, map[string]interface{}{"email": false}, merged["notifications"])
	assert.Equal(t, "Old", base.String("title"))
}

func TestMergeNested(t *testing.T) {
	base := Document{
		"notifications": map[string]interface{}{
			"email":  true,
			"digest": "weekly",
			"quiet":  map[string]interface{}{"from": "22:00", "to": "07:00"},
		},
	}

	merged := MergeNested(base, "notifications", map[string]interface{}{
		"digest": "monthly",
		"quiet":  map[string]interface{}{"to": "08:00"},
	})

	assert.Equal(t, map[string]interface{}{
		"email":  true,
		"digest": "monthly",
		"quiet":  map[string]interface{}{"from": "22:00", "to": "08:00"},
	}, merged["notifications"])
	assert.Equal(t, "weekly", base["notifications"].(map[string]interface{})["digest"])
}

func TestMergeNested_MissingKey(t *testing.T) {
	merged := MergeNested(Document{}, "notifications", map[string]interface{}{"email": false})
	assert.Equal(t, map[string]interface{}{"email": false}, merged["notifications"])
}

func TestDocument_Accessors(t *testing.T) {
	doc := Document{
		"count":   float64(3),
		"text":    "7",
		"zero":    "0001-01-01T00:00:00Z",
		"empty":   []interface{}{},
		"when":    "2026-03-01T12:00:00Z",
		"flag":    false,
		"missing": nil,
	}

	assert.Equal(t, 3, doc.Int("count"))
	assert.Equal(t, 7, doc.Int("text"))
	assert.Equal(t, 0, doc.Int("flag"))
	assert.True(t, doc.Blank("zero"))
	assert.True(t, doc.Blank("empty"))
	assert.True(t, doc.Blank("missing"))
	assert.True(t, doc.Blank("absent"))
	assert.False(t, doc.Blank("flag"))

	when, ok := doc.Time("when")
	assert.True(t, ok)
	assert.True(t, when.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	_, ok = doc.Time("zero")
	assert.False(t, ok)
}
