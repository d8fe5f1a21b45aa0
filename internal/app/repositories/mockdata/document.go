package mockdata

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// Document is one stored record keyed by JSON field name.
type Document map[string]interface{}

// Field names the store itself maintains.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
	FieldStatus    = "status"
)

// ID returns the record id.
func (d Document) ID() string {
	return d.String(FieldID)
}

// String returns the field as a string, or "" when absent or not a string.
func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Int returns a numeric field as an int, or 0 when absent or not numeric.
func (d Document) Int(key string) int {
	switch v := d[key].(type) {
	case float64:
		return int(math.Round(v))
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// Time parses an RFC 3339 field. Missing, empty and zero timestamps report false.
func (d Document) Time(key string) (time.Time, bool) {
	s, ok := d[key].(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// Blank reports whether key is absent or holds an empty value.
func (d Document) Blank(key string) bool {
	switch v := d[key].(type) {
	case nil:
		return true
	case string:
		if v == "" {
			return true
		}
		t, err := time.Parse(time.RFC3339Nano, v)
		return err == nil && t.IsZero()
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	}
	return false
}

// SetTime stores t in the same format encoding/json uses for time.Time.
func (d Document) SetTime(key string, t time.Time) {
	d[key] = t.UTC().Format(time.RFC3339Nano)
}

// Clone deep-copies the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return Document(cloneMap(d))
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return cloneMap(t)
	case Document:
		return cloneMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}

// Encode converts a typed record into a document.
func Encode(v interface{}) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return doc, nil
}

// Decode converts a document into a typed record.
func Decode[T any](doc Document) (T, error) {
	var out T
	raw, err := json.Marshal(doc)
	if err != nil {
		return out, fmt.Errorf("decode record: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: record %q does not match its schema: %v", apperrors.ErrValidationFailed, doc.ID(), err)
	}
	return out, nil
}

// DecodeAll converts documents into typed records, stopping at the first failure.
func DecodeAll[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		item, err := Decode[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func parseCollection(name string, raw []byte) ([]Document, error) {
	if len(raw) == 0 {
		return []Document{}, nil
	}
	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("%w: collection %q: %v", apperrors.ErrSeedMalformed, name, err)
	}
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}
