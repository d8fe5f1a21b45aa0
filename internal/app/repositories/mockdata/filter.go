package mockdata

import (
	"fmt"
	"strings"

	"github.com/yigit/alumnihub/internal/app/models/dto"
)

// FilterItems keeps the documents matching every non-empty, non-reserved filter.
// Scalar fields match by case-insensitive equality, array fields when any element matches.
func FilterItems(docs []Document, filters dto.Filters) []Document {
	active := make(map[string]string, len(filters))
	for k, v := range filters {
		v = strings.TrimSpace(v)
		if v == "" || dto.IsReserved(k) {
			continue
		}
		active[k] = v
	}

	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if matchesAll(d, active) {
			out = append(out, d)
		}
	}
	return out
}

func matchesAll(d Document, filters map[string]string) bool {
	for k, want := range filters {
		if !matchValue(d[k], want) {
			return false
		}
	}
	return true
}

func matchValue(v interface{}, want string) bool {
	switch t := v.(type) {
	case nil:
		return false
	case []interface{}:
		for _, e := range t {
			if matchValue(e, want) {
				return true
			}
		}
		return false
	case map[string]interface{}:
		return false
	case string:
		return strings.EqualFold(t, want)
	default:
		return strings.EqualFold(fmt.Sprint(t), want)
	}
}

// SearchItems keeps the documents where any of fields contains term, ignoring case.
// An empty term keeps everything.
func SearchItems(docs []Document, term string, fields ...string) []Document {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return docs
	}
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(d.String(f)), term) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}
