// Package endpoints holds the URL templates of the alumni REST API.
// Templates use ":name" placeholders that Build substitutes literally.
package endpoints

import (
	"sort"
	"strings"

	"github.com/yigit/alumnihub/internal/app/models"
)

// Key names one operation in a registry.
type Key string

// Operation keys common to every domain. Action keys reuse the action name.
const (
	KeyList   Key = "list"
	KeyGet    Key = "get"
	KeyCreate Key = "create"
	KeyUpdate Key = "update"
	KeyDelete Key = "delete"
	KeyBulk   Key = "bulk"
)

// ActionKey returns the registry key of a record action.
func ActionKey(action models.Action) Key {
	return Key(action)
}

// Registry maps operation keys to URL templates.
type Registry map[Key]string

// Build substitutes every ":name" token with params[name].
// Unknown keys yield "" and tokens without a param are left in place.
func (r Registry) Build(key Key, params map[string]string) string {
	tmpl, ok := r[key]
	if !ok {
		return ""
	}
	for name, value := range params {
		tmpl = strings.ReplaceAll(tmpl, ":"+name, value)
	}
	return tmpl
}

// Has reports whether key is registered.
func (r Registry) Has(key Key) bool {
	_, ok := r[key]
	return ok
}

// Keys returns the registered keys in name order.
func (r Registry) Keys() []Key {
	keys := make([]Key, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ID is the params map for templates that only take a record id.
func ID(id string) map[string]string {
	return map[string]string{"id": id}
}

func resource(base string, actions ...models.Action) Registry {
	r := Registry{
		KeyList:   base,
		KeyGet:    base + "/:id",
		KeyCreate: base,
		KeyUpdate: base + "/:id",
		KeyDelete: base + "/:id",
		KeyBulk:   base + "/bulk",
	}
	for _, a := range actions {
		r[ActionKey(a)] = base + "/:id/" + string(a)
	}
	return r
}
