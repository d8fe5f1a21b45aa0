package mockapi

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// compareFunc orders two records ascending.
type compareFunc[T any] func(a, b T) int

// sorter holds the sortBy keys a domain accepts and its default order.
type sorter[T any] struct {
	defaultKey  string
	defaultDesc bool
	keys        map[string]compareFunc[T]
}

// sort orders items in place. An unknown or absent sortBy falls back to the default order.
func (s sorter[T]) sort(items []T, field string, desc, explicit bool) {
	key, ok := s.keys[field]
	if !explicit || !ok {
		key, ok = s.keys[s.defaultKey]
		desc = s.defaultDesc
	}
	if !ok {
		return
	}
	slices.SortStableFunc(items, func(a, b T) int {
		if desc {
			return key(b, a)
		}
		return key(a, b)
	})
}

func byString[T any](get func(T) string) compareFunc[T] {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

func byNumber[T any, N cmp.Ordered](get func(T) N) compareFunc[T] {
	return func(a, b T) int { return cmp.Compare(get(a), get(b)) }
}

func byTime[T any](get func(T) time.Time) compareFunc[T] {
	return func(a, b T) int { return get(a).Compare(get(b)) }
}

// byOptionalTime orders unset times before every set time.
func byOptionalTime[T any](get func(T) *time.Time) compareFunc[T] {
	return func(a, b T) int {
		ta, tb := get(a), get(b)
		switch {
		case ta == nil && tb == nil:
			return 0
		case ta == nil:
			return -1
		case tb == nil:
			return 1
		}
		return ta.Compare(*tb)
	}
}

// thenBy chains comparisons, falling through on ties.
func thenBy[T any](fns ...compareFunc[T]) compareFunc[T] {
	return func(a, b T) int {
		for _, fn := range fns {
			if c := fn(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}
