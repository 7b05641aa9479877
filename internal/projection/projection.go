// Package projection contains pure functions deriving views from store contents.
package projection

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Predicate reports whether v belongs to a view.
type Predicate[T any] func(v T) bool

// Filter returns a new slice with elements passing p in source order.
// Source is never modified.
func Filter[T any](src []T, p Predicate[T]) []T {
	return lo.Filter(src, func(v T, _ int) bool {
		return p == nil || p(v)
	})
}

// Reverse returns a reversed copy of src.
func Reverse[T any](src []T) []T {
	return lo.Reverse(append(make([]T, 0, len(src)), src...))
}

// And combines predicates; nil predicates are skipped.
func And[T any](p ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return lo.EveryBy(p, func(f Predicate[T]) bool {
			return f == nil || f(v)
		})
	}
}

// Contains returns a predicate which matches when any of fields contains query case-insensitively.
// Empty query matches everything.
func Contains[T any](query string, fields ...func(v T) string) Predicate[T] {
	q := strings.ToLower(query)

	return func(v T) bool {
		if q == "" {
			return true
		}

		return lo.SomeBy(fields, func(f func(v T) string) bool {
			return strings.Contains(strings.ToLower(f(v)), q)
		})
	}
}

// Member returns a predicate which matches when set(v) contains tag case-insensitively.
// Empty tag matches everything.
func Member[T any](tag string, set func(v T) []string) Predicate[T] {
	return func(v T) bool {
		if tag == "" {
			return true
		}

		return lo.ContainsBy(set(v), func(s string) bool {
			return strings.EqualFold(s, tag)
		})
	}
}

var hashtag = regexp.MustCompile(`#(\w+)`)

// Hashtags extracts unique lower-cased hashtags from text in order of appearance.
func Hashtags(text string) []string {
	m := hashtag.FindAllStringSubmatch(text, -1)
	if len(m) == 0 {
		return nil
	}

	return lo.Uniq(lo.Map(m, func(v []string, _ int) string {
		return strings.ToLower(v[1])
	}))
}
