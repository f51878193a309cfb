package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Set is a sorted, duplicate-free slice. Upstream batch lookups are keyed by
// Set so that the same ids always produce the same request.
type Set[T constraints.Ordered] []T

func NewSet[T constraints.Ordered](items ...T) Set[T] {
	elements := slices.Clone(items)
	slices.Sort(elements)
	return slices.Compact(elements)
}

func (s *Set[T]) UnmarshalJSON(data []byte) (err error) {
	var elements []T
	err = json.Unmarshal(data, &elements)
	if err != nil {
		return
	}
	*s = NewSet(elements...)
	return
}

func (s Set[T]) Contains(item T) bool {
	_, found := slices.BinarySearch(s, item)
	return found
}

func (s Set[T]) Join(sep string) string {
	strs := make([]string, 0, len(s))
	for _, item := range s {
		strs = append(strs, fmt.Sprint(item))
	}
	return strings.Join(strs, sep)
}
