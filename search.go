package seqview

import (
	"iter"
	"sort"

	"golang.org/x/exp/constraints"
)

// Contains reports whether v occurs in s. Membership is a read-only
// operation and is legal on views; a stale view surfaces its error.
func Contains[T comparable](s Sequence[T], v T) (bool, error) {
	for i := 0; i < s.Len(); i++ {
		e, err := s.Get(i)
		if err != nil {
			return false, err
		}
		if e == v {
			return true, nil
		}
	}
	return false, nil
}

// Index returns the position of the first occurrence of v in s, or
// ErrValueNotFound.
func Index[T comparable](s Sequence[T], v T) (int, error) {
	for i := 0; i < s.Len(); i++ {
		e, err := s.Get(i)
		if err != nil {
			return 0, err
		}
		if e == v {
			return i, nil
		}
	}
	return 0, ErrValueNotFound
}

// Count returns the number of occurrences of v in s.
func Count[T comparable](s Sequence[T], v T) (int, error) {
	n := 0
	for i := 0; i < s.Len(); i++ {
		e, err := s.Get(i)
		if err != nil {
			return 0, err
		}
		if e == v {
			n++
		}
	}
	return n, nil
}

// Equal reports element-wise equality of two lists. Comparison is not
// defined for views: a view is a position, not a value, and comparing one
// would pin an answer that the next root mutation silently invalidates.
func Equal[T comparable](a, b Sequence[T]) (bool, error) {
	if err := rejectViews(a, b); err != nil {
		return false, err
	}
	if a.Len() != b.Len() {
		return false, nil
	}
	for i := 0; i < a.Len(); i++ {
		av, err := a.Get(i)
		if err != nil {
			return false, err
		}
		bv, err := b.Get(i)
		if err != nil {
			return false, err
		}
		if av != bv {
			return false, nil
		}
	}
	return true, nil
}

// Compare orders two lists lexicographically, returning -1, 0 or +1.
// Views are rejected with ErrUnsupportedOp, as with Equal.
func Compare[T constraints.Ordered](a, b Sequence[T]) (int, error) {
	if err := rejectViews(a, b); err != nil {
		return 0, err
	}
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		av, err := a.Get(i)
		if err != nil {
			return 0, err
		}
		bv, err := b.Get(i)
		if err != nil {
			return 0, err
		}
		switch {
		case av < bv:
			return -1, nil
		case av > bv:
			return 1, nil
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1, nil
	case a.Len() > b.Len():
		return 1, nil
	}
	return 0, nil
}

// SortOrdered sorts a list of naturally ordered elements in place.
func SortOrdered[T constraints.Ordered](l *List[T]) {
	sort.Slice(l.elems, func(i, j int) bool {
		return l.elems[i] < l.elems[j]
	})
}

// All returns the lazy traversal of s when s supports one. Views do not:
// they fail with ErrUnsupportedOp, and callers fall back to indexed Get.
func All[T any](s Sequence[T]) (iter.Seq2[int, T], error) {
	if it, ok := s.(Iterable[T]); ok {
		return it.All(), nil
	}
	return nil, ErrUnsupportedOp
}

func rejectViews[T any](seqs ...Sequence[T]) error {
	for _, s := range seqs {
		if _, ok := s.(*View[T]); ok {
			return ErrUnsupportedOp
		}
	}
	return nil
}
