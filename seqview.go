// Package seqview implements a mutable sequence container (List) whose
// slices are zero-copy: slicing hands out a View aliasing the list's own
// backing storage, so writes through either handle are visible through
// the other. Views never own elements; they are (root, offset, length)
// triples re-validated against the root on every access.
package seqview

import (
	"errors"
	"iter"
	"sort"
	"strings"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrStaleView       = errors.New("stale view: range exceeds current list length")
	ErrUnsupportedOp   = errors.New("operation not supported on a view")
	ErrUnsupportedType = errors.New("sequence type cannot share storage")
	ErrValueNotFound   = errors.New("value not in sequence")
)

// Sequence is the indexed surface shared by List and View. Concat, CopyOf,
// NewView and the package-level search helpers accept either through it.
type Sequence[T any] interface {
	Len() int
	Get(i int) (T, error)
	Set(i int, v T) error
}

// Iterable marks sequences that support lazy traversal. Lists implement it;
// views deliberately do not (see All).
type Iterable[T any] interface {
	All() iter.Seq2[int, T]
}

// List is the root container. It is the sole owner of its backing storage:
// only List operations may change the storage's length.
type List[T any] struct {
	elems []T
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding a copy of values.
func Of[T any](values ...T) *List[T] {
	return CopyFrom(values)
}

// CopyFrom returns a list backed by a fresh copy of src. Later mutation of
// src is never observed.
func CopyFrom[T any](src []T) *List[T] {
	elems := make([]T, len(src))
	copy(elems, src)
	return &List[T]{elems: elems}
}

// Adopt returns a list whose backing storage IS src's array: no copy is
// made, and writes through the list alias src until the list reallocates.
// Callers that want independent storage use CopyFrom instead; the two are
// deliberately separate constructors, never an overload.
func Adopt[T any](src []T) *List[T] {
	return &List[T]{elems: src}
}

// CopyOf returns a list holding a copy of every element of src, which may
// be a List or a View. A stale view surfaces its error here.
func CopyOf[T any](src Sequence[T]) (*List[T], error) {
	elems := make([]T, src.Len())
	for i := range elems {
		v, err := src.Get(i)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &List[T]{elems: elems}, nil
}

// Len reports the current number of elements. Always equals the backing
// storage's length.
func (l *List[T]) Len() int {
	return len(l.elems)
}

// Get returns the element at i. Negative i counts from the end.
func (l *List[T]) Get(i int) (T, error) {
	idx, ok := normIndex(i, len(l.elems))
	if !ok {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return l.elems[idx], nil
}

// Set replaces the element at i. Negative i counts from the end.
func (l *List[T]) Set(i int, v T) error {
	idx, ok := normIndex(i, len(l.elems))
	if !ok {
		return ErrIndexOutOfRange
	}
	l.elems[idx] = v
	return nil
}

// Append adds v at the end.
func (l *List[T]) Append(v T) {
	l.elems = append(l.elems, v)
}

// Extend appends every value in order.
func (l *List[T]) Extend(values ...T) {
	l.elems = append(l.elems, values...)
}

// ExtendSeq appends every element produced by seq.
func (l *List[T]) ExtendSeq(seq iter.Seq[T]) {
	for v := range seq {
		l.elems = append(l.elems, v)
	}
}

// Insert places v before position i. Out-of-range positions clamp to the
// nearest end, as Python's list.insert does; negative i counts from the end.
func (l *List[T]) Insert(i int, v T) {
	idx := i
	if idx < 0 {
		idx += len(l.elems)
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(l.elems) {
		l.elems = append(l.elems, v)
		return
	}
	l.elems = append(l.elems, v) // grow by one, value is overwritten below
	copy(l.elems[idx+1:], l.elems[idx:])
	l.elems[idx] = v
}

// Delete removes the element at i, shifting the tail down.
func (l *List[T]) Delete(i int) error {
	idx, ok := normIndex(i, len(l.elems))
	if !ok {
		return ErrIndexOutOfRange
	}
	copy(l.elems[idx:], l.elems[idx+1:])
	var zero T
	l.elems[len(l.elems)-1] = zero // release the ref for GC
	l.elems = shrinkWasted(l.elems[: len(l.elems)-1 : cap(l.elems)])
	return nil
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() (T, error) {
	return l.PopAt(-1)
}

// PopAt removes and returns the element at i.
func (l *List[T]) PopAt(i int) (T, error) {
	v, err := l.Get(i)
	if err != nil {
		return v, err
	}
	return v, l.Delete(i)
}

// Clear removes every element. Existing views over the list become stale
// on their next access unless the list was already empty.
func (l *List[T]) Clear() {
	clear(l.elems)
	l.elems = l.elems[:0]
}

// Concat returns a new list holding copies of l's elements followed by
// other's. The result never aliases either operand, even when other is a
// view: the combined shape cannot be described by one offset/length pair.
func (l *List[T]) Concat(other Sequence[T]) (*List[T], error) {
	elems := make([]T, 0, len(l.elems)+other.Len())
	elems = append(elems, l.elems...)
	for i := 0; i < other.Len(); i++ {
		v, err := other.Get(i)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return &List[T]{elems: elems}, nil
}

// Repeat returns a new list holding n copied repetitions of l. n <= 0
// yields an empty list.
func (l *List[T]) Repeat(n int) *List[T] {
	if n <= 0 {
		return &List[T]{}
	}
	elems := make([]T, 0, n*len(l.elems))
	for range n {
		elems = append(elems, l.elems...)
	}
	return &List[T]{elems: elems}
}

// Slice returns a zero-copy view of [start, end). Bounds follow Python
// slice semantics: negative indices count from the end and the range is
// clamped to [0, Len], so Slice itself cannot fail.
func (l *List[T]) Slice(start, end int) *View[T] {
	lo, hi := clampRange(start, end, len(l.elems))
	return &View[T]{root: l, off: lo, n: hi - lo}
}

// All returns a lazy, restartable iteration over the live elements. Length
// changes during traversal are read through, not snapshotted; callers that
// mutate mid-iteration get unspecified but memory-safe results.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(l.elems); i++ {
			if !yield(i, l.elems[i]) {
				return
			}
		}
	}
}

// Sort reorders the list in place using less.
func (l *List[T]) Sort(less func(a, b T) bool) {
	sort.SliceStable(l.elems, func(i, j int) bool {
		return less(l.elems[i], l.elems[j])
	})
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() {
	for i, j := 0, len(l.elems)-1; i < j; i, j = i+1, j-1 {
		l.elems[i], l.elems[j] = l.elems[j], l.elems[i]
	}
}

func (l *List[T]) String() string {
	return formatElems(l.elems)
}

func formatElems[T any](elems []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		writeElem(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
