package seqview

// View is a fixed-length window into a List's backing storage. It holds no
// elements of its own: Get/Set translate indices by off and read the root's
// current storage, so storage relocation on growth never strands a view.
//
// A view's root is always a *List, never another view. Slicing a view
// flattens immediately, keeping access cost independent of slicing depth.
type View[T any] struct {
	root *List[T]
	off  int
	n    int
}

// NewView returns a zero-copy view of seq covering [start, end). Negative
// bounds count from the end. Unlike Slice, bounds here are strict: after
// normalization they must satisfy 0 <= start <= end <= seq.Len() or the
// constructor fails with ErrIndexOutOfRange.
//
// seq must expose storage that can be shared: a *List is referenced
// directly, a *View is flattened onto its root. Any other Sequence
// implementation fails with ErrUnsupportedType.
func NewView[T any](seq Sequence[T], start, end int) (*View[T], error) {
	switch s := seq.(type) {
	case *List[T]:
		lo, hi, err := strictRange(start, end, len(s.elems))
		if err != nil {
			return nil, err
		}
		return &View[T]{root: s, off: lo, n: hi - lo}, nil
	case *View[T]:
		if err := s.validate(); err != nil {
			return nil, err
		}
		lo, hi, err := strictRange(start, end, s.n)
		if err != nil {
			return nil, err
		}
		return &View[T]{root: s.root, off: s.off + lo, n: hi - lo}, nil
	default:
		return nil, ErrUnsupportedType
	}
}

// validate re-checks the view's declared range against the root's current
// length. The check is dynamic on every access because the root may have
// been resized through any other handle since the last call. The boundary
// is inclusive: off+n == root.Len() is still valid.
func (v *View[T]) validate() error {
	if v.off+v.n > len(v.root.elems) {
		return ErrStaleView
	}
	return nil
}

// Len reports the view's length, fixed at construction. A root that has
// shrunk underneath the view does not change Len; it makes the next
// element access fail with ErrStaleView instead.
func (v *View[T]) Len() int {
	return v.n
}

// Get returns the element at i within the view. Negative i counts from the
// view's end.
func (v *View[T]) Get(i int) (T, error) {
	if err := v.validate(); err != nil {
		var zero T
		return zero, err
	}
	idx, ok := normIndex(i, v.n)
	if !ok {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return v.root.elems[v.off+idx], nil
}

// Set writes through to the root's storage at offset+i.
func (v *View[T]) Set(i int, val T) error {
	if err := v.validate(); err != nil {
		return err
	}
	idx, ok := normIndex(i, v.n)
	if !ok {
		return ErrIndexOutOfRange
	}
	v.root.elems[v.off+idx] = val
	return nil
}

// Slice returns a further view of [start, end) within v, flattened onto
// v's root. Bounds clamp to [0, v.Len()] as with List.Slice.
func (v *View[T]) Slice(start, end int) (*View[T], error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	lo, hi := clampRange(start, end, v.n)
	return &View[T]{root: v.root, off: v.off + lo, n: hi - lo}, nil
}

// Concat returns a new List holding copies of v's elements followed by
// other's. The result owns fresh storage and never aliases the root.
func (v *View[T]) Concat(other Sequence[T]) (*List[T], error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	elems := make([]T, 0, v.n+other.Len())
	elems = append(elems, v.root.elems[v.off:v.off+v.n]...)
	for i := 0; i < other.Len(); i++ {
		val, err := other.Get(i)
		if err != nil {
			return nil, err
		}
		elems = append(elems, val)
	}
	return &List[T]{elems: elems}, nil
}

// Repeat returns a new List holding n copied repetitions of v's range.
func (v *View[T]) Repeat(n int) (*List[T], error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return &List[T]{}, nil
	}
	elems := make([]T, 0, n*v.n)
	for range n {
		elems = append(elems, v.root.elems[v.off:v.off+v.n]...)
	}
	return &List[T]{elems: elems}, nil
}

// String renders the viewed range. A stale view renders a marker rather
// than repairing its bounds: silently re-clamping would hide the exact
// inconsistency ErrStaleView exists to report.
func (v *View[T]) String() string {
	if v.validate() != nil {
		return "[stale view]"
	}
	return formatElems(v.root.elems[v.off : v.off+v.n])
}

// A view has no storage of its own to resize: there is no offset/length
// pair that can describe "the root minus one of the view's cells". Every
// length-changing operation therefore fails with ErrUnsupportedOp rather
// than falling back to a copy, which would silently break the zero-copy
// contract.

// Append fails with ErrUnsupportedOp.
func (v *View[T]) Append(T) error { return ErrUnsupportedOp }

// Extend fails with ErrUnsupportedOp.
func (v *View[T]) Extend(...T) error { return ErrUnsupportedOp }

// Insert fails with ErrUnsupportedOp.
func (v *View[T]) Insert(int, T) error { return ErrUnsupportedOp }

// Delete fails with ErrUnsupportedOp.
func (v *View[T]) Delete(int) error { return ErrUnsupportedOp }

// Pop fails with ErrUnsupportedOp.
func (v *View[T]) Pop() (T, error) {
	var zero T
	return zero, ErrUnsupportedOp
}

// PopAt fails with ErrUnsupportedOp.
func (v *View[T]) PopAt(int) (T, error) {
	var zero T
	return zero, ErrUnsupportedOp
}

// Clear fails with ErrUnsupportedOp.
func (v *View[T]) Clear() error { return ErrUnsupportedOp }

// Sort fails with ErrUnsupportedOp: reordering the window would reorder
// root cells the view does not own.
func (v *View[T]) Sort(func(a, b T) bool) error { return ErrUnsupportedOp }

// Reverse fails with ErrUnsupportedOp.
func (v *View[T]) Reverse() error { return ErrUnsupportedOp }
