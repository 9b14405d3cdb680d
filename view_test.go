package seqview

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestViewAliasing(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)
	v := l.Slice(1, 4)

	require.Equal(t, 3, v.Len())
	got, err := v.Get(0)
	require.NoError(t, err)
	require.Equal(t, 2, got)
	got, _ = v.Get(2)
	require.Equal(t, 4, got)

	// write through the view, read through the list
	require.NoError(t, v.Set(0, 99))
	got, _ = l.Get(1)
	require.Equal(t, 99, got)

	// write through the list, read through the view
	require.NoError(t, l.Set(3, 77))
	got, _ = v.Get(2)
	require.Equal(t, 77, got)
}

func TestViewNegativeIndex(t *testing.T) {
	l := Of(0, 1, 2, 3, 4)
	v := l.Slice(1, 4) // [1, 2, 3]

	got, err := v.Get(-1)
	require.NoError(t, err)
	require.Equal(t, 3, got)
	require.NoError(t, v.Set(-3, 9))
	got, _ = l.Get(1)
	require.Equal(t, 9, got)

	_, err = v.Get(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.Get(-4)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestViewFlattening(t *testing.T) {
	c := Of(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	v1 := c.Slice(1, 9)
	v2, err := v1.Slice(2, 6)
	require.NoError(t, err)

	require.Same(t, c, v2.root, "nested views must flatten onto the root list")
	require.Equal(t, 3, v2.off)
	require.Equal(t, 4, v2.Len())
	for i := 0; i < v2.Len(); i++ {
		got, err := v2.Get(i)
		require.NoError(t, err)
		want, _ := c.Get(1 + 2 + i)
		require.Equal(t, want, got)
	}
}

func TestNewView(t *testing.T) {
	l := Of(0, 1, 2, 3, 4)

	v, err := NewView[int](l, 1, 4)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())

	// negative bounds normalize before the strict check
	v, err = NewView[int](l, -4, -1)
	require.NoError(t, err)
	got, _ := v.Get(0)
	require.Equal(t, 1, got)

	// strict bounds: no clamping in the constructor
	_, err = NewView[int](l, 2, 10)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = NewView[int](l, 3, 1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	// views flatten
	parent, _ := NewView[int](l, 1, 4)
	child, err := NewView[int](parent, 1, 3)
	require.NoError(t, err)
	require.Same(t, l, child.root)
	got, _ = child.Get(0)
	require.Equal(t, 2, got)

	// a foreign Sequence implementation exposes no shareable storage
	_, err = NewView[int](fakeSequence{}, 0, 0)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

type fakeSequence struct{}

func (fakeSequence) Len() int             { return 0 }
func (fakeSequence) Get(int) (int, error) { return 0, ErrIndexOutOfRange }
func (fakeSequence) Set(int, int) error   { return ErrIndexOutOfRange }

func TestViewFixedLengthUnderGrowth(t *testing.T) {
	l := Of(1, 2, 3)
	v := l.Slice(0, 3)

	for i := 0; i < 100; i++ { // force reallocation of backing storage
		l.Append(i)
	}
	require.Equal(t, 3, v.Len())
	got, err := v.Get(0)
	require.NoError(t, err)
	require.Equal(t, 1, got, "view must read through relocated storage")
	require.NoError(t, v.Set(0, 42))
	got, _ = l.Get(0)
	require.Equal(t, 42, got)
}

func TestViewStaleAfterShrink(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)
	v := l.Slice(1, 4)

	require.NoError(t, v.Set(0, 99))
	require.NoError(t, l.Delete(0))
	require.Equal(t, "[99, 3, 4, 5]", l.String())

	// off(1)+len(3) == 4 == l.Len(): the boundary is inclusive, still valid
	got, err := v.Get(0)
	require.NoError(t, err)
	require.Equal(t, 3, got)

	// one more removal pushes the range past the end
	require.NoError(t, l.Delete(-1))
	_, err = v.Get(0)
	require.ErrorIs(t, err, ErrStaleView)
	require.ErrorIs(t, v.Set(0, 1), ErrStaleView)
	require.Equal(t, 3, v.Len(), "length never tracks the root, even stale")
}

func TestFullRangeViewAfterClear(t *testing.T) {
	l := Of(1, 2, 3)
	v := l.Slice(0, l.Len())
	l.Clear()
	_, err := v.Get(0)
	require.ErrorIs(t, err, ErrStaleView)

	// growing the root back revalidates the same view
	l.Extend(7, 8, 9)
	got, err := v.Get(0)
	require.NoError(t, err)
	require.Equal(t, 7, got)
}

func TestViewResizeUnsupported(t *testing.T) {
	l := Of(1, 2, 3, 4)
	v := l.Slice(0, 4)

	require.ErrorIs(t, v.Append(5), ErrUnsupportedOp)
	require.ErrorIs(t, v.Extend(5, 6), ErrUnsupportedOp)
	require.ErrorIs(t, v.Insert(0, 5), ErrUnsupportedOp)
	require.ErrorIs(t, v.Delete(0), ErrUnsupportedOp)
	_, err := v.Pop()
	require.ErrorIs(t, err, ErrUnsupportedOp)
	_, err = v.PopAt(1)
	require.ErrorIs(t, err, ErrUnsupportedOp)
	require.ErrorIs(t, v.Clear(), ErrUnsupportedOp)
	require.ErrorIs(t, v.Sort(func(a, b int) bool { return a < b }), ErrUnsupportedOp)
	require.ErrorIs(t, v.Reverse(), ErrUnsupportedOp)

	// the root stays untouched by any of the failed calls
	require.Equal(t, "[1, 2, 3, 4]", l.String())
}

func TestViewSliceClamping(t *testing.T) {
	l := Of(0, 1, 2, 3, 4, 5)
	v := l.Slice(1, 5) // [1, 2, 3, 4]

	s, err := v.Slice(-2, 100)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	got, _ := s.Get(0)
	require.Equal(t, 3, got)

	s, err = v.Slice(3, 1)
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())

	l.Clear()
	_, err = v.Slice(0, 1)
	require.ErrorIs(t, err, ErrStaleView)
}

func TestViewConcatRepeat(t *testing.T) {
	l := Of(1, 2, 3, 4)
	v := l.Slice(1, 3) // [2, 3]

	c, err := v.Concat(l.Slice(0, 1))
	require.NoError(t, err)
	require.Equal(t, "[2, 3, 1]", c.String())
	require.NoError(t, c.Set(0, 100))
	got, _ := l.Get(1)
	require.Equal(t, 2, got, "concat result must not alias the root")

	r, err := v.Repeat(2)
	require.NoError(t, err)
	require.Equal(t, "[2, 3, 2, 3]", r.String())

	l.Clear()
	_, err = v.Concat(Of(1))
	require.ErrorIs(t, err, ErrStaleView)
	_, err = v.Repeat(2)
	require.ErrorIs(t, err, ErrStaleView)
}

func TestViewString(t *testing.T) {
	l := Of(4, 5, 6, 7)
	require.Equal(t, "[4, 5, 6]", l.Slice(0, 3).String())
	require.Equal(t, "[4]", l.Slice(0, 1).String())
	require.Equal(t, "[]", l.Slice(2, 2).String())

	v := l.Slice(0, 4)
	l.Clear()
	require.Equal(t, "[stale view]", v.String())
}

func TestViewFlatteningProperty(t *testing.T) {
	condition := func(elems []int8, a, p uint8, b, q uint8) bool {
		l := CopyFrom(elems)
		v1 := l.Slice(int(a)%(len(elems)+1), int(b)%(len(elems)+1))
		v2, err := v1.Slice(int(p)%(v1.Len()+1), int(q)%(v1.Len()+1))
		if err != nil {
			return false
		}
		if v2.root != l {
			return false
		}
		for i := 0; i < v2.Len(); i++ {
			got, err := v2.Get(i)
			if err != nil {
				return false
			}
			want, err := l.Get(v2.off + i)
			if err != nil || got != want {
				return false
			}
		}
		return true
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}
