package seqview

import (
	"fmt"
	"strings"
)

const (
	shrinkDivider    = 2
	minShrinkableCap = 10 * shrinkDivider
)

// normIndex resolves i against a sequence of length n, counting negative
// indices from the end. ok is false when the resolved index is outside
// [0, n).
func normIndex(i, n int) (idx int, ok bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// clampRange resolves a half-open [start, end) against length n with
// Python slice semantics: negative bounds count from the end, both bounds
// clamp to [0, n], and an inverted range collapses to empty.
func clampRange(start, end, n int) (lo, hi int) {
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	lo = min(max(start, 0), n)
	hi = min(max(end, 0), n)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// strictRange resolves [start, end) against length n but rejects anything
// out of range instead of clamping.
func strictRange(start, end, n int) (lo, hi int, err error) {
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 || end < start || end > n {
		return 0, 0, ErrIndexOutOfRange
	}
	return start, end, nil
}

// shrinkWasted reallocates s when most of its capacity sits unused after
// deletes, so a once-large list does not pin a large array forever.
func shrinkWasted[T any](s []T) []T {
	if cap(s) < minShrinkableCap || len(s) > cap(s)/shrinkDivider {
		return s
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func writeElem[T any](b *strings.Builder, v T) {
	fmt.Fprintf(b, "%v", v)
}
