package geometry

import "fmt"

// SliceArray is the run-length encoding of a binary sequence. Every slice is
// at least 1 long; only the last one may be truncated, in which case
// Complete reports false.
type SliceArray struct {
	slices   []int
	complete bool
}

// NewSliceArray returns a SliceArray holding a copy of slices. It panics if
// slices is empty or holds a non-positive length.
func NewSliceArray(slices []int, complete bool) SliceArray {
	if len(slices) == 0 {
		panic("geometry: empty slice sequence")
	}
	for _, s := range slices {
		if s < 1 {
			panic(fmt.Sprintf("geometry: invalid slice length %d", s))
		}
	}
	return SliceArray{slices: append([]int(nil), slices...), complete: complete}
}

// Len returns the number of slices.
func (s SliceArray) Len() int { return len(s.slices) }

// Values returns a copy of the slice lengths.
func (s SliceArray) Values() []int { return append([]int(nil), s.slices...) }

// Complete reports whether the last slice is complete.
func (s SliceArray) Complete() bool { return s.complete }

// RemoveMinorExternals turns the slices into the next code sequence, dropping
// the external slices that are minor, i.e. not longer than the shortest
// internal slice. g is the length of the dropped initial slice, 0 when the
// initial slice is kept.
func (s SliceArray) RemoveMinorExternals() (code CodeArray, g int) {
	n := len(s.slices)
	if n == 1 {
		return newCodeArray(s.Values()), 0
	}

	first := s.slices[0]

	if s.complete {
		internals := s.slices[1:]
		if first > minOf(internals) {
			return newCodeArray(s.Values()), 0
		}
		return newCodeArray(append([]int(nil), internals...)), first
	}

	last := s.slices[n-1]

	if n == 2 {
		// No internal slice to compare against: the shorter external is
		// minor, a tie keeps both.
		switch {
		case first < last:
			return newCodeArray([]int{last}), first
		case last < first:
			return newCodeArray([]int{first}), 0
		default:
			return newCodeArray(s.Values()), 0
		}
	}

	internals := s.slices[1 : n-1]
	m := minOf(internals)

	start, end := 0, n
	if first <= m {
		start = 1
		g = first
	}
	if last <= m {
		end = n - 1
	}
	return newCodeArray(append([]int(nil), s.slices[start:end]...)), g
}

// String implements fmt.Stringer.
func (s SliceArray) String() string {
	if s.complete {
		return fmt.Sprint(s.slices)
	}
	return fmt.Sprintf("%v~", s.slices)
}

func minOf(values []int) int {
	m := values[0]
	for _, v := range values[1:] {
		m = min(m, v)
	}
	return m
}
