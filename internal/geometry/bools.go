package geometry

import "strings"

// BoolArray is an immutable binary sequence derived from a reducible code
// sequence.
type BoolArray struct {
	bits []bool
}

// NewBoolArray returns a BoolArray holding a copy of bits. It panics if bits
// is empty.
func NewBoolArray(bits []bool) BoolArray {
	if len(bits) == 0 {
		panic("geometry: empty binary sequence")
	}
	return BoolArray{bits: append([]bool(nil), bits...)}
}

// Len returns the number of elements.
func (b BoolArray) Len() int { return len(b.bits) }

// At returns the element at index i.
func (b BoolArray) At(i int) bool { return b.bits[i] }

// Values returns a copy of the elements.
func (b BoolArray) Values() []bool { return append([]bool(nil), b.bits...) }

// IsTrueIsolated reports whether no two adjacent elements are both true.
func (b BoolArray) IsTrueIsolated() bool {
	for i := 1; i < len(b.bits); i++ {
		if b.bits[i] && b.bits[i-1] {
			return false
		}
	}
	return true
}

// Negate returns the complement of the sequence.
func (b BoolArray) Negate() BoolArray {
	bits := make([]bool, len(b.bits))
	for i, v := range b.bits {
		bits[i] = !v
	}
	return BoolArray{bits: bits}
}

// Slice run-length encodes the sequence. Each run of falses closed by a true
// is a complete slice whose length counts the closing true; a trailing run of
// falses becomes a truncated last slice of length falses + 1.
func (b BoolArray) Slice() SliceArray {
	var slices []int
	count := 1
	for _, v := range b.bits {
		if v {
			slices = append(slices, count)
			count = 1
		} else {
			count++
		}
	}
	if count > 1 {
		return SliceArray{slices: append(slices, count), complete: false}
	}
	return SliceArray{slices: slices, complete: true}
}

// String renders the sequence as a string of 0s and 1s.
func (b BoolArray) String() string {
	var sb strings.Builder
	for _, v := range b.bits {
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
