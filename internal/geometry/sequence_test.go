package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bits(s string) BoolArray {
	b := make([]bool, len(s))
	for i, c := range s {
		b[i] = c == '1'
	}
	return NewBoolArray(b)
}

func TestNewCodeArray(t *testing.T) {
	_, err := NewCodeArray(nil)
	assert.True(t, errors.Is(err, ErrEmptySequence))

	_, err = NewCodeArray([]int{3, -1, 2})
	assert.True(t, errors.Is(err, ErrNegativeCode))

	input := []int{30, 29, 30}
	c, err := NewCodeArray(input)
	require.NoError(t, err)
	input[0] = 100
	assert.Equal(t, []int{30, 29, 30}, c.Values(), "CodeArray must not alias its input")

	values := c.Values()
	values[1] = 7
	assert.Equal(t, 29, c.At(1), "Values must return a copy")
}

func TestCodeArray_Classification(t *testing.T) {
	tests := []struct {
		name              string
		codes             []int
		min, max, height  int
		constant          bool
		reducible         bool
		strictlyReducible bool
	}{
		{name: "singleton", codes: []int{7}, min: 7, max: 7, constant: true, reducible: true},
		{name: "constant", codes: []int{30, 30, 30}, min: 30, max: 30, constant: true, reducible: true},
		{name: "julian", codes: []int{365, 365, 365, 366}, min: 365, max: 366, height: 1, reducible: true, strictlyReducible: true},
		{name: "height two", codes: []int{1, 3}, min: 1, max: 3, height: 2},
		{name: "zeros and ones", codes: []int{0, 1, 1, 0}, min: 0, max: 1, height: 1, reducible: true, strictlyReducible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCodeArray(tt.codes)
			require.NoError(t, err)
			assert.Equal(t, tt.min, c.Min())
			assert.Equal(t, tt.max, c.Max())
			assert.Equal(t, tt.height, c.Height())
			assert.Equal(t, tt.constant, c.IsConstant())
			assert.Equal(t, tt.reducible, c.IsReducible())
			assert.Equal(t, tt.strictlyReducible, c.IsStrictlyReducible())
		})
	}
}

func TestCodeArray_ToBoolArray(t *testing.T) {
	c, err := NewCodeArray([]int{30, 29, 30, 30})
	require.NoError(t, err)
	assert.Equal(t, "1011", c.ToBoolArray().String())

	wide, err := NewCodeArray([]int{1, 3})
	require.NoError(t, err)
	assert.Panics(t, func() { wide.ToBoolArray() })
}

func TestBoolArray_IsTrueIsolated(t *testing.T) {
	assert.True(t, bits("0001").IsTrueIsolated())
	assert.True(t, bits("1010101").IsTrueIsolated())
	assert.True(t, bits("0").IsTrueIsolated())
	assert.False(t, bits("0110").IsTrueIsolated())
	assert.False(t, bits("101010101011").IsTrueIsolated())
}

func TestBoolArray_Negate(t *testing.T) {
	b := bits("10110")
	assert.Equal(t, "01001", b.Negate().String())
	assert.Equal(t, "10110", b.String(), "Negate must not mutate")
}

func TestBoolArray_Slice(t *testing.T) {
	tests := []struct {
		bits     string
		slices   []int
		complete bool
	}{
		{bits: "0001", slices: []int{4}, complete: true},
		{bits: "1000", slices: []int{1, 4}, complete: false},
		{bits: "0100", slices: []int{2, 3}, complete: false},
		{bits: "0010", slices: []int{3, 2}, complete: false},
		{bits: "11", slices: []int{1, 1}, complete: true},
		{bits: "0000", slices: []int{5}, complete: false},
		{bits: "010101010100", slices: []int{2, 2, 2, 2, 2, 3}, complete: false},
		{bits: "0101001", slices: []int{2, 2, 3}, complete: true},
	}

	for _, tt := range tests {
		t.Run(tt.bits, func(t *testing.T) {
			s := bits(tt.bits).Slice()
			assert.Equal(t, tt.slices, s.Values())
			assert.Equal(t, tt.complete, s.Complete())
		})
	}
}

func TestSliceArray_RemoveMinorExternals(t *testing.T) {
	tests := []struct {
		name     string
		slices   []int
		complete bool
		want     []int
		wantG    int
	}{
		{name: "single complete", slices: []int{4}, complete: true, want: []int{4}},
		{name: "single truncated", slices: []int{5}, complete: false, want: []int{5}},
		{name: "major initial kept", slices: []int{3, 2, 2}, complete: true, want: []int{3, 2, 2}},
		{name: "minor initial dropped", slices: []int{2, 2, 3}, complete: true, want: []int{2, 3}, wantG: 2},
		{name: "two slices shorter initial", slices: []int{1, 4}, complete: false, want: []int{4}, wantG: 1},
		{name: "two slices shorter terminal", slices: []int{3, 2}, complete: false, want: []int{3}},
		{name: "two slices tie keeps both", slices: []int{2, 2}, complete: false, want: []int{2, 2}},
		{name: "minor initial major terminal", slices: []int{2, 2, 2, 2, 2, 3}, complete: false, want: []int{2, 2, 2, 2, 3}, wantG: 2},
		{name: "major initial minor terminal", slices: []int{3, 2, 2, 1}, complete: false, want: []int{3, 2, 2}},
		{name: "both minor", slices: []int{1, 2, 2, 2}, complete: false, want: []int{2, 2}, wantG: 1},
		{name: "both major", slices: []int{3, 2, 3}, complete: false, want: []int{3, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, g := NewSliceArray(tt.slices, tt.complete).RemoveMinorExternals()
			assert.Equal(t, tt.want, code.Values())
			assert.Equal(t, tt.wantG, g)
		})
	}
}

func TestNewSliceArray_Panics(t *testing.T) {
	assert.Panics(t, func() { NewSliceArray(nil, true) })
	assert.Panics(t, func() { NewSliceArray([]int{2, 0}, true) })
}
