// Package boolvec provides a compact, fixed-length vector of booleans
// used as the variable-assignment container of a SAT instance.
package boolvec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ErrIndexOutOfRange is wrapped by every error returned from a
// bounds-checked access.
var ErrIndexOutOfRange = errors.New("index out of range")

// BoolVec is a fixed-length boolean vector backed by a packed bitset.
// Unlike the underlying bitset it never grows: every access is checked
// against the construction length.
type BoolVec struct {
	bits   *bitset.BitSet
	length int
}

// New creates a vector of the given length with every element set to value.
func New(length int, value bool) *BoolVec {
	bits := bitset.New(uint(length))
	if value {
		bits.FlipRange(0, uint(length))
	}
	return &BoolVec{bits: bits, length: length}
}

// From creates a vector holding a copy of the given values.
func From(values []bool) *BoolVec {
	vector := New(len(values), false)
	for i, value := range values {
		if value {
			vector.bits.Set(uint(i))
		}
	}
	return vector
}

// Get returns the element at index i; ok is false when i is out of range.
func (vector *BoolVec) Get(i int) (value, ok bool) {
	if i < 0 || i >= vector.length {
		return false, false
	}
	return vector.bits.Test(uint(i)), true
}

// Set assigns the element at index i.
func (vector *BoolVec) Set(i int, value bool) error {
	if i < 0 || i >= vector.length {
		return fmt.Errorf("%w: %v with length %v", ErrIndexOutOfRange, i, vector.length)
	}
	vector.bits.SetTo(uint(i), value)
	return nil
}

// Negate flips the element at index i.
func (vector *BoolVec) Negate(i int) error {
	if i < 0 || i >= vector.length {
		return fmt.Errorf("%w: %v with length %v", ErrIndexOutOfRange, i, vector.length)
	}
	vector.bits.Flip(uint(i))
	return nil
}

// Len returns the number of elements.
func (vector *BoolVec) Len() int {
	return vector.length
}

// Count returns the number of true elements.
func (vector *BoolVec) Count() int {
	return int(vector.bits.Count())
}

// ToSlice returns the elements as a freshly allocated slice.
func (vector *BoolVec) ToSlice() []bool {
	values := make([]bool, vector.length)
	for i := range values {
		values[i] = vector.bits.Test(uint(i))
	}
	return values
}

// Equal reports whether both vectors have the same length and elements.
func (vector *BoolVec) Equal(other *BoolVec) bool {
	return vector.length == other.length && vector.bits.Equal(other.bits)
}

func (vector *BoolVec) String() string {
	var builder strings.Builder
	builder.WriteString("[")
	for i := range vector.length {
		if i != 0 {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%v", vector.bits.Test(uint(i)))
	}
	builder.WriteString("]")
	return builder.String()
}
