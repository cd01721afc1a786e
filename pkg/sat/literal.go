package sat

import (
	"fmt"
	"log"
	"math"

	"github.com/sat-lab/satlab/pkg/boolvec"
)

// MaxIndex is the largest variable index a Literal can encode: the
// packed representation stores index+1 in the magnitude of an int64.
const MaxIndex = uint64(math.MaxInt64 - 1)

// Literal is a variable reference that may be negated, packed into a
// single nonzero int64: the magnitude is the 1-based variable index and
// the sign encodes negation. This is numerically identical to the
// DIMACS convention, so parsed values are stored verbatim.
type Literal int64

// NewLiteral creates a literal from a zero-based variable index and a
// negation flag. Panics if the index does not fit the packed encoding.
func NewLiteral(index uint64, negated bool) Literal {
	if index > MaxIndex {
		log.Panicf("variable index overflows the literal encoding: %v", index)
	}
	literal := Literal(index + 1)
	if negated {
		return -literal
	}
	return literal
}

// LiteralFromCNF wraps a DIMACS-encoded value verbatim. The value must
// be nonzero; parsing code validates this before construction. Note
// that math.MinInt64 has no positive counterpart and is outside the
// encodable range: Index on such a literal overflows.
func LiteralFromCNF(value int64) Literal {
	return Literal(value)
}

// CNF returns the DIMACS representation of the literal.
func (literal Literal) CNF() int64 {
	return int64(literal)
}

// Index returns the zero-based variable index.
func (literal Literal) Index() uint64 {
	if literal < 0 {
		return uint64(-literal) - 1
	}
	return uint64(literal) - 1
}

// IsNegated reports whether the literal is negated.
func (literal Literal) IsNegated() bool {
	return literal < 0
}

// Negated returns the negated literal. For in-place negation, use Negate.
func (literal Literal) Negated() Literal {
	return -literal
}

// Negate negates the literal in place. For a non-inplace version, use Negated.
func (literal *Literal) Negate() {
	*literal = -*literal
}

// TryEval evaluates the literal against the given assignment: the
// stored value XOR the negation flag. ok is false when the literal
// references a variable outside the assignment.
func (literal Literal) TryEval(vars *boolvec.BoolVec) (value, ok bool) {
	stored, ok := vars.Get(int(literal.Index()))
	if !ok {
		return false, false
	}
	return stored != literal.IsNegated(), true
}

// Eval evaluates the literal against the given assignment. Panics if
// the literal references a variable outside the assignment; use TryEval
// for the recoverable version.
func (literal Literal) Eval(vars *boolvec.BoolVec) bool {
	value, ok := literal.TryEval(vars)
	if !ok {
		log.Panicf("literal %v references a variable outside the assignment of length %v", literal, vars.Len())
	}
	return value
}

func (literal Literal) String() string {
	if literal.IsNegated() {
		return fmt.Sprintf("¬x%v", literal.Index())
	}
	return fmt.Sprintf("x%v", literal.Index())
}
