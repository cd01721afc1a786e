package sat

import (
	"iter"
	"strings"

	"github.com/samber/lo"

	"github.com/sat-lab/satlab/pkg/boolvec"
)

// Clause is an ordered disjunction of literals. Order is preserved for
// round-trip fidelity with input files; duplicate and complementary
// literals are legal, matching DIMACS semantics, and no
// canonicalization is ever applied.
type Clause []Literal

// NewClause creates a clause holding a copy of the given literals.
func NewClause(literals ...Literal) Clause {
	clause := make(Clause, len(literals))
	copy(clause, literals)
	return clause
}

// ClauseFromIndices zips variable indices and negation flags pairwise
// into literals. If the slices differ in length, the result is
// truncated to the shorter one.
func ClauseFromIndices(indices []uint64, negations []bool) Clause {
	length := min(len(indices), len(negations))
	clause := make(Clause, length)
	for i := range length {
		clause[i] = NewLiteral(indices[i], negations[i])
	}
	return clause
}

// ClauseFromCNF creates a clause from DIMACS-encoded values. The values
// must not contain the 0 terminator; that is a file-format concern
// stripped during parsing.
func ClauseFromCNF(values []int64) Clause {
	return lo.Map(values, func(value int64, _ int) Literal {
		return LiteralFromCNF(value)
	})
}

// Negated returns a clause with every literal negated individually.
// This is literal-wise negation, NOT the logical complement of the
// disjunction: De Morgan's law would additionally turn the disjunction
// into a conjunction, which is up to the caller. For in-place negation,
// use Negate.
func (clause Clause) Negated() Clause {
	return lo.Map(clause, func(literal Literal, _ int) Literal {
		return literal.Negated()
	})
}

// Negate negates every literal in place. See Negated for the semantics
// and a non-inplace version.
func (clause Clause) Negate() {
	for i := range clause {
		clause[i].Negate()
	}
}

// Evaluate returns a finite, restartable sequence with one evaluation
// per literal, in clause order. Panics on a literal referencing a
// variable outside the assignment.
func (clause Clause) Evaluate(vars *boolvec.BoolVec) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, literal := range clause {
			if !yield(literal.Eval(vars)) {
				return
			}
		}
	}
}

// EvaluateNegated is Evaluate over the negated form of every literal.
// The clause itself is left unchanged.
func (clause Clause) EvaluateNegated(vars *boolvec.BoolVec) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, literal := range clause {
			if !yield(literal.Negated().Eval(vars)) {
				return
			}
		}
	}
}

// IsSatisfied reports whether at least one literal evaluates true under
// the given assignment.
func (clause Clause) IsSatisfied(vars *boolvec.BoolVec) bool {
	return lo.SomeBy(clause, func(literal Literal) bool {
		return literal.Eval(vars)
	})
}

// Literals returns the contained literals in order. The returned slice
// is a view, not a copy; callers must not modify it.
func (clause Clause) Literals() []Literal {
	return clause
}

func (clause Clause) String() string {
	var builder strings.Builder
	builder.WriteString("(")
	for i, literal := range clause {
		if i != 0 {
			builder.WriteString(" ∨ ")
		}
		builder.WriteString(literal.String())
	}
	builder.WriteString(")")
	return builder.String()
}
