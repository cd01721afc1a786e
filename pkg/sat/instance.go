// Package sat models instances of the boolean satisfiability problem in
// conjunctive normal form: packed signed literals, clauses, and
// instances pairing a clause set with a concrete variable assignment.
// It reads and writes the DIMACS CNF format and can generate random
// instances; it never searches for a satisfying assignment.
package sat

import (
	"errors"

	"github.com/samber/lo"

	"github.com/sat-lab/satlab/pkg/boolvec"
)

// ErrNoVariables reports a clause-to-variable ratio query on an
// instance whose assignment vector is empty.
var ErrNoVariables = errors.New("instance has no variables")

// Instance is a CNF formula together with a concrete assignment. The
// assignment vector is index-aligned with literal variable indices and
// its length defines the variable count, which may exceed the number of
// variables actually referenced by clauses.
type Instance struct {
	// Vars holds the current truth value of every variable. Callers
	// may mutate it directly through Set and Negate.
	Vars    *boolvec.BoolVec
	clauses []Clause
}

// NewInstance creates an instance from an assignment vector and clauses.
func NewInstance(vars *boolvec.BoolVec, clauses []Clause) *Instance {
	return &Instance{
		Vars:    vars,
		clauses: clauses,
	}
}

// WithVariableCount creates an instance with n variables initialized to
// false and the given clauses.
func WithVariableCount(n int, clauses []Clause) *Instance {
	return NewInstance(boolvec.New(n, false), clauses)
}

// Clauses returns the clauses in order. The returned slice is a view,
// not a copy; callers must not modify it.
func (instance *Instance) Clauses() []Clause {
	return instance.clauses
}

// VariableCount returns the length of the assignment vector.
func (instance *Instance) VariableCount() int {
	return instance.Vars.Len()
}

// ClauseCount returns the number of clauses.
func (instance *Instance) ClauseCount() int {
	return len(instance.clauses)
}

// CountSatisfied returns the number of clauses satisfied by the current
// assignment.
func (instance *Instance) CountSatisfied() int {
	return lo.CountBy(instance.clauses, func(clause Clause) bool {
		return clause.IsSatisfied(instance.Vars)
	})
}

// IsSatisfied reports whether the current assignment satisfies every
// clause.
func (instance *Instance) IsSatisfied() bool {
	return instance.CountSatisfied() == len(instance.clauses)
}

// ClauseToVariableRatio returns the number of clauses divided by the
// number of variables. Returns ErrNoVariables when the variable count
// is zero instead of a non-finite float.
func (instance *Instance) ClauseToVariableRatio() (float64, error) {
	if instance.Vars.Len() == 0 {
		return 0, ErrNoVariables
	}
	return float64(len(instance.clauses)) / float64(instance.Vars.Len()), nil
}
