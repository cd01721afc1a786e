package sat

import (
	"log"
	"math/rand/v2"
	"slices"

	"github.com/sat-lab/satlab/pkg/boolvec"
)

// NewRandom generates an instance with n variables, m clauses of
// exactly k pairwise-distinct variables each (rejection sampling), an
// independent random negation per literal, and a randomized assignment.
// k may be 0, producing empty clauses. Requires 0 <= k <= n and m >= 0;
// violations panic, since generation could otherwise never terminate.
func NewRandom(n, m, k int, rng *rand.Rand) *Instance {
	if k < 0 || k > n || m < 0 {
		log.Panicf("cannot generate %v clauses with %v distinct variables each out of %v", m, k, n)
	}

	clauses := make([]Clause, 0, m)
	chosen := make([]uint64, 0, k)
	for range m {
		chosen = chosen[:0]
		negations := make([]bool, k)
		for i := range k {
			index := uint64(rng.IntN(n))
			for slices.Contains(chosen, index) {
				index = uint64(rng.IntN(n))
			}
			chosen = append(chosen, index)
			negations[i] = rng.Float32() < 0.5
		}
		clauses = append(clauses, ClauseFromIndices(chosen, negations))
	}

	return NewInstance(randomAssignment(n, rng), clauses)
}

// NewRandomDefault is NewRandom with a source seeded from the
// process-wide generator. Use NewRandom with a seeded source for
// deterministic generation.
func NewRandomDefault(n, m, k int) *Instance {
	return NewRandom(n, m, k, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// ResampleAssignment replaces the assignment vector with freshly
// sampled independent random bits of the same length and returns it.
func (instance *Instance) ResampleAssignment(rng *rand.Rand) *boolvec.BoolVec {
	instance.Vars = randomAssignment(instance.Vars.Len(), rng)
	return instance.Vars
}

// ResampleAssignmentDefault is ResampleAssignment with a source seeded
// from the process-wide generator.
func (instance *Instance) ResampleAssignmentDefault() *boolvec.BoolVec {
	return instance.ResampleAssignment(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func randomAssignment(n int, rng *rand.Rand) *boolvec.BoolVec {
	values := make([]bool, n)
	for i := range values {
		values[i] = rng.Float32() < 0.5
	}
	return boolvec.From(values)
}
