package sat

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseSkipsLeadingComments(t *testing.T) {
	// Arrange
	content := "c generated benchmark\nc second comment\np cnf 2 1\n1 -2 0\n"

	// Act
	instance, err := Parse(strings.NewReader(content))

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 2, instance.VariableCount())
	assert.Equal(t, []Clause{ClauseFromCNF([]int64{1, -2})}, instance.Clauses())
}

func TestParseIgnoresTokensAfterTerminator(t *testing.T) {
	// Act
	instance, err := Parse(strings.NewReader("p cnf 3 1\n1 0 2 3\n"))

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []Clause{ClauseFromCNF([]int64{1})}, instance.Clauses())
}

func TestParseAcceptsClauseWithoutTerminator(t *testing.T) {
	// Act
	instance, err := Parse(strings.NewReader("p cnf 2 1\n1 -2\n"))

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []Clause{ClauseFromCNF([]int64{1, -2})}, instance.Clauses())
}

func TestParseFormatErrors(t *testing.T) {
	// Arrange
	scenarios := map[string]string{
		"empty input":              "",
		"comments only":            "c nothing else\n",
		"wrong problem type":       "p wff 3 2\n1 -2 0\n-1 3 0\n",
		"missing header":           "1 -2 0\n-1 3 0\n",
		"blank line before header": "c comment\n\np cnf 1 1\n1 0\n",
		"extra header token":       "p cnf 3 2 7\n1 -2 0\n-1 3 0\n",
		"unparsable var count":     "p cnf three 2\n1 -2 0\n-1 3 0\n",
		"negative var count":       "p cnf -3 2\n1 -2 0\n-1 3 0\n",
		"unparsable clause count":  "p cnf 3 x\n1 -2 0\n-1 3 0\n",
		"negative clause count":    "p cnf 3 -2\n1 -2 0\n-1 3 0\n",
		"unparsable literal":       "p cnf 3 2\n1 a 0\n-1 3 0\n",
		"premature end of input":   "p cnf 3 2\n1 -2 0\n",
		"interleaved comment":      "p cnf 3 2\nc not skipped here\n1 -2 0\n",
	}

	for name, content := range scenarios {
		t.Run(name, func(t *testing.T) {
			// Act
			instance, err := Parse(strings.NewReader(content))

			// Assert
			assert.ErrorIs(t, err, ErrFormat)
			assert.Nil(t, instance)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	// Act
	instance, err := Load(filepath.Join(t.TempDir(), "does-not-exist.cnf"))

	// Assert
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrFormat)
	assert.Nil(t, instance)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	// Arrange
	rng := rand.New(rand.NewPCG(11, 11))
	original := NewRandom(20, 40, 3, rng)
	path := filepath.Join(t.TempDir(), "roundtrip.cnf")

	// Act
	assert.NoError(t, original.Save(path))
	loaded, err := Load(path)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, original.VariableCount(), loaded.VariableCount())
	if diff := cmp.Diff(original.Clauses(), loaded.Clauses()); diff != "" {
		t.Errorf("clauses mismatch after round trip (-original +loaded):\n%v", diff)
	}

	// The format has no slot for assignments: loading always yields all false
	assert.Equal(t, 0, loaded.Vars.Count())
}

func TestWriteFormat(t *testing.T) {
	// Arrange
	instance := WithVariableCount(3, []Clause{
		ClauseFromCNF([]int64{1, -2}),
		ClauseFromCNF([]int64{-1, 3}),
	})

	// Act
	var builder strings.Builder
	assert.NoError(t, instance.Write(&builder))

	// Assert
	assert.Equal(t, "p cnf 3 2\n1 -2 0\n-1 3 0\n", builder.String())
}

func TestWriteEmptyInstance(t *testing.T) {
	// Act
	var builder strings.Builder
	assert.NoError(t, WithVariableCount(0, nil).Write(&builder))

	// Assert
	assert.Equal(t, "p cnf 0 0\n", builder.String())
}
