package sat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}
	return path
}

func TestGeneratorConfigFromJson(t *testing.T) {
	// Arrange
	path := writeTempConfig(t, `{"variables": 20, "clauses": 50, "clauseSize": 3, "seed": 42}`)

	// Act
	config, err := GeneratorConfigFromJson(path)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 20, config.Variables)
	assert.Equal(t, 50, config.Clauses)
	assert.Equal(t, 3, config.ClauseSize)
	if assert.NotNil(t, config.Seed) {
		assert.Equal(t, uint64(42), *config.Seed)
	}
}

func TestGeneratorConfigFromJsonWithoutSeed(t *testing.T) {
	// Arrange
	path := writeTempConfig(t, `{"variables": 5, "clauses": 10, "clauseSize": 2}`)

	// Act
	config, err := GeneratorConfigFromJson(path)

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, config.Seed)
}

func TestGeneratorConfigFromJsonInvalid(t *testing.T) {
	// Arrange
	scenarios := map[string]string{
		"not json":                   "variables: 5",
		"zero variables":             `{"variables": 0, "clauses": 10, "clauseSize": 2}`,
		"negative clauses":           `{"variables": 5, "clauses": -1, "clauseSize": 2}`,
		"zero clause size":           `{"variables": 5, "clauses": 10, "clauseSize": 0}`,
		"clause size over variables": `{"variables": 5, "clauses": 10, "clauseSize": 6}`,
	}

	for name, content := range scenarios {
		t.Run(name, func(t *testing.T) {
			// Act
			_, err := GeneratorConfigFromJson(writeTempConfig(t, content))

			// Assert
			assert.Error(t, err)
		})
	}
}

func TestGeneratorConfigBuildSeededIsDeterministic(t *testing.T) {
	// Arrange
	seed := uint64(7)
	config := GeneratorConfig{Variables: 12, Clauses: 24, ClauseSize: 3, Seed: &seed}

	// Act
	first := config.Build()
	second := config.Build()

	// Assert
	assert.Equal(t, first.Clauses(), second.Clauses())
	assert.True(t, first.Vars.Equal(second.Vars))
}

func TestGeneratorConfigBuildWithoutSeed(t *testing.T) {
	// Arrange
	config := GeneratorConfig{Variables: 6, Clauses: 9, ClauseSize: 2}

	// Act
	instance := config.Build()

	// Assert
	assert.Equal(t, 6, instance.VariableCount())
	assert.Equal(t, 9, instance.ClauseCount())
}
