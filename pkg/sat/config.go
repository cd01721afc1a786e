package sat

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/mitchellh/mapstructure"
)

// GeneratorConfig describes a random instance to generate. When Seed is
// set, generation is deterministic; otherwise the process-wide source
// is used.
type GeneratorConfig struct {
	Variables  int     `mapstructure:"variables"`
	Clauses    int     `mapstructure:"clauses"`
	ClauseSize int     `mapstructure:"clauseSize"`
	Seed       *uint64 `mapstructure:"seed"`
}

// GeneratorConfigFromJson reads and validates a generator config from a
// JSON file.
func GeneratorConfigFromJson(file string) (GeneratorConfig, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return GeneratorConfig{}, err
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return GeneratorConfig{}, err
	}

	var config GeneratorConfig
	if err := mapstructure.Decode(configJson, &config); err != nil {
		return GeneratorConfig{}, err
	}

	if err := config.Validate(); err != nil {
		return GeneratorConfig{}, err
	}
	return config, nil
}

// Validate checks the generation preconditions: positive variable count
// and a clause size between 1 and the variable count, so that clauses
// of distinct variables can be sampled.
func (config GeneratorConfig) Validate() error {
	if config.Variables <= 0 {
		return fmt.Errorf("variables must be positive: %v", config.Variables)
	}
	if config.Clauses < 0 {
		return fmt.Errorf("clauses must be non-negative: %v", config.Clauses)
	}
	if config.ClauseSize <= 0 || config.ClauseSize > config.Variables {
		return fmt.Errorf("clauseSize must be between 1 and variables (%v): %v", config.Variables, config.ClauseSize)
	}
	return nil
}

// Build generates the described instance.
func (config GeneratorConfig) Build() *Instance {
	if config.Seed != nil {
		rng := rand.New(rand.NewPCG(*config.Seed, *config.Seed))
		return NewRandom(config.Variables, config.Clauses, config.ClauseSize, rng)
	}
	return NewRandomDefault(config.Variables, config.Clauses, config.ClauseSize)
}
