package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configData := `
tokenizer:
  stem: true
  language: "english"

vectorizer:
  max_terms: 500
  binary: false
  default_stop_words: true
  stop_words:
    - "movie"
    - "film"

loader:
  id_column: "review_id"
  text_column: "review"

output:
  vocabulary_path: "out/vocab.tsv"
  matrix_path: "out/train.tsv"

runtime:
  workers: 4
  log_level: "debug"
`
	err := os.WriteFile(configPath, []byte(configData), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.True(t, config.Tokenizer.Stem)
	assert.Equal(t, 500, config.Vectorizer.MaxTerms)
	assert.True(t, config.Vectorizer.DefaultStopWords)
	assert.Equal(t, []string{"movie", "film"}, config.Vectorizer.StopWords)
	assert.Equal(t, "review_id", config.Loader.IDColumn)
	assert.Equal(t, "review", config.Loader.TextColumn)
	assert.Equal(t, "out/vocab.tsv", config.Output.VocabularyPath)
	assert.Equal(t, 4, config.Runtime.Workers)
	assert.Equal(t, "debug", config.Runtime.LogLevel)

	// Unset values fall back to defaults
	assert.Equal(t, "category", config.Loader.CategoryColumn)
	assert.Equal(t, "holdout_matrix.tsv", config.Output.HoldoutMatrixPath)
}

func TestConfigDefaults(t *testing.T) {
	config := &Config{}
	applyDefaults(config)

	assert.Equal(t, "english", config.Tokenizer.Language)
	assert.Equal(t, "id", config.Loader.IDColumn)
	assert.Equal(t, "text", config.Loader.TextColumn)
	assert.Equal(t, "vocabulary.tsv", config.Output.VocabularyPath)
	assert.Equal(t, "matrix.tsv", config.Output.MatrixPath)
	assert.Equal(t, 1, config.Runtime.Workers)
	assert.Equal(t, "info", config.Runtime.LogLevel)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(c *Config)
		expectedErrs  int
		errorMessages []string
	}{
		{
			name:         "valid config",
			mutate:       func(c *Config) {},
			expectedErrs: 0,
		},
		{
			name: "invalid config",
			mutate: func(c *Config) {
				c.Vectorizer.MaxTerms = -5
				c.Vectorizer.StopWords = []string{"movie", ""}
				c.Loader.TextColumn = ""
				c.Runtime.Workers = 0
			},
			expectedErrs: 4,
			errorMessages: []string{
				"vectorizer.max_terms: max_terms must be zero or positive",
				"vectorizer.stop_words: stop words must be non-empty strings",
				"loader.text_column: text_column is required",
				"runtime.workers: workers must be positive",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			applyDefaults(config)
			tt.mutate(config)

			errors := config.Validate()
			assert.Len(t, errors, tt.expectedErrs)

			if tt.errorMessages != nil {
				for i, msg := range tt.errorMessages {
					assert.Contains(t, errors[i].Error(), msg)
				}
			}
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	// Set environment variables
	os.Setenv("BOW_LOG_LEVEL", "warn")
	os.Setenv("BOW_WORKERS", "8")
	defer func() {
		os.Unsetenv("BOW_LOG_LEVEL")
		os.Unsetenv("BOW_WORKERS")
	}()

	config := &Config{}
	mergeWithEnv(config)

	assert.Equal(t, "warn", config.Runtime.LogLevel)
	assert.Equal(t, 8, config.Runtime.Workers)
}
