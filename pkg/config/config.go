package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Tokenizer struct {
		Stem     bool   `yaml:"stem"`
		Language string `yaml:"language"`
	} `yaml:"tokenizer"`

	Vectorizer struct {
		MaxTerms         int      `yaml:"max_terms"`
		Binary           bool     `yaml:"binary"`
		DefaultStopWords bool     `yaml:"default_stop_words"`
		StopWords        []string `yaml:"stop_words"`
		StopWordFile     string   `yaml:"stop_word_file"`
	} `yaml:"vectorizer"`

	Loader struct {
		IDColumn       string `yaml:"id_column"`
		CategoryColumn string `yaml:"category_column"`
		TextColumn     string `yaml:"text_column"`
	} `yaml:"loader"`

	Output struct {
		VocabularyPath    string `yaml:"vocabulary_path"`
		MatrixPath        string `yaml:"matrix_path"`
		HoldoutMatrixPath string `yaml:"holdout_matrix_path"`
	} `yaml:"output"`

	Runtime struct {
		Workers  int    `yaml:"workers"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"runtime"`
}

func LoadConfig(path string) (*Config, error) {
	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"config.yaml",
			"config.yml",
			filepath.Join(os.Getenv("HOME"), ".config/bow/config.yaml"),
			"/etc/bow/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	// Merge with environment variables
	mergeWithEnv(&config)

	// Apply defaults for unset values
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	applyDefaults(config)
	mergeWithEnv(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Tokenizer.Language == "" {
		config.Tokenizer.Language = "english"
	}

	if config.Loader.IDColumn == "" {
		config.Loader.IDColumn = "id"
	}
	if config.Loader.CategoryColumn == "" {
		config.Loader.CategoryColumn = "category"
	}
	if config.Loader.TextColumn == "" {
		config.Loader.TextColumn = "text"
	}

	if config.Output.VocabularyPath == "" {
		config.Output.VocabularyPath = "vocabulary.tsv"
	}
	if config.Output.MatrixPath == "" {
		config.Output.MatrixPath = "matrix.tsv"
	}
	if config.Output.HoldoutMatrixPath == "" {
		config.Output.HoldoutMatrixPath = "holdout_matrix.tsv"
	}

	if config.Runtime.Workers == 0 {
		config.Runtime.Workers = 1
	}
	if config.Runtime.LogLevel == "" {
		config.Runtime.LogLevel = "info"
	}
}

func mergeWithEnv(config *Config) {
	if level := os.Getenv("BOW_LOG_LEVEL"); level != "" {
		config.Runtime.LogLevel = level
	}
	if workers := os.Getenv("BOW_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil {
			config.Runtime.Workers = n
		}
	}
}
