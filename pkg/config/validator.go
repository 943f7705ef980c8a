package config

import "fmt"

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate Tokenizer config
	if c.Tokenizer.Stem && c.Tokenizer.Language == "" {
		errors = append(errors, ValidationError{
			Field:   "tokenizer.language",
			Message: "language is required when stemming is enabled",
		})
	}

	// Validate Vectorizer config
	if c.Vectorizer.MaxTerms < 0 {
		errors = append(errors, ValidationError{
			Field:   "vectorizer.max_terms",
			Message: "max_terms must be zero or positive",
		})
	}

	for _, word := range c.Vectorizer.StopWords {
		if word == "" {
			errors = append(errors, ValidationError{
				Field:   "vectorizer.stop_words",
				Message: "stop words must be non-empty strings",
			})
			break
		}
	}

	// Validate Loader config
	if c.Loader.TextColumn == "" {
		errors = append(errors, ValidationError{
			Field:   "loader.text_column",
			Message: "text_column is required",
		})
	}

	// Validate Output config
	if c.Output.VocabularyPath == "" {
		errors = append(errors, ValidationError{
			Field:   "output.vocabulary_path",
			Message: "vocabulary_path is required",
		})
	}

	if c.Output.MatrixPath == "" {
		errors = append(errors, ValidationError{
			Field:   "output.matrix_path",
			Message: "matrix_path is required",
		})
	}

	// Validate Runtime config
	if c.Runtime.Workers < 1 {
		errors = append(errors, ValidationError{
			Field:   "runtime.workers",
			Message: "workers must be positive",
		})
	}

	return errors
}
