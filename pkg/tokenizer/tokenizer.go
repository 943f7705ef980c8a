package tokenizer

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/tebeka/snowball"
)

type Config struct {
	Stem     bool
	Language string
}

// Tokenizer normalizes raw text and splits it into tokens. The zero-config
// tokenizer is safe for concurrent use; with stemming enabled, calls are
// serialized around the shared snowball stemmer.
type Tokenizer struct {
	config  Config
	mu      sync.Mutex
	stemmer *snowball.Stemmer
}

func New() *Tokenizer {
	t, _ := NewWithConfig(Config{})
	return t
}

func NewWithConfig(config Config) (*Tokenizer, error) {
	if config.Language == "" {
		config.Language = "english"
	}

	t := &Tokenizer{config: config}

	if config.Stem {
		stemmer, err := snowball.New(config.Language)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize stemmer: %v", err)
		}
		t.stemmer = stemmer
	}

	return t, nil
}

// Close releases the stemmer, if any. Safe to call on a plain tokenizer.
func (t *Tokenizer) Close() {
	if t.stemmer != nil {
		t.stemmer.Close()
		t.stemmer = nil
	}
}

// Normalize lowercases the text and collapses every run of non-alphanumeric
// characters into a single space, so punctuation, hyphens, markup and quote
// characters all become token boundaries.
func (t *Tokenizer) Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingSep := false
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
		} else {
			pendingSep = true
		}
	}

	return b.String()
}

// Tokenize returns the normalized, non-empty tokens of the text in order.
// An empty or all-punctuation input yields zero tokens, not an error.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := strings.Fields(t.Normalize(text))

	if t.stemmer != nil {
		t.mu.Lock()
		for i, tok := range tokens {
			tokens[i] = t.stemmer.Stem(tok)
		}
		t.mu.Unlock()
	}

	return tokens
}
