package vectorizer

import (
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/xhad/bow/internal/models"
	"github.com/xhad/bow/internal/types"
	"github.com/xhad/bow/pkg/tokenizer"
)

var (
	// ErrEmptyCorpus is returned when Build is given zero documents.
	ErrEmptyCorpus = errors.New("vectorizer: corpus contains no documents")

	// ErrEmptyVocabulary is returned when filtering removes every
	// candidate term.
	ErrEmptyVocabulary = errors.New("vectorizer: no terms left after filtering")
)

type Config struct {
	MaxTerms         int // 0 means unbounded
	StopWords        []string
	DefaultStopWords bool
	Binary           bool
	Workers          int
	Tokenizer        types.Tokenizer
}

// Vectorizer builds fixed vocabularies from corpora and encodes documents
// as term-count vectors against them. Both operations are pure: the only
// state a Vectorizer holds is its configuration.
type Vectorizer struct {
	config    Config
	stopWords map[string]struct{}
}

func New() *Vectorizer {
	return NewWithConfig(Config{})
}

func NewWithConfig(config Config) *Vectorizer {
	if config.Workers == 0 {
		config.Workers = 1
	}
	if config.Tokenizer == nil {
		config.Tokenizer = tokenizer.New()
	}

	v := &Vectorizer{
		config:    config,
		stopWords: make(map[string]struct{}),
	}

	words := config.StopWords
	if config.DefaultStopWords {
		words = append(defaultStopWords(), words...)
	}

	// Stop words are matched against normalized tokens, so each entry is
	// run through the tokenizer itself.
	for _, word := range words {
		for _, tok := range config.Tokenizer.Tokenize(word) {
			v.stopWords[tok] = struct{}{}
		}
	}

	return v
}

// Build derives an immutable vocabulary from the corpus: corpus-wide token
// frequencies, minus stop words, capped at MaxTerms by frequency (ties broken
// lexicographically ascending), with slots assigned in lexicographic order of
// the retained terms regardless of frequency rank.
func (v *Vectorizer) Build(corpus models.Corpus) (*Vocabulary, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	freq := make(map[string]int)
	for _, doc := range corpus {
		for _, tok := range v.config.Tokenizer.Tokenize(doc.Text) {
			if _, stop := v.stopWords[tok]; stop {
				continue
			}
			freq[tok]++
		}
	}

	if len(freq) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}

	if v.config.MaxTerms > 0 && len(terms) > v.config.MaxTerms {
		sort.Slice(terms, func(i, j int) bool {
			if freq[terms[i]] != freq[terms[j]] {
				return freq[terms[i]] > freq[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.config.MaxTerms]
	}

	sort.Strings(terms)

	slots := make(map[string]int, len(terms))
	for i, term := range terms {
		slots[term] = i
	}

	return &Vocabulary{terms: terms, slots: slots}, nil
}

// Encode counts the document's tokens against the vocabulary. The result
// always has exactly vocab.Len() slots; tokens with no vocabulary slot are
// ignored. Documents never seen by Build encode the same way as any other.
func (v *Vectorizer) Encode(doc models.Document, vocab *Vocabulary) []int {
	counts := make([]int, vocab.Len())

	for _, tok := range v.config.Tokenizer.Tokenize(doc.Text) {
		slot, ok := vocab.slots[tok]
		if !ok {
			continue
		}
		if v.config.Binary {
			counts[slot] = 1
		} else {
			counts[slot]++
		}
	}

	return counts
}

// EncodeBatch encodes every document independently, preserving input order.
// With Workers > 1 documents are encoded concurrently; each result is written
// to its own input slot, so the output is identical to a sequential run.
func (v *Vectorizer) EncodeBatch(docs []models.Document, vocab *Vocabulary) [][]int {
	rows := make([][]int, len(docs))

	if v.config.Workers <= 1 {
		for i, doc := range docs {
			rows[i] = v.Encode(doc, vocab)
		}
		return rows
	}

	var g errgroup.Group
	g.SetLimit(v.config.Workers)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			rows[i] = v.Encode(doc, vocab)
			return nil
		})
	}
	g.Wait()

	return rows
}

// Common English stopwords
func defaultStopWords() []string {
	return []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with",
	}
}
