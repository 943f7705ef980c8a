package types

import (
	"io"

	"github.com/xhad/bow/internal/models"
)

// Core interfaces
type Tokenizer interface {
	Tokenize(text string) []string
}

type Loader interface {
	Load(path string) (models.Corpus, error)
	Read(r io.Reader) (models.Corpus, error)
}

type Vocabulary interface {
	Len() int
	Terms() []string
	Slot(term string) (int, bool)
}
