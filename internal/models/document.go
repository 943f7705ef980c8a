package models

// Document is a single raw text record. The text is never modified after
// loading; tokenization works on its own copy.
type Document struct {
	ID       string
	Category int
	Labeled  bool
	Text     string
}

// Corpus is an ordered sequence of documents. Input order is preserved so
// that encoded rows line up with the source records.
type Corpus []Document

// EncodedDocument pairs a document with its term-count vector. Counts has
// one slot per vocabulary term, in the vocabulary's slot order.
type EncodedDocument struct {
	Document
	Counts []int
}
