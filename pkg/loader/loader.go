package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xhad/bow/internal/models"
)

// InvalidDocumentError reports a malformed record. Line numbers are
// 1-based and count the header row.
type InvalidDocumentError struct {
	Line   int
	Reason string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid document at line %d: %s", e.Line, e.Reason)
}

type Config struct {
	IDColumn       string
	CategoryColumn string
	TextColumn     string
	OnProgress     func(id string)
}

// Loader reads tab-separated corpora with a header row. Fields are split on
// tabs only; quote characters inside the text field are data, never field
// quoting, so this deliberately avoids quote-aware csv parsing.
type Loader struct {
	config Config
}

func New() *Loader {
	return NewWithConfig(Config{})
}

func NewWithConfig(config Config) *Loader {
	if config.IDColumn == "" {
		config.IDColumn = "id"
	}
	if config.CategoryColumn == "" {
		config.CategoryColumn = "category"
	}
	if config.TextColumn == "" {
		config.TextColumn = "text"
	}

	return &Loader{config: config}
}

func (l *Loader) Load(path string) (models.Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %v", err)
	}
	defer file.Close()

	return l.Read(file)
}

func (l *Loader) Read(r io.Reader) (models.Corpus, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %v", err)
		}
		return nil, fmt.Errorf("corpus input is empty, expected a header row")
	}

	header := strings.Split(scanner.Text(), "\t")
	idIdx, catIdx, textIdx := -1, -1, -1
	for i, name := range header {
		switch name {
		case l.config.IDColumn:
			idIdx = i
		case l.config.CategoryColumn:
			catIdx = i
		case l.config.TextColumn:
			textIdx = i
		}
	}
	if textIdx < 0 {
		return nil, fmt.Errorf("header is missing the %q column", l.config.TextColumn)
	}

	var corpus models.Corpus
	line := 1
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		if raw == "" {
			continue
		}

		var fields []string
		if textIdx == len(header)-1 {
			// Text is the last column: stray tabs inside a review
			// stay part of the text field.
			fields = strings.SplitN(raw, "\t", len(header))
		} else {
			fields = strings.Split(raw, "\t")
		}

		if len(fields) <= textIdx {
			return nil, &InvalidDocumentError{Line: line, Reason: "missing text field"}
		}

		doc := models.Document{Text: fields[textIdx]}

		if idIdx >= 0 && idIdx < len(fields) {
			doc.ID = fields[idIdx]
		} else {
			doc.ID = strconv.Itoa(len(corpus))
		}

		if catIdx >= 0 && catIdx < len(fields) && fields[catIdx] != "" {
			category, err := strconv.Atoi(fields[catIdx])
			if err != nil {
				return nil, &InvalidDocumentError{Line: line, Reason: "category is not an integer"}
			}
			if category != 0 && category != 1 {
				return nil, &InvalidDocumentError{Line: line, Reason: "category must be 0 or 1"}
			}
			doc.Category = category
			doc.Labeled = true
		}

		corpus = append(corpus, doc)

		if l.config.OnProgress != nil {
			l.config.OnProgress(doc.ID)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %v", err)
	}

	return corpus, nil
}
