package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xhad/bow/internal/models"
	"github.com/xhad/bow/internal/types"
)

// WriteVocabulary writes one "term<TAB>slot" line per vocabulary entry,
// preceded by a header row. Slot indices increase with term order.
func WriteVocabulary(w io.Writer, vocab types.Vocabulary) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("term\tslot\n"); err != nil {
		return fmt.Errorf("failed to write vocabulary header: %v", err)
	}

	for slot, term := range vocab.Terms() {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", term, slot); err != nil {
			return fmt.Errorf("failed to write vocabulary entry: %v", err)
		}
	}

	return bw.Flush()
}

// WriteMatrix writes the count matrix row-per-document: the document id
// followed by one count per vocabulary slot, tab-separated. The header row
// carries "id" and the vocabulary terms in slot order.
func WriteMatrix(w io.Writer, vocab types.Vocabulary, docs []models.EncodedDocument) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("id"); err != nil {
		return fmt.Errorf("failed to write matrix header: %v", err)
	}
	for _, term := range vocab.Terms() {
		if _, err := bw.WriteString("\t" + term); err != nil {
			return fmt.Errorf("failed to write matrix header: %v", err)
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write matrix header: %v", err)
	}

	for _, doc := range docs {
		if _, err := bw.WriteString(doc.ID); err != nil {
			return fmt.Errorf("failed to write matrix row: %v", err)
		}
		for _, count := range doc.Counts {
			if _, err := bw.WriteString("\t" + strconv.Itoa(count)); err != nil {
				return fmt.Errorf("failed to write matrix row: %v", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write matrix row: %v", err)
		}
	}

	return bw.Flush()
}

// SaveVocabulary writes the vocabulary to a file, creating or truncating it.
func SaveVocabulary(path string, vocab types.Vocabulary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create vocabulary file: %v", err)
	}
	defer file.Close()

	return WriteVocabulary(file, vocab)
}

// SaveMatrix writes the count matrix to a file, creating or truncating it.
func SaveMatrix(path string, vocab types.Vocabulary, docs []models.EncodedDocument) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matrix file: %v", err)
	}
	defer file.Close()

	return WriteMatrix(file, vocab, docs)
}
