package vectorizer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadStopWords reads a stop-word file, one term per line. Blank lines and
// lines starting with '#' are skipped.
func LoadStopWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stop-word file: %v", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stop-word file: %v", err)
	}

	return words, nil
}
