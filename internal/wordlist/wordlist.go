// Package wordlist reads the plain-text word source the tree is built from.
package wordlist

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads every word from the file at path. A line may carry a single
// word or several comma-separated ones; order is preserved.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", path, err)
	}
	return words, nil
}

// Read parses comma-separated words from r, one or more per line. Fields
// are trimmed and empty fields dropped.
func Read(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var words []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, field := range record {
			if word := strings.TrimSpace(field); word != "" {
				words = append(words, word)
			}
		}
	}
	return words, nil
}
