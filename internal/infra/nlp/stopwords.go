// Package nlp provides the linguistic resources the FAQ normaliser is built with.
package nlp

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

//go:embed stopwords_en.txt
var englishStopwords []byte

// Stopwords is a set of lowercase tokens excluded from matching.
type Stopwords map[string]struct{}

// Contains implements faq.StopwordSet.
func (s Stopwords) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// EnglishStopwords returns the bundled English list.
func EnglishStopwords() Stopwords {
	set, err := ParseStopwords(bytes.NewReader(englishStopwords))
	if err != nil {
		// the embedded list is static; a read error here is a build defect
		panic(fmt.Sprintf("nlp: parse bundled stopwords: %v", err))
	}
	return set
}

// LoadStopwords reads a newline separated stopword list from path.
func LoadStopwords(path string) (Stopwords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords file: %w", err)
	}
	defer f.Close()
	return ParseStopwords(f)
}

// ParseStopwords reads one word per line. Blank lines and lines starting with
// '#' are skipped; words are lowercased.
func ParseStopwords(r io.Reader) (Stopwords, error) {
	set := make(Stopwords)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return set, nil
}

var _ faq.StopwordSet = Stopwords(nil)
