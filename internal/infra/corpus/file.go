package corpus

import (
	"context"
	"fmt"
	"os"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// FileSource reads the corpus from a local JSON or YAML file.
type FileSource struct {
	path string
}

// NewFileSource constructs a file backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load implements faq.CorpusSource.
func (s *FileSource) Load(_ context.Context) ([]faq.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read faq file: %w", err)
	}
	return decodeRecords(data, formatFor(s.path))
}

var _ faq.CorpusSource = (*FileSource)(nil)
