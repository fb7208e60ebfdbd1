package faq

import (
	"context"
	"fmt"
	"strings"
)

// CorpusSource yields the raw FAQ records from wherever they are configured.
type CorpusSource interface {
	Load(ctx context.Context) ([]Record, error)
}

// Corpus is the ordered, non-empty, read-only FAQ list.
type Corpus struct {
	records []Record
}

// NewCorpus validates records and fills the default category.
func NewCorpus(records []Record) (Corpus, error) {
	if len(records) == 0 {
		return Corpus{}, ConfigurationError("faq list is empty, check the corpus source", nil)
	}
	out := make([]Record, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Question) == "" {
			return Corpus{}, ConfigurationError(fmt.Sprintf("faq %d has no question", i), nil)
		}
		if strings.TrimSpace(rec.Answer) == "" {
			return Corpus{}, ConfigurationError(fmt.Sprintf("faq %d has no answer", i), nil)
		}
		if strings.TrimSpace(rec.Category) == "" {
			rec.Category = DefaultCategory
		}
		out[i] = rec
	}
	return Corpus{records: out}, nil
}

// LoadCorpus reads and validates the corpus once at startup. Any failure is a
// configuration error.
func LoadCorpus(ctx context.Context, source CorpusSource) (Corpus, error) {
	if source == nil {
		return Corpus{}, ConfigurationError("faq corpus source is not configured", nil)
	}
	records, err := source.Load(ctx)
	if err != nil {
		if IsConfigurationError(err) {
			return Corpus{}, err
		}
		return Corpus{}, ConfigurationError("load faq corpus", err)
	}
	return NewCorpus(records)
}

// Len reports the number of records.
func (c Corpus) Len() int {
	return len(c.records)
}

// Records returns a copy of the records in corpus order.
func (c Corpus) Records() []Record {
	return append([]Record(nil), c.records...)
}

// Filter returns the records whose category contains category, ignoring case.
// An empty category returns everything.
func (c Corpus) Filter(category string) []Record {
	if category == "" {
		return c.Records()
	}
	needle := strings.ToLower(category)
	out := make([]Record, 0, len(c.records))
	for _, rec := range c.records {
		if strings.Contains(strings.ToLower(rec.Category), needle) {
			out = append(out, rec)
		}
	}
	return out
}
