package faq

// Matcher answers lexical similarity queries against a fixed corpus. It is
// immutable after construction and safe for concurrent use.
type Matcher struct {
	corpus     Corpus
	normalizer *Normalizer
	normalized []string
	index      *Index
}

// NewMatcher normalises every corpus question and fits the similarity index.
func NewMatcher(corpus Corpus, normalizer *Normalizer) (*Matcher, error) {
	if corpus.Len() == 0 {
		return nil, ConfigurationError("faq corpus is empty", nil)
	}
	if normalizer == nil {
		normalizer = NewNormalizer(nil, nil)
	}
	normalized := make([]string, corpus.Len())
	for i, rec := range corpus.records {
		normalized[i] = normalizer.Normalize(rec.Question)
	}
	index, err := BuildIndex(normalized)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		corpus:     corpus,
		normalizer: normalizer,
		normalized: normalized,
		index:      index,
	}, nil
}

// BestMatch returns the corpus record most similar to question. Ties go to the
// earliest record, so a query with no usable terms yields record 0 with score 0.
// The score is reported as is; deciding whether it is good enough is up to the caller.
func (m *Matcher) BestMatch(question string) MatchResult {
	scores := m.index.Similarities(m.normalizer.Normalize(question))
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	rec := m.corpus.records[best]
	return MatchResult{
		Position: best,
		Question: rec.Question,
		Answer:   rec.Answer,
		Category: rec.Category,
		Score:    scores[best],
	}
}

// Corpus returns the corpus the matcher was built from.
func (m *Matcher) Corpus() Corpus {
	return m.corpus
}

// VocabularySize reports the number of frozen index terms.
func (m *Matcher) VocabularySize() int {
	return m.index.VocabularySize()
}
