package faq

import "strings"

const minTokenLen = 3

// StopwordSet reports whether a lowercase token carries too little information to match on.
type StopwordSet interface {
	Contains(token string) bool
}

// Lemmatizer reduces a lowercase token to its dictionary base form.
type Lemmatizer interface {
	Lemma(token string) string
}

// Normalizer maps free text to the canonical token string used for matching.
type Normalizer struct {
	stopwords  StopwordSet
	lemmatizer Lemmatizer
}

// NewNormalizer builds a Normalizer. A nil stopword set filters nothing and a
// nil lemmatizer leaves tokens unchanged.
func NewNormalizer(stopwords StopwordSet, lemmatizer Lemmatizer) *Normalizer {
	return &Normalizer{stopwords: stopwords, lemmatizer: lemmatizer}
}

// Normalize lowercases text, turns everything but ASCII letters, digits and
// whitespace into spaces, drops stopwords and tokens shorter than three
// characters, lemmatises the rest and joins them with single spaces.
func (n *Normalizer) Normalize(text string) string {
	return strings.Join(n.tokens(text), " ")
}

func (n *Normalizer) tokens(text string) []string {
	fields := strings.Fields(stripPunctuation(strings.ToLower(text)))
	out := fields[:0]
	for _, token := range fields {
		if len(token) < minTokenLen {
			continue
		}
		if n.stopwords != nil && n.stopwords.Contains(token) {
			continue
		}
		if n.lemmatizer != nil {
			token = n.lemmatizer.Lemma(token)
		}
		if token == "" {
			continue
		}
		out = append(out, token)
	}
	return out
}

func stripPunctuation(lowered string) string {
	var builder strings.Builder
	builder.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
			continue
		}
		// whitespace and punctuation both become token separators
		builder.WriteByte(' ')
	}
	return builder.String()
}
