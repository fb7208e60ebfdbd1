package nlp

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

const (
	// LemmatizerGolem selects the English dictionary lemmatiser.
	LemmatizerGolem = "golem"
	// LemmatizerNone leaves tokens untouched.
	LemmatizerNone = "none"
)

// GolemLemmatizer maps inflected English words to a dictionary base form
// regardless of part of speech. Unknown words are returned unchanged.
type GolemLemmatizer struct {
	lemmatizer *golem.Lemmatizer
}

// NewGolemLemmatizer loads the bundled English dictionary.
func NewGolemLemmatizer() (*GolemLemmatizer, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	return &GolemLemmatizer{lemmatizer: l}, nil
}

// Lemma implements faq.Lemmatizer.
func (g *GolemLemmatizer) Lemma(token string) string {
	lemma := strings.ToLower(g.lemmatizer.Lemma(token))
	if lemma == "" {
		return token
	}
	return lemma
}

// IdentityLemmatizer returns tokens as given.
type IdentityLemmatizer struct{}

// Lemma implements faq.Lemmatizer.
func (IdentityLemmatizer) Lemma(token string) string {
	return token
}

// NewLemmatizer resolves a configured lemmatiser name.
func NewLemmatizer(name string) (faq.Lemmatizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LemmatizerGolem:
		l, err := NewGolemLemmatizer()
		if err != nil {
			return nil, err
		}
		return l, nil
	case LemmatizerNone:
		return IdentityLemmatizer{}, nil
	default:
		return nil, fmt.Errorf("unknown lemmatizer %q", name)
	}
}

var (
	_ faq.Lemmatizer = (*GolemLemmatizer)(nil)
	_ faq.Lemmatizer = IdentityLemmatizer{}
)
