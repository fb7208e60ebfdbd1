package faq

import (
	"math"
	"sort"
	"strings"
)

// posting is one document's L2-normalised TF-IDF weight for a term.
type posting struct {
	doc    int
	weight float64
}

// Index is a frozen TF-IDF vector space over unigrams and bigrams. Document
// vectors are stored as postings per vocabulary dimension.
type Index struct {
	vocabulary map[string]int
	idf        []float64
	postings   [][]posting
	docCount   int
}

// BuildIndex fits the vector space to already normalised documents. The
// vocabulary is fixed from here on: terms unseen at build time never receive
// weight.
func BuildIndex(docs []string) (*Index, error) {
	if len(docs) == 0 {
		return nil, ConfigurationError("cannot build similarity index from an empty corpus", nil)
	}

	counts := make([]map[string]int, len(docs))
	docFreq := make(map[string]int)
	for i, doc := range docs {
		counts[i] = termCounts(doc)
		for term := range counts[i] {
			docFreq[term]++
		}
	}
	if len(docFreq) == 0 {
		return nil, ConfigurationError("corpus questions produced an empty vocabulary", nil)
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	idx := &Index{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
		postings:   make([][]posting, len(terms)),
		docCount:   len(docs),
	}
	n := float64(len(docs))
	for dim, term := range terms {
		idx.vocabulary[term] = dim
		idx.idf[dim] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	for doc, tf := range counts {
		for _, w := range idx.weigh(tf) {
			idx.postings[w.dim] = append(idx.postings[w.dim], posting{doc: doc, weight: w.value})
		}
	}
	return idx, nil
}

// Len reports the number of indexed documents.
func (idx *Index) Len() int {
	return idx.docCount
}

// VocabularySize reports the number of vector dimensions.
func (idx *Index) VocabularySize() int {
	return len(idx.vocabulary)
}

// Similarities returns the cosine similarity between the normalised query and
// every document, in corpus order. A query with no known terms scores zero
// everywhere.
func (idx *Index) Similarities(normalized string) []float64 {
	scores := make([]float64, idx.docCount)
	for _, w := range idx.weigh(termCounts(normalized)) {
		for _, p := range idx.postings[w.dim] {
			scores[p.doc] += w.value * p.weight
		}
	}
	for i, s := range scores {
		scores[i] = clampUnit(s)
	}
	return scores
}

type weight struct {
	dim   int
	value float64
}

// weigh turns raw term counts into an L2-normalised sparse TF-IDF vector
// sorted by dimension. Out-of-vocabulary terms are dropped.
func (idx *Index) weigh(tf map[string]int) []weight {
	vec := make([]weight, 0, len(tf))
	var sumSquares float64
	for term, count := range tf {
		dim, ok := idx.vocabulary[term]
		if !ok {
			continue
		}
		value := float64(count) * idx.idf[dim]
		sumSquares += value * value
		vec = append(vec, weight{dim: dim, value: value})
	}
	if sumSquares == 0 {
		return nil
	}
	norm := math.Sqrt(sumSquares)
	for i := range vec {
		vec[i].value /= norm
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].dim < vec[j].dim })
	return vec
}

// termCounts counts the unigrams and contiguous bigrams of a normalised string.
func termCounts(normalized string) map[string]int {
	tokens := strings.Fields(normalized)
	counts := make(map[string]int, 2*len(tokens))
	for i, token := range tokens {
		counts[token]++
		if i > 0 {
			counts[tokens[i-1]+" "+token]++
		}
	}
	return counts
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
