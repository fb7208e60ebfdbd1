package faq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTermCountsUnigramsAndBigrams(t *testing.T) {
	got := termCounts("return policy return")
	require.Equal(t, map[string]int{
		"return":        2,
		"policy":        1,
		"return policy": 1,
		"policy return": 1,
	}, got)
	require.Empty(t, termCounts(""))
}

func TestBuildIndexSmoothedIDF(t *testing.T) {
	idx, err := BuildIndex([]string{"return policy", "return window", "shipping"})
	require.NoError(t, err)
	require.Equal(t, 3, idx.Len())
	// return, policy, window, shipping, "return policy", "return window"
	require.Equal(t, 6, idx.VocabularySize())

	shared := idx.idf[idx.vocabulary["return"]]
	unique := idx.idf[idx.vocabulary["policy"]]
	require.InDelta(t, math.Log(4.0/3.0)+1, shared, 1e-12)
	require.InDelta(t, math.Log(4.0/2.0)+1, unique, 1e-12)
	require.Less(t, shared, unique)
}

func TestIndexSimilarities(t *testing.T) {
	idx, err := BuildIndex([]string{"return policy", "return window", "shipping"})
	require.NoError(t, err)

	scores := idx.Similarities("return policy")
	require.Len(t, scores, 3)
	require.InDelta(t, 1.0, scores[0], 1e-9)
	require.Greater(t, scores[1], 0.0)
	require.Less(t, scores[1], scores[0])
	require.Equal(t, 0.0, scores[2])

	require.Equal(t, []float64{0, 0, 0}, idx.Similarities(""))
	require.Equal(t, []float64{0, 0, 0}, idx.Similarities("unknown words only"))
}

func TestIndexVectorsAreUnitLength(t *testing.T) {
	idx, err := BuildIndex([]string{"track order status", "order history", "track parcel"})
	require.NoError(t, err)

	norms := make([]float64, idx.Len())
	for _, plist := range idx.postings {
		for _, p := range plist {
			norms[p.doc] += p.weight * p.weight
		}
	}
	for doc, sq := range norms {
		require.InDelta(t, 1.0, sq, 1e-9, "doc %d", doc)
	}
}

func TestBuildIndexAllowsEmptyDocumentAmongOthers(t *testing.T) {
	idx, err := BuildIndex([]string{"", "gift cards"})
	require.NoError(t, err)
	scores := idx.Similarities("gift")
	require.Equal(t, 0.0, scores[0])
	require.Greater(t, scores[1], 0.0)
}

func TestBuildIndexErrors(t *testing.T) {
	_, err := BuildIndex(nil)
	require.True(t, IsConfigurationError(err))

	_, err = BuildIndex([]string{"", " "})
	require.True(t, IsConfigurationError(err))
}
