package faq

// DefaultSimilarityThreshold is the minimum score for a confident match.
const DefaultSimilarityThreshold = 0.15

// DefaultFallbackAnswer is returned when no FAQ clears the threshold.
const DefaultFallbackAnswer = "❌ Sorry, I only answer questions from our FAQ list. 👉 Click 'View All FAQs' to see them."

// Config holds runtime knobs for the FAQ service.
type Config struct {
	SimilarityThreshold float64
	FallbackAnswer      string
}
