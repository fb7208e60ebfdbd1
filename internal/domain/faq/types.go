package faq

import "time"

// DefaultCategory is assigned to records loaded without a category.
const DefaultCategory = "General"

// Record is a single FAQ entry. Its identity is its position in the corpus.
type Record struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Category string `json:"category" yaml:"category"`
}

// MatchResult is the closest corpus record for a query.
type MatchResult struct {
	Position int     `json:"-"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// AskRequest carries a free-text user question.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is returned to the HTTP transport. MatchedQuestion and Category
// are nil when the score falls below the confidence threshold.
type AskResponse struct {
	Answer          string  `json:"answer"`
	MatchedQuestion *string `json:"matched_question"`
	Category        *string `json:"category"`
	Score           float64 `json:"score"`
}

// FeedbackRequest captures a yes/no rating for a delivered answer.
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
	Answer   string `json:"answer"`
}

// FeedbackResponse acknowledges a stored feedback entry.
type FeedbackResponse struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

// FeedbackEntry is the payload handed to a FeedbackSink.
type FeedbackEntry struct {
	ID        string    `json:"id"`
	Feedback  string    `json:"feedback"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}
