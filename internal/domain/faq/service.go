package faq

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/faqbot/pkg/errors"
)

// Service exposes the FAQ assistant to transports.
type Service interface {
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
	List(ctx context.Context, category string) ([]Record, error)
	Feedback(ctx context.Context, req FeedbackRequest) (FeedbackResponse, error)
}

// FeedbackSink persists answer ratings. Implementations serialise their own writes.
type FeedbackSink interface {
	Append(ctx context.Context, entry FeedbackEntry) error
}

type service struct {
	cfg     Config
	matcher *Matcher
	sink    FeedbackSink
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires up the FAQ domain.
func NewService(cfg Config, matcher *Matcher, sink FeedbackSink, logger *slog.Logger) Service {
	if strings.TrimSpace(cfg.FallbackAnswer) == "" {
		cfg.FallbackAnswer = DefaultFallbackAnswer
	}
	return &service{
		cfg:     cfg,
		matcher: matcher,
		sink:    sink,
		logger:  logger.With("component", "faq.service"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Ask(_ context.Context, req AskRequest) (AskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return AskResponse{}, apperrors.Wrap(CodeInvalidInput, "question required", nil)
	}

	match := s.matcher.BestMatch(question)
	if match.Score < s.cfg.SimilarityThreshold {
		s.logger.Debug("faq match below threshold", "score", match.Score, "position", match.Position)
		return AskResponse{Answer: s.cfg.FallbackAnswer, Score: match.Score}, nil
	}

	s.logger.Debug("faq matched", "score", match.Score, "position", match.Position)
	return AskResponse{
		Answer:          match.Answer,
		MatchedQuestion: &match.Question,
		Category:        &match.Category,
		Score:           match.Score,
	}, nil
}

func (s *service) List(_ context.Context, category string) ([]Record, error) {
	return s.matcher.Corpus().Filter(strings.TrimSpace(category)), nil
}

func (s *service) Feedback(ctx context.Context, req FeedbackRequest) (FeedbackResponse, error) {
	value := strings.TrimSpace(req.Feedback)
	if value == "" {
		return FeedbackResponse{}, apperrors.Wrap(CodeInvalidInput, "feedback required", nil)
	}
	if s.sink == nil {
		return FeedbackResponse{}, apperrors.Wrap(CodeFeedback, "feedback sink not configured", nil)
	}
	entry := FeedbackEntry{
		ID:        uuid.NewString(),
		Feedback:  value,
		Answer:    req.Answer,
		CreatedAt: s.now(),
	}
	if err := s.sink.Append(ctx, entry); err != nil {
		return FeedbackResponse{}, apperrors.Wrap(CodeFeedback, "failed to save feedback", err)
	}
	return FeedbackResponse{Status: "saved", Feedback: value}, nil
}
