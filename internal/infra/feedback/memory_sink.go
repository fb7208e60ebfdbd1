package feedback

import (
	"context"
	"sync"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// MemorySink keeps entries in process memory for tests/dev.
type MemorySink struct {
	mu      sync.RWMutex
	entries []faq.FeedbackEntry
}

// NewMemorySink constructs an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Append implements faq.FeedbackSink.
func (s *MemorySink) Append(_ context.Context, entry faq.FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// Entries returns a copy of the stored entries in arrival order.
func (s *MemorySink) Entries() []faq.FeedbackEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]faq.FeedbackEntry(nil), s.entries...)
}

var _ faq.FeedbackSink = (*MemorySink)(nil)
