// Package feedback stores answer ratings submitted by chat users.
package feedback

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// DefaultPath is the log file used when none is configured.
const DefaultPath = "feedback_log.txt"

// FileSink appends one "<feedback> | <answer>" line per entry.
type FileSink struct {
	mu   sync.Mutex
	path string
}

// NewFileSink constructs a sink writing to path.
func NewFileSink(path string) *FileSink {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	return &FileSink{path: path}
}

// Append implements faq.FeedbackSink.
func (s *FileSink) Append(_ context.Context, entry faq.FeedbackEntry) error {
	line := formatLine(entry)
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open feedback log: %w", err)
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("write feedback log: %w", err)
	}
	return f.Close()
}

// Path returns the log file location.
func (s *FileSink) Path() string {
	return s.path
}

// formatLine keeps each entry on one line; embedded newlines would split it.
func formatLine(entry faq.FeedbackEntry) string {
	flatten := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	return flatten.Replace(entry.Feedback) + " | " + flatten.Replace(entry.Answer) + "\n"
}

var _ faq.FeedbackSink = (*FileSink)(nil)
