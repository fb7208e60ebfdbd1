package feedback

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

func TestFileSinkAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_log.txt")
	sink := NewFileSink(path)

	require.NoError(t, sink.Append(context.Background(), faq.FeedbackEntry{Feedback: "yes", Answer: "30 days."}))
	require.NoError(t, sink.Append(context.Background(), faq.FeedbackEntry{Feedback: "no", Answer: "line one\nline two"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "yes | 30 days.\nno | line one line two\n", string(data))
}

func TestFileSinkConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_log.txt")
	sink := NewFileSink(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sink.Append(context.Background(), faq.FeedbackEntry{Feedback: "yes", Answer: "ok"})
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 20*len("yes | ok\n"), len(data))
}

func TestFileSinkDefaultPath(t *testing.T) {
	require.Equal(t, DefaultPath, NewFileSink(" ").Path())
}

func TestFileSinkUnwritablePath(t *testing.T) {
	sink := NewFileSink(filepath.Join(t.TempDir(), "missing-dir", "log.txt"))
	require.Error(t, sink.Append(context.Background(), faq.FeedbackEntry{Feedback: "yes"}))
}

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()
	entry := faq.FeedbackEntry{ID: "1", Feedback: "yes", Answer: "a", CreatedAt: time.Unix(0, 0).UTC()}
	require.NoError(t, sink.Append(context.Background(), entry))

	entries := sink.Entries()
	require.Equal(t, []faq.FeedbackEntry{entry}, entries)
	entries[0].Feedback = "mutated"
	require.Equal(t, "yes", sink.Entries()[0].Feedback)
}
