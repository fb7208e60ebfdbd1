package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/faqbot/internal/domain/faq"
	"github.com/yanqian/faqbot/internal/infra/config"
)

const sampleCorpus = `[
  {"question": "What is the return policy?", "answer": "Items can be returned within 30 days.", "category": "Policy"},
  {"question": "How long does shipping take?", "answer": "Orders ship within 3 to 5 business days.", "category": "Shipping"}
]`

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fileConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faqs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return &config.Config{
		FAQ: config.FAQConfig{Corpus: config.CorpusConfig{Driver: config.CorpusDriverFile, Path: path}},
		NLP: config.NLPConfig{Lemmatizer: "none"},
	}
}

func TestNewMatcherFromFile(t *testing.T) {
	matcher, err := NewMatcher(context.Background(), fileConfig(t, sampleCorpus), newTestLogger())
	require.NoError(t, err)
	require.Equal(t, 2, matcher.Corpus().Len())

	result := matcher.BestMatch("return policy")
	require.Equal(t, 0, result.Position)
	require.Greater(t, result.Score, 0.15)
}

func TestNewMatcherCustomStopwords(t *testing.T) {
	cfg := fileConfig(t, sampleCorpus)
	cfg.NLP.StopwordsPath = filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, os.WriteFile(cfg.NLP.StopwordsPath, []byte("return\npolicy\n"), 0o644))

	matcher, err := NewMatcher(context.Background(), cfg, newTestLogger())
	require.NoError(t, err)
	require.Zero(t, matcher.BestMatch("return policy").Score)
}

func TestNewMatcherConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(t *testing.T) *config.Config
	}{
		{name: "missing file", cfg: func(t *testing.T) *config.Config {
			cfg := fileConfig(t, sampleCorpus)
			cfg.FAQ.Corpus.Path = filepath.Join(t.TempDir(), "missing.json")
			return cfg
		}},
		{name: "malformed file", cfg: func(t *testing.T) *config.Config { return fileConfig(t, "{not json") }},
		{name: "empty list", cfg: func(t *testing.T) *config.Config { return fileConfig(t, "[]") }},
		{name: "unknown driver", cfg: func(t *testing.T) *config.Config {
			cfg := fileConfig(t, sampleCorpus)
			cfg.FAQ.Corpus.Driver = "mongo"
			return cfg
		}},
		{name: "unknown lemmatizer", cfg: func(t *testing.T) *config.Config {
			cfg := fileConfig(t, sampleCorpus)
			cfg.NLP.Lemmatizer = "porter"
			return cfg
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMatcher(context.Background(), tc.cfg(t), newTestLogger())
			require.Error(t, err)
			require.True(t, faq.IsConfigurationError(err), "got %v", err)
		})
	}
}

func TestAppRunStopsOnCancel(t *testing.T) {
	matcher, err := NewMatcher(context.Background(), fileConfig(t, sampleCorpus), newTestLogger())
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	server := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
	app := NewApp(newTestLogger(), server, matcher)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
