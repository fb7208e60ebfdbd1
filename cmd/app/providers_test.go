package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/faqbot/internal/infra/config"
	"github.com/yanqian/faqbot/internal/infra/feedback"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvideFeedbackSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.txt")

	sink, cleanup := provideFeedbackSink(&config.Config{Feedback: config.FeedbackConfig{Driver: config.FeedbackDriverFile, Path: path}}, quietLogger())
	defer cleanup()
	fileSink, ok := sink.(*feedback.FileSink)
	require.True(t, ok)
	require.Equal(t, path, fileSink.Path())

	sink, cleanup = provideFeedbackSink(&config.Config{Feedback: config.FeedbackConfig{Driver: config.FeedbackDriverMemory}}, quietLogger())
	defer cleanup()
	_, ok = sink.(*feedback.MemorySink)
	require.True(t, ok)
}

func TestBuildValkeyOptions(t *testing.T) {
	opt, err := buildValkeyOptions(&config.Config{Feedback: config.FeedbackConfig{Valkey: config.ValkeyConfig{Addr: "localhost:6379"}}})
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6379"}, opt.InitAddress)

	opt, err = buildValkeyOptions(&config.Config{Feedback: config.FeedbackConfig{Valkey: config.ValkeyConfig{Addr: "redis://cache:6380/0"}}})
	require.NoError(t, err)
	require.Equal(t, []string{"cache:6380"}, opt.InitAddress)
}

func TestProvideFAQConfig(t *testing.T) {
	cfg := &config.Config{FAQ: config.FAQConfig{SimilarityThreshold: 0.2, FallbackAnswer: "nope"}}
	got := provideFAQConfig(cfg)
	require.Equal(t, 0.2, got.SimilarityThreshold)
	require.Equal(t, "nope", got.FallbackAnswer)
}
