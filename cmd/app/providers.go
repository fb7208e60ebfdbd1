package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/faqbot/internal/bootstrap"
	"github.com/yanqian/faqbot/internal/domain/faq"
	"github.com/yanqian/faqbot/internal/infra/config"
	"github.com/yanqian/faqbot/internal/infra/feedback"
	httpiface "github.com/yanqian/faqbot/internal/interface/http"
)

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		SimilarityThreshold: cfg.FAQ.SimilarityThreshold,
		FallbackAnswer:      cfg.FAQ.FallbackAnswer,
	}
}

func provideMatcher(cfg *config.Config, logger *slog.Logger) (*faq.Matcher, error) {
	return bootstrap.NewMatcher(context.Background(), cfg, logger)
}

func provideChatPage(cfg *config.Config) httpiface.ChatPage {
	return httpiface.ChatPage(cfg.HTTP.ChatPage)
}

func provideFeedbackSink(cfg *config.Config, logger *slog.Logger) (faq.FeedbackSink, func()) {
	fallback := feedback.NewFileSink(cfg.Feedback.Path)
	noop := func() {}
	switch cfg.Feedback.Driver {
	case config.FeedbackDriverMemory:
		logger.Info("feedback memory sink enabled")
		return feedback.NewMemorySink(), noop
	case config.FeedbackDriverValkey:
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to file sink", "error", err)
			return fallback, noop
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to file sink", "error", err)
			return fallback, noop
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to file sink", "error", err)
			client.Close()
			return fallback, noop
		}
		logger.Info("feedback valkey sink enabled", "addr", cfg.Feedback.Valkey.Addr)
		return feedback.NewValkeySink(client, cfg.Feedback.Valkey.Prefix), client.Close
	default:
		logger.Info("feedback file sink enabled", "path", fallback.Path())
		return fallback, noop
	}
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	addr := cfg.Feedback.Valkey.Addr
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
