// Package cli implements faqctl, a command line front end to the FAQ matcher.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/faqbot/internal/bootstrap"
	"github.com/yanqian/faqbot/internal/domain/faq"
	"github.com/yanqian/faqbot/internal/infra/config"
	"github.com/yanqian/faqbot/internal/infra/feedback"
	"github.com/yanqian/faqbot/pkg/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=<v>".
var version = "dev"

var configPath string

// matcherLoader builds the matcher and its answer settings. Tests swap it out.
var matcherLoader = loadMatcher

var rootCmd = &cobra.Command{
	Use:   "faqctl",
	Short: "Query and validate the FAQ corpus",
	Long: `faqctl loads the configured FAQ corpus with the same normaliser and
TF-IDF matcher as the HTTP service, so answers can be checked from a shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (defaults to CONFIG_PATH or configs/config.yaml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadMatcher(ctx context.Context) (*faq.Matcher, faq.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, faq.Config{}, err
	}
	matcher, err := bootstrap.NewMatcher(ctx, cfg, logger.NewWriter(os.Stderr))
	if err != nil {
		return nil, faq.Config{}, err
	}
	return matcher, faq.Config{
		SimilarityThreshold: cfg.FAQ.SimilarityThreshold,
		FallbackAnswer:      cfg.FAQ.FallbackAnswer,
	}, nil
}

// newService answers from the loaded corpus. Feedback is not exposed on the
// command line, so ratings go to an in-memory sink.
func newService(ctx context.Context) (faq.Service, error) {
	matcher, cfg, err := matcherLoader(ctx)
	if err != nil {
		return nil, err
	}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	return faq.NewService(cfg, matcher, feedback.NewMemorySink(), quiet), nil
}
