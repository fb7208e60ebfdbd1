package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

const shutdownTimeout = 10 * time.Second

// App owns the HTTP server lifecycle of the FAQ bot.
type App struct {
	logger  *slog.Logger
	server  *http.Server
	matcher *faq.Matcher
}

// NewApp is used by Wire to build the runnable app.
func NewApp(logger *slog.Logger, server *http.Server, matcher *faq.Matcher) *App {
	return &App{logger: logger.With("component", "bootstrap"), server: server, matcher: matcher}
}

// Run serves until ctx is cancelled or the listener fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting",
			"address", a.server.Addr,
			"faqs", a.matcher.Corpus().Len(),
			"vocabulary", a.matcher.VocabularySize(),
		)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutdown signal received")
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
