package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/faqbot/internal/domain/faq"
	"github.com/yanqian/faqbot/internal/infra/config"
	"github.com/yanqian/faqbot/internal/infra/corpus"
	"github.com/yanqian/faqbot/internal/infra/nlp"
)

const corpusLoadTimeout = 10 * time.Second

// NewNormalizer builds the text normaliser from the configured stopword list
// and lemmatiser. An empty stopwords path selects the bundled English list.
func NewNormalizer(cfg *config.Config) (*faq.Normalizer, error) {
	var stopwords nlp.Stopwords
	if path := strings.TrimSpace(cfg.NLP.StopwordsPath); path != "" {
		loaded, err := nlp.LoadStopwords(path)
		if err != nil {
			return nil, err
		}
		stopwords = loaded
	} else {
		stopwords = nlp.EnglishStopwords()
	}

	lemmatizer, err := nlp.NewLemmatizer(cfg.NLP.Lemmatizer)
	if err != nil {
		return nil, err
	}
	return faq.NewNormalizer(stopwords, lemmatizer), nil
}

// NewCorpusSource opens the configured corpus backend. The returned cleanup
// releases any connection it holds.
func NewCorpusSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (faq.CorpusSource, func(), error) {
	c := cfg.FAQ.Corpus
	noop := func() {}
	switch c.Driver {
	case config.CorpusDriverFile:
		logger.Info("faq corpus file source", "path", c.Path)
		return corpus.NewFileSource(c.Path), noop, nil
	case config.CorpusDriverSQLite:
		db, err := corpus.OpenSQLite(c.Path)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("faq corpus sqlite source", "path", c.Path)
		return corpus.NewSQLiteSource(db, c.Query), func() { _ = db.Close() }, nil
	case config.CorpusDriverPostgres:
		pool, err := openPostgres(ctx, c)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("faq corpus postgres source enabled")
		return corpus.NewPostgresSource(pool, c.Query), pool.Close, nil
	case config.CorpusDriverObject:
		src, err := corpus.NewObjectSource(corpus.ObjectOptions{
			Endpoint:  c.Object.Endpoint,
			AccessKey: c.Object.AccessKey,
			SecretKey: c.Object.SecretKey,
			Bucket:    c.Object.Bucket,
			Key:       c.Object.Key,
			Region:    c.Object.Region,
		})
		if err != nil {
			return nil, noop, err
		}
		logger.Info("faq corpus object source", "bucket", c.Object.Bucket, "key", c.Object.Key)
		return src, noop, nil
	default:
		return nil, noop, fmt.Errorf("unsupported corpus driver %q", c.Driver)
	}
}

func openPostgres(ctx context.Context, c config.CorpusConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if c.MaxConns > 0 {
		poolConfig.MaxConns = c.MaxConns
	}
	if c.MinConns > 0 {
		poolConfig.MinConns = c.MinConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("init postgres pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return pool, nil
}

// NewMatcher loads the corpus once and builds the matcher over it. Every
// failure is reported as a configuration error so callers can refuse to start.
func NewMatcher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*faq.Matcher, error) {
	logger = logger.With("component", "bootstrap.matcher")

	source, cleanup, err := NewCorpusSource(ctx, cfg, logger)
	if err != nil {
		return nil, faq.ConfigurationError("open faq corpus", err)
	}
	defer cleanup()

	loadCtx, cancel := context.WithTimeout(ctx, corpusLoadTimeout)
	defer cancel()
	records, err := faq.LoadCorpus(loadCtx, source)
	if err != nil {
		return nil, err
	}

	normalizer, err := NewNormalizer(cfg)
	if err != nil {
		return nil, faq.ConfigurationError("build normalizer", err)
	}

	matcher, err := faq.NewMatcher(records, normalizer)
	if err != nil {
		return nil, err
	}
	logger.Info("faq matcher ready",
		"driver", cfg.FAQ.Corpus.Driver,
		"records", records.Len(),
		"vocabulary", matcher.VocabularySize(),
	)
	return matcher, nil
}
