package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":5000", cfg.HTTP.Address)
	require.Equal(t, 0.15, cfg.FAQ.SimilarityThreshold)
	require.Equal(t, CorpusDriverFile, cfg.FAQ.Corpus.Driver)
	require.Equal(t, "configs/faqs.json", cfg.FAQ.Corpus.Path)
	require.Equal(t, FeedbackDriverFile, cfg.Feedback.Driver)
	require.Equal(t, "feedback_log.txt", cfg.Feedback.Path)
	require.Equal(t, "golem", cfg.NLP.Lemmatizer)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
  cors:
    allowedOrigins: ["https://example.com"]
faq:
  similarityThreshold: 0.3
  corpus:
    driver: sqlite
    path: /data/faqs.db
feedback:
  driver: memory
`), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("FAQ_SIMILARITY_THRESHOLD", "0.25")
	t.Setenv("HTTP_CORS_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("NLP_LEMMATIZER", "NONE")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 0.25, cfg.FAQ.SimilarityThreshold)
	require.Equal(t, CorpusDriverSQLite, cfg.FAQ.Corpus.Driver)
	require.Equal(t, "/data/faqs.db", cfg.FAQ.Corpus.Path)
	require.Equal(t, FeedbackDriverMemory, cfg.Feedback.Driver)
	require.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.HTTP.CORS.AllowedOrigins)
	require.Equal(t, "none", cfg.NLP.Lemmatizer)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: ["), 0o644))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty address", mutate: func(c *Config) { c.HTTP.Address = "" }, errMsg: "http.address"},
		{name: "threshold above one", mutate: func(c *Config) { c.FAQ.SimilarityThreshold = 1.5 }, errMsg: "similarityThreshold"},
		{name: "negative threshold", mutate: func(c *Config) { c.FAQ.SimilarityThreshold = -0.1 }, errMsg: "similarityThreshold"},
		{name: "unknown corpus driver", mutate: func(c *Config) { c.FAQ.Corpus.Driver = "mongo" }, errMsg: "faq.corpus.driver"},
		{name: "file without path", mutate: func(c *Config) { c.FAQ.Corpus.Path = "" }, errMsg: "faq.corpus.path"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.FAQ.Corpus.Driver = CorpusDriverPostgres }, errMsg: "faq.corpus.dsn"},
		{name: "object without bucket", mutate: func(c *Config) {
			c.FAQ.Corpus.Driver = CorpusDriverObject
			c.FAQ.Corpus.Object.Endpoint = "https://s3.example.com"
		}, errMsg: "faq.corpus.object"},
		{name: "valkey without addr", mutate: func(c *Config) { c.Feedback.Driver = FeedbackDriverValkey }, errMsg: "feedback.valkey.addr"},
		{name: "unknown feedback driver", mutate: func(c *Config) { c.Feedback.Driver = "kafka" }, errMsg: "feedback.driver"},
		{name: "unknown lemmatizer", mutate: func(c *Config) { c.NLP.Lemmatizer = "porter" }, errMsg: "nlp.lemmatizer"},
		{name: "rate limit burst", mutate: func(c *Config) { c.HTTP.RateLimit.Burst = 0 }, errMsg: "burst"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoadFromExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	require.NoError(t, os.WriteFile(path, []byte("faq:\n  corpus:\n    path: /srv/faqs.yaml\n"), 0o644))
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "ignored.yaml"))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/faqs.yaml", cfg.FAQ.Corpus.Path)
}
