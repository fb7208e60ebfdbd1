package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Corpus drivers.
const (
	CorpusDriverFile     = "file"
	CorpusDriverPostgres = "postgres"
	CorpusDriverSQLite   = "sqlite"
	CorpusDriverObject   = "object"
)

// Feedback drivers.
const (
	FeedbackDriverFile   = "file"
	FeedbackDriverMemory = "memory"
	FeedbackDriverValkey = "valkey"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	FAQ      FAQConfig      `yaml:"faq"`
	NLP      NLPConfig      `yaml:"nlp"`
	Feedback FeedbackConfig `yaml:"feedback"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	ChatPage     string          `yaml:"chatPage"`
	CORS         CORSConfig      `yaml:"cors"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// CORSConfig lists the origins allowed to call the API. Empty means "*".
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// FAQConfig controls matching and the corpus source.
type FAQConfig struct {
	SimilarityThreshold float64      `yaml:"similarityThreshold"`
	FallbackAnswer      string       `yaml:"fallbackAnswer"`
	Corpus              CorpusConfig `yaml:"corpus"`
}

// CorpusConfig selects where the FAQ records are loaded from.
type CorpusConfig struct {
	Driver   string       `yaml:"driver"`
	Path     string       `yaml:"path"`
	DSN      string       `yaml:"dsn"`
	Query    string       `yaml:"query"`
	MaxConns int32        `yaml:"maxConns"`
	MinConns int32        `yaml:"minConns"`
	Object   ObjectConfig `yaml:"object"`
}

// ObjectConfig locates the corpus in S3-compatible storage.
type ObjectConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
	Region    string `yaml:"region"`
}

// NLPConfig selects the normaliser resources.
type NLPConfig struct {
	StopwordsPath string `yaml:"stopwordsPath"`
	Lemmatizer    string `yaml:"lemmatizer"`
}

// FeedbackConfig selects where answer ratings are written.
type FeedbackConfig struct {
	Driver string       `yaml:"driver"`
	Path   string       `yaml:"path"`
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the feedback list.
type ValkeyConfig struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

const defaultConfigPath = "configs/config.yaml"

// Load reads configuration from CONFIG_PATH (or configs/config.yaml when it
// exists) and environment variables.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom is Load with an explicit file path. An empty path falls back to
// configs/config.yaml when present.
func LoadFrom(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := hydrateFromFile(cfg, defaultConfigPath); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CHAT_PAGE"); v != "" {
		cfg.HTTP.ChatPage = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORS.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("FAQ_SIMILARITY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FAQ.SimilarityThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_FALLBACK_ANSWER"); v != "" {
		cfg.FAQ.FallbackAnswer = v
	}
	if v := os.Getenv("FAQ_CORPUS_DRIVER"); v != "" {
		cfg.FAQ.Corpus.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("FAQ_CORPUS_PATH"); v != "" {
		cfg.FAQ.Corpus.Path = v
	}
	if v := os.Getenv("FAQ_CORPUS_DSN"); v != "" {
		cfg.FAQ.Corpus.DSN = v
	}
	if v := os.Getenv("FAQ_CORPUS_QUERY"); v != "" {
		cfg.FAQ.Corpus.Query = v
	}
	if v := os.Getenv("FAQ_OBJECT_ENDPOINT"); v != "" {
		cfg.FAQ.Corpus.Object.Endpoint = v
	}
	if v := os.Getenv("FAQ_OBJECT_ACCESS_KEY"); v != "" {
		cfg.FAQ.Corpus.Object.AccessKey = v
	}
	if v := os.Getenv("FAQ_OBJECT_SECRET_KEY"); v != "" {
		cfg.FAQ.Corpus.Object.SecretKey = v
	}
	if v := os.Getenv("FAQ_OBJECT_BUCKET"); v != "" {
		cfg.FAQ.Corpus.Object.Bucket = v
	}
	if v := os.Getenv("FAQ_OBJECT_KEY"); v != "" {
		cfg.FAQ.Corpus.Object.Key = v
	}
	if v := os.Getenv("FAQ_OBJECT_REGION"); v != "" {
		cfg.FAQ.Corpus.Object.Region = v
	}
	if v := os.Getenv("NLP_STOPWORDS_PATH"); v != "" {
		cfg.NLP.StopwordsPath = v
	}
	if v := os.Getenv("NLP_LEMMATIZER"); v != "" {
		cfg.NLP.Lemmatizer = strings.ToLower(v)
	}
	if v := os.Getenv("FEEDBACK_DRIVER"); v != "" {
		cfg.Feedback.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("FEEDBACK_PATH"); v != "" {
		cfg.Feedback.Path = v
	}
	if v := os.Getenv("FEEDBACK_VALKEY_ADDR"); v != "" {
		cfg.Feedback.Valkey.Addr = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":5000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			ChatPage:     "web/chatbot.html",
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		FAQ: FAQConfig{
			SimilarityThreshold: 0.15,
			FallbackAnswer:      "❌ Sorry, I only answer questions from our FAQ list. 👉 Click 'View All FAQs' to see them.",
			Corpus: CorpusConfig{
				Driver:   CorpusDriverFile,
				Path:     "configs/faqs.json",
				MaxConns: 2,
			},
		},
		NLP: NLPConfig{
			Lemmatizer: "golem",
		},
		Feedback: FeedbackConfig{
			Driver: FeedbackDriverFile,
			Path:   "feedback_log.txt",
			Valkey: ValkeyConfig{Prefix: "faq"},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.FAQ.SimilarityThreshold < 0 || c.FAQ.SimilarityThreshold > 1 {
		return errors.New("faq.similarityThreshold must be within [0, 1]")
	}
	if err := c.FAQ.Corpus.validate(); err != nil {
		return err
	}
	switch c.NLP.Lemmatizer {
	case "", "golem", "none":
	default:
		return fmt.Errorf("nlp.lemmatizer %q is not supported", c.NLP.Lemmatizer)
	}
	switch c.Feedback.Driver {
	case FeedbackDriverFile, FeedbackDriverMemory:
	case FeedbackDriverValkey:
		if strings.TrimSpace(c.Feedback.Valkey.Addr) == "" {
			return errors.New("feedback.valkey.addr cannot be empty when the valkey driver is selected")
		}
	default:
		return fmt.Errorf("feedback.driver %q is not supported", c.Feedback.Driver)
	}
	return nil
}

func (c CorpusConfig) validate() error {
	switch c.Driver {
	case CorpusDriverFile, CorpusDriverSQLite:
		if strings.TrimSpace(c.Path) == "" {
			return fmt.Errorf("faq.corpus.path cannot be empty for the %s driver", c.Driver)
		}
	case CorpusDriverPostgres:
		if strings.TrimSpace(c.DSN) == "" {
			return errors.New("faq.corpus.dsn cannot be empty for the postgres driver")
		}
	case CorpusDriverObject:
		if strings.TrimSpace(c.Object.Endpoint) == "" || strings.TrimSpace(c.Object.Bucket) == "" || strings.TrimSpace(c.Object.Key) == "" {
			return errors.New("faq.corpus.object endpoint, bucket and key are required for the object driver")
		}
	default:
		return fmt.Errorf("faq.corpus.driver %q is not supported", c.Driver)
	}
	return nil
}
