package corpus

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// PostgresSource reads the corpus from a Postgres table using pgx.
type PostgresSource struct {
	pool  *pgxpool.Pool
	query string
}

// NewPostgresSource constructs the source. An empty query uses DefaultQuery.
func NewPostgresSource(pool *pgxpool.Pool, query string) *PostgresSource {
	return &PostgresSource{pool: pool, query: queryOrDefault(query)}
}

// Load implements faq.CorpusSource.
func (s *PostgresSource) Load(ctx context.Context) ([]faq.Record, error) {
	rows, err := s.pool.Query(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

var _ faq.CorpusSource = (*PostgresSource)(nil)
