package corpus

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// SQLiteSource reads the corpus from a SQLite database file.
type SQLiteSource struct {
	db    *sql.DB
	query string
}

// OpenSQLite opens the database at path.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// NewSQLiteSource constructs the source. An empty query uses DefaultQuery.
func NewSQLiteSource(db *sql.DB, query string) *SQLiteSource {
	return &SQLiteSource{db: db, query: queryOrDefault(query)}
}

// Load implements faq.CorpusSource.
func (s *SQLiteSource) Load(ctx context.Context) ([]faq.Record, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

var _ faq.CorpusSource = (*SQLiteSource)(nil)
