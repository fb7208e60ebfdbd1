package corpus

import (
	"fmt"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// DefaultQuery selects the corpus in a stable order. Category may be NULL.
const DefaultQuery = `SELECT question, answer, category FROM faqs ORDER BY id`

// recordRows is the cursor surface shared by pgx.Rows and *sql.Rows.
type recordRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRecords(rows recordRows) ([]faq.Record, error) {
	var records []faq.Record
	for rows.Next() {
		var (
			rec      faq.Record
			category *string
		)
		if err := rows.Scan(&rec.Question, &rec.Answer, &category); err != nil {
			return nil, fmt.Errorf("scan faq row: %w", err)
		}
		if category != nil {
			rec.Category = *category
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate faq rows: %w", err)
	}
	return records, nil
}

func queryOrDefault(query string) string {
	if query == "" {
		return DefaultQuery
	}
	return query
}
