package feedback

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// ValkeySink pushes JSON encoded entries onto a Valkey list.
type ValkeySink struct {
	client valkey.Client
	prefix string
}

// NewValkeySink constructs a sink writing to "<prefix>:feedback".
func NewValkeySink(client valkey.Client, prefix string) *ValkeySink {
	if prefix == "" {
		prefix = "faq"
	}
	return &ValkeySink{client: client, prefix: prefix}
}

// Append implements faq.FeedbackSink.
func (s *ValkeySink) Append(ctx context.Context, entry faq.FeedbackEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	cmd := s.client.B().Rpush().Key(s.listKey()).Element(string(payload)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeySink) listKey() string {
	return fmt.Sprintf("%s:feedback", s.prefix)
}

var _ faq.FeedbackSink = (*ValkeySink)(nil)
