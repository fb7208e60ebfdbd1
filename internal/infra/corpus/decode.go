// Package corpus provides the configured sources the FAQ corpus is loaded from.
package corpus

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// formatFor picks the decoder from the file or object name; anything that is
// not .yaml/.yml is treated as JSON.
func formatFor(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func decodeRecords(data []byte, format string) ([]faq.Record, error) {
	var records []faq.Record
	switch format {
	case formatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse faq yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse faq json: %w", err)
		}
	}
	return records, nil
}
