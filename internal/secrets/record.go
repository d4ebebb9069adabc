package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("secret is missing a required field")

// Record holds the source and destination key pairs of one replication job.
type Record struct {
	SrcAccessKeyID     string `json:"src_access_key_id"`
	SrcSecretAccessKey string `json:"src_secret_access_key"`
	DstAccessKeyID     string `json:"dst_access_key_id"`
	DstSecretAccessKey string `json:"dst_secret_access_key"`
}

// ParseRecord decodes a JSON secret payload. Every field is required.
func ParseRecord(payload string) (*Record, error) {
	var rec Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode secret payload: %w", err)
	}

	fields := []struct {
		key   string
		value string
	}{
		{"src_access_key_id", rec.SrcAccessKeyID},
		{"src_secret_access_key", rec.SrcSecretAccessKey},
		{"dst_access_key_id", rec.DstAccessKeyID},
		{"dst_secret_access_key", rec.DstSecretAccessKey},
	}
	for _, f := range fields {
		if f.value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f.key)
		}
	}
	return &rec, nil
}
