// Package secrets retrieves the replication credentials from AWS Secrets
// Manager.
//
// Provider errors from GetSecretValue are returned exactly as the SDK
// produced them, so callers can match them with errors.As against the
// secretsmanager/types error structs. Secret values are never logged.
package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	log "github.com/sirupsen/logrus"
)

var ErrEmptySecret = errors.New("secret has neither a string nor a binary value")

// GetSecretValueAPI is the subset of *secretsmanager.Client the fetcher needs.
type GetSecretValueAPI interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

type Fetcher struct {
	api GetSecretValueAPI
}

func NewFetcher(api GetSecretValueAPI) *Fetcher {
	return &Fetcher{api: api}
}

// Fetch returns the payload of secretID as text. A string secret is
// returned as-is; a binary secret, already base64-decoded by the SDK, is
// converted to a string without further transformation.
func (f *Fetcher) Fetch(ctx context.Context, secretID string) (string, error) {
	if secretID == "" {
		return "", fmt.Errorf("secret id cannot be empty")
	}

	log.Debugf("retrieving secret %s", secretID)
	out, err := f.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretID,
	})
	if err != nil {
		if kind, ok := ErrorKind(err); ok {
			log.Errorf("secret %s: %s", secretID, kind)
		}
		return "", err
	}

	switch {
	case out.SecretString != nil:
		return *out.SecretString, nil
	case out.SecretBinary != nil:
		return string(out.SecretBinary), nil
	default:
		return "", ErrEmptySecret
	}
}
