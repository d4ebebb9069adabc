package client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type SecretsManager struct {
	Client   *secretsmanager.Client
	Config   *aws.Config
	Endpoint string
}

// NewSecretsManager builds a Secrets Manager client for region using the
// default credential chain. A non-empty endpoint overrides resolution, e.g.
// for LocalStack.
func NewSecretsManager(ctx context.Context, endpoint, region string) (*SecretsManager, error) {
	cfg, err := loadConfig(ctx, region, "", "")
	if err != nil {
		return nil, err
	}

	return &SecretsManager{
		Client: secretsmanager.NewFromConfig(cfg, func(o *secretsmanager.Options) {
			o.Region = region
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
			}
		}),
		Config:   &cfg,
		Endpoint: endpoint,
	}, nil
}
