package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3 struct {
	Client   *s3.Client
	Config   *aws.Config
	Endpoint string
}

// loadConfig resolves region and credentials. Static credentials are used
// only when both halves are given; otherwise the default chain applies.
func loadConfig(ctx context.Context, region, accessKey, secretKey string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	if accessKey != "" && secretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
		opts = append(opts, config.WithCredentialsProvider(creds))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// NewS3 builds an S3 client. An empty endpoint keeps the SDK's own
// endpoint resolution; a custom one switches to path-style addressing.
func NewS3(ctx context.Context, endpoint, region, accessKey, secretKey string) (*S3, error) {
	cfg, err := loadConfig(ctx, region, accessKey, secretKey)
	if err != nil {
		return nil, err
	}

	return &S3{
		Client: s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.Region = region
			if endpoint == "" {
				return
			}
			o.UsePathStyle = true // used for MinIO
			o.BaseEndpoint = aws.String(endpoint)

			if strings.HasPrefix(endpoint, "http://") {
				o.EndpointOptions.DisableHTTPS = true
				o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
				o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
			}
		}),
		Config:   &cfg,
		Endpoint: endpoint,
	}, nil
}
