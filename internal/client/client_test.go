package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3_StaticCredentials(t *testing.T) {
	c, err := NewS3(context.Background(), "http://localhost:9000", "cn-north-1", "AK", "SK")
	require.NoError(t, err)

	creds, err := c.Config.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AK", creds.AccessKeyID)
	assert.Equal(t, "SK", creds.SecretAccessKey)
	assert.Equal(t, "cn-north-1", c.Config.Region)
	assert.Equal(t, "http://localhost:9000", c.Endpoint)

	opts := c.Client.Options()
	assert.True(t, opts.UsePathStyle)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *opts.BaseEndpoint)
}

func TestNewS3_DefaultEndpoint(t *testing.T) {
	c, err := NewS3(context.Background(), "", "cn-northwest-1", "", "")
	require.NoError(t, err)

	opts := c.Client.Options()
	assert.Nil(t, opts.BaseEndpoint)
	assert.False(t, opts.UsePathStyle)
	assert.Equal(t, "cn-northwest-1", opts.Region)
}

func TestNewSecretsManager(t *testing.T) {
	c, err := NewSecretsManager(context.Background(), "http://localhost:4566", "cn-north-1")
	require.NoError(t, err)

	opts := c.Client.Options()
	assert.Equal(t, "cn-north-1", opts.Region)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *opts.BaseEndpoint)
}
