package secrets

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSecretsAPI implements GetSecretValueAPI for testing
type mockSecretsAPI struct {
	getSecretValueFunc func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	calls              []string
}

func (m *mockSecretsAPI) GetSecretValue(
	ctx context.Context,
	params *secretsmanager.GetSecretValueInput,
	optFns ...func(*secretsmanager.Options),
) (*secretsmanager.GetSecretValueOutput, error) {
	m.calls = append(m.calls, aws.ToString(params.SecretId))
	if m.getSecretValueFunc != nil {
		return m.getSecretValueFunc(ctx, params, optFns...)
	}
	return nil, fmt.Errorf("GetSecretValue not implemented")
}

func returning(out *secretsmanager.GetSecretValueOutput, err error) *mockSecretsAPI {
	return &mockSecretsAPI{
		getSecretValueFunc: func(context.Context, *secretsmanager.GetSecretValueInput, ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			return out, err
		},
	}
}

func TestFetch_String(t *testing.T) {
	payload := `{"src_access_key_id":"A"}`
	api := returning(&secretsmanager.GetSecretValueOutput{SecretString: aws.String(payload)}, nil)

	got, err := NewFetcher(api).Fetch(context.Background(), "replication/job-1")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, []string{"replication/job-1"}, api.calls)
}

func TestFetch_Binary(t *testing.T) {
	raw := []byte("{\"k\":\"v\"}\n\x00tail")
	api := returning(&secretsmanager.GetSecretValueOutput{SecretBinary: raw}, nil)

	got, err := NewFetcher(api).Fetch(context.Background(), "bin")
	require.NoError(t, err)
	assert.Equal(t, string(raw), got)
}

func TestFetch_StringPreferredOverBinary(t *testing.T) {
	api := returning(&secretsmanager.GetSecretValueOutput{
		SecretString: aws.String("text"),
		SecretBinary: []byte("binary"),
	}, nil)

	got, err := NewFetcher(api).Fetch(context.Background(), "both")
	require.NoError(t, err)
	assert.Equal(t, "text", got)
}

func TestFetch_Empty(t *testing.T) {
	api := returning(&secretsmanager.GetSecretValueOutput{}, nil)

	_, err := NewFetcher(api).Fetch(context.Background(), "empty")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestFetch_EmptyID(t *testing.T) {
	api := &mockSecretsAPI{}

	_, err := NewFetcher(api).Fetch(context.Background(), "")
	assert.Error(t, err)
	assert.Empty(t, api.calls)
}

func TestFetch_ProviderErrorsSurfaceUnchanged(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"decryption failure", &types.DecryptionFailure{Message: aws.String("kms")}, KindDecryptionFailure},
		{"internal service error", &types.InternalServiceError{Message: aws.String("boom")}, KindInternalService},
		{"invalid parameter", &types.InvalidParameterException{Message: aws.String("bad")}, KindInvalidParameter},
		{"invalid request", &types.InvalidRequestException{Message: aws.String("state")}, KindInvalidRequest},
		{"resource not found", &types.ResourceNotFoundException{Message: aws.String("gone")}, KindResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFetcher(returning(nil, tt.err)).Fetch(context.Background(), "job")

			require.Error(t, err)
			assert.Same(t, tt.err, err)

			kind, ok := ErrorKind(err)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestFetch_ResourceNotFoundMatchesType(t *testing.T) {
	want := &types.ResourceNotFoundException{Message: aws.String("gone")}
	_, err := NewFetcher(returning(nil, want)).Fetch(context.Background(), "job")

	var notFound *types.ResourceNotFoundException
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "gone", aws.ToString(notFound.Message))
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   Kind
		wantOK bool
	}{
		{
			name:   "legacy exception code",
			err:    &smithy.GenericAPIError{Code: "DecryptionFailureException"},
			want:   KindDecryptionFailure,
			wantOK: true,
		},
		{
			name:   "wrapped",
			err:    fmt.Errorf("fetch: %w", &types.InvalidRequestException{}),
			want:   KindInvalidRequest,
			wantOK: true,
		},
		{
			name:   "other api error",
			err:    &smithy.GenericAPIError{Code: "AccessDeniedException"},
			wantOK: false,
		},
		{
			name:   "plain error",
			err:    errors.New("dial tcp: timeout"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := ErrorKind(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, kind)
		})
	}
}
