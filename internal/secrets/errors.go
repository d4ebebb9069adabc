package secrets

import (
	"errors"

	"github.com/aws/smithy-go"
)

// Kind names one of the GetSecretValue failures the job treats as fatal.
type Kind string

const (
	KindDecryptionFailure Kind = "DecryptionFailure"
	KindInternalService   Kind = "InternalServiceError"
	KindInvalidParameter  Kind = "InvalidParameterException"
	KindInvalidRequest    Kind = "InvalidRequestException"
	KindResourceNotFound  Kind = "ResourceNotFoundException"
)

// error codes as they appear on the wire and in older SDK documentation
var kindsByCode = map[string]Kind{
	"DecryptionFailure":             KindDecryptionFailure,
	"DecryptionFailureException":    KindDecryptionFailure,
	"InternalServiceError":          KindInternalService,
	"InternalServiceErrorException": KindInternalService,
	"InvalidParameterException":     KindInvalidParameter,
	"InvalidRequestException":       KindInvalidRequest,
	"ResourceNotFoundException":     KindResourceNotFound,
}

// ErrorKind reports which provider failure err carries, if any.
func ErrorKind(err error) (Kind, bool) {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return "", false
	}
	kind, ok := kindsByCode[apiErr.ErrorCode()]
	return kind, ok
}
