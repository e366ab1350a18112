package repository

import (
	"context"
	"fmt"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"

	"github.com/sindri-dev/secrets/internal/errors"
	secretsDomain "github.com/sindri-dev/secrets/internal/secrets/domain"
)

// classify maps S3 API errors onto the secret error taxonomy.
func classify(err error, operation, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: s3 %s %s: %v", secretsDomain.ErrTimeout, operation, key, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket", "NoSuchVersion":
			return fmt.Errorf("%w: s3 %s %s: %s", secretsDomain.ErrSecretNotFound, operation, key, apiErr.ErrorCode())
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken", "Forbidden":
			return fmt.Errorf("%w: s3 %s %s: %s", secretsDomain.ErrAuthentication, operation, key, apiErr.ErrorCode())
		}
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
		case http.StatusNotFound:
			return fmt.Errorf("%w: s3 %s %s", secretsDomain.ErrSecretNotFound, operation, key)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: s3 %s %s", secretsDomain.ErrAuthentication, operation, key)
		}
	}

	return fmt.Errorf("%w: s3 %s %s: %v", secretsDomain.ErrUnavailable, operation, key, err)
}
