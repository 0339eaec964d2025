package retail

import (
	"errors"
	"net/http"

	"github.com/fivetwenty-io/retail-samples/internal/constants"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Common static errors that can be wrapped with context.
var (
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrUnexpectedResponse = constants.ErrUnexpectedResponse
)

// IsPermissionDenied reports whether err is a permission-denied failure.
// The Retail API answers PermissionDenied when deleting a product that no
// longer exists, so callers treat it as already deleted.
func IsPermissionDenied(err error) bool {
	if err == nil {
		return false
	}

	if status.Code(err) == codes.PermissionDenied {
		return true
	}

	return hasHTTPCode(err, http.StatusForbidden)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrBucketNotFound) || errors.Is(err, ErrProductNotFound) {
		return true
	}

	if status.Code(err) == codes.NotFound {
		return true
	}

	return hasHTTPCode(err, http.StatusNotFound)
}

// IsAlreadyExists checks if a create failed because the resource exists.
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}

	return status.Code(err) == codes.AlreadyExists
}

// IsBucketNotEmpty checks if a bucket deletion failed because the bucket
// still holds objects.
func IsBucketNotEmpty(err error) bool {
	if err == nil {
		return false
	}

	if hasHTTPCode(err, http.StatusConflict) {
		return true
	}

	return status.Code(err) == codes.FailedPrecondition
}

func hasHTTPCode(err error, code int) bool {
	apiErr := &googleapi.Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	return false
}
