package retail_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/retail-samples/pkg/retail"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		err              error
		permissionDenied bool
		notFound         bool
		alreadyExists    bool
		bucketNotEmpty   bool
	}{
		{name: "nil"},
		{name: "plain error", err: errors.New("boom")},
		{name: "grpc permission denied", err: status.Error(codes.PermissionDenied, "denied"), permissionDenied: true},
		{
			name:             "wrapped grpc permission denied",
			err:              fmt.Errorf("delete: %w", status.Error(codes.PermissionDenied, "denied")),
			permissionDenied: true,
		},
		{name: "http forbidden", err: &googleapi.Error{Code: http.StatusForbidden}, permissionDenied: true},
		{name: "grpc not found", err: status.Error(codes.NotFound, "missing"), notFound: true},
		{name: "http not found", err: &googleapi.Error{Code: http.StatusNotFound}, notFound: true},
		{name: "bucket sentinel", err: fmt.Errorf("x: %w", retail.ErrBucketNotFound), notFound: true},
		{name: "product sentinel", err: retail.ErrProductNotFound, notFound: true},
		{name: "grpc already exists", err: status.Error(codes.AlreadyExists, "exists"), alreadyExists: true},
		{name: "http conflict", err: fmt.Errorf("delete: %w", &googleapi.Error{Code: http.StatusConflict}), bucketNotEmpty: true},
		{name: "grpc failed precondition", err: status.Error(codes.FailedPrecondition, "not empty"), bucketNotEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.permissionDenied, retail.IsPermissionDenied(tt.err))
			assert.Equal(t, tt.notFound, retail.IsNotFound(tt.err))
			assert.Equal(t, tt.alreadyExists, retail.IsAlreadyExists(tt.err))
			assert.Equal(t, tt.bucketNotEmpty, retail.IsBucketNotEmpty(tt.err))
		})
	}
}
