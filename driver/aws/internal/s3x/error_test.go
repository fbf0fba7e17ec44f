package s3x_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	. "github.com/dogmatiq/setkit/driver/aws/internal/s3x"
)

func TestIsNotExists(t *testing.T) {
	t.Parallel()

	cases := []struct {
		Desc string
		Err  error
		Want bool
	}{
		{"nil", nil, false},
		{"no such key", &types.NoSuchKey{}, true},
		{"no such bucket", &types.NoSuchBucket{}, true},
		{"not found", &types.NotFound{}, true},
		{"wrapped", fmt.Errorf("<context>: %w", &types.NoSuchKey{}), true},
		{"generic API error", &smithy.GenericAPIError{Code: "NoSuchKey"}, true},
		{"other API error", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
		{"other error", errors.New("<error>"), false},
	}

	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			t.Parallel()

			if got := IsNotExists(c.Err); got != c.Want {
				t.Fatalf("unexpected result: got %t, want %t", got, c.Want)
			}

			if got := IgnoreNotExists(c.Err) == nil; got != (c.Want || c.Err == nil) {
				t.Fatalf("unexpected result from IgnoreNotExists(): got %t", got)
			}
		})
	}
}

func TestIsAlreadyExists(t *testing.T) {
	t.Parallel()

	if !IsAlreadyExists(fmt.Errorf("<context>: %w", &types.BucketAlreadyOwnedByYou{})) {
		t.Fatal("expected BucketAlreadyOwnedByYou to be detected")
	}

	if !IsAlreadyExists(&types.BucketAlreadyExists{}) {
		t.Fatal("expected BucketAlreadyExists to be detected")
	}

	if IsAlreadyExists(errors.New("<error>")) {
		t.Fatal("did not expect an arbitrary error to be detected")
	}

	if err := IgnoreAlreadyExists(&types.BucketAlreadyExists{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
