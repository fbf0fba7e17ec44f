package s3x

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dogmatiq/setkit/driver/aws/internal/awsx"
)

// NewTestClient returns an S3 client connected to the MinIO server named by
// SETKIT_TEST_MINIO_ENDPOINT. t is skipped if the server is unreachable.
func NewTestClient(t testing.TB) *s3.Client {
	endpoint := awsx.Getenv("SETKIT_TEST_MINIO_ENDPOINT", "http://localhost:29000")

	cfg := awsx.TestConfig(
		t,
		awsx.Getenv("SETKIT_TEST_MINIO_ACCESS_KEY", "minio"),
		awsx.Getenv("SETKIT_TEST_MINIO_SECRET_KEY", "password"),
	)

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	awsx.SkipUnless(t, "S3", endpoint, func(ctx context.Context) error {
		_, err := client.ListBuckets(ctx, &s3.ListBucketsInput{})
		return err
	})

	return client
}
