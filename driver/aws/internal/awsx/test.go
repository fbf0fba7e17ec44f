package awsx

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// TestConfig returns an AWS configuration for tests that talk to a local
// emulator. Requests are signed with static credentials and never retried.
func TestConfig(t testing.TB, accessKey, secretKey string) aws.Config {
	cfg, err := config.LoadDefaultConfig(
		t.Context(),
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

// Getenv returns the value of the named environment variable, or def if it is
// empty.
func Getenv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

const pingTimeout = 2 * time.Second

// SkipUnless skips t if ping fails within a short time.
func SkipUnless(t testing.TB, service, endpoint string, ping func(context.Context) error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), pingTimeout)
	defer cancel()

	if err := ping(ctx); err != nil {
		t.Skipf("%s at %s is unavailable: %s", service, endpoint, err)
	}
}
