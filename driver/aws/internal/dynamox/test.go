package dynamox

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dogmatiq/setkit/driver/aws/internal/awsx"
)

// NewTestClient returns a DynamoDB client connected to the DynamoDB Local
// server named by SETKIT_TEST_DYNAMODB_ENDPOINT. t is skipped if the server is
// unreachable.
func NewTestClient(t testing.TB) *dynamodb.Client {
	endpoint := awsx.Getenv("SETKIT_TEST_DYNAMODB_ENDPOINT", "http://localhost:28000")

	client := dynamodb.NewFromConfig(
		awsx.TestConfig(t, "id", "secret"),
		func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		},
	)

	awsx.SkipUnless(t, "DynamoDB", endpoint, func(ctx context.Context) error {
		_, err := client.ListTables(ctx, &dynamodb.ListTablesInput{})
		return err
	})

	return client
}
