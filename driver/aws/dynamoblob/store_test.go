package dynamoblob_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dogmatiq/setkit/blob"
	. "github.com/dogmatiq/setkit/driver/aws/dynamoblob"
	"github.com/dogmatiq/setkit/driver/aws/internal/dynamox"
	"github.com/dogmatiq/setkit/internal/x/xtesting"
)

func TestStore(t *testing.T) {
	client, table := setup(t)
	blob.RunTests(
		t,
		NewStore(client, table),
	)
}

func BenchmarkStore(b *testing.B) {
	client, table := setup(b)
	blob.RunBenchmarks(
		b,
		NewStore(client, table),
	)
}

func setup(t testing.TB) (*dynamodb.Client, string) {
	client := dynamox.NewTestClient(t)
	table := xtesting.UniqueName("table")

	t.Cleanup(func() {
		if err := dynamox.DeleteTableIfExists(
			xtesting.ContextForCleanup(t),
			client,
			table,
			nil,
		); err != nil {
			t.Error(err)
		}
	})

	return client, table
}
