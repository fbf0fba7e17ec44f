package s3blob_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dogmatiq/setkit/blob"
	"github.com/dogmatiq/setkit/driver/aws/internal/s3x"
	. "github.com/dogmatiq/setkit/driver/aws/s3blob"
	"github.com/dogmatiq/setkit/internal/x/xtesting"
)

func TestStore(t *testing.T) {
	client, bucket := setup(t)
	blob.RunTests(
		t,
		NewStore(client, bucket),
	)
}

func TestStore_requestHook(t *testing.T) {
	client, bucket := setup(t)

	var keys []string
	store := NewStore(
		client,
		bucket,
		WithRequestHook(func(in any) []func(*s3.Options) {
			if in, ok := in.(*s3.PutObjectInput); ok {
				keys = append(keys, *in.Key)
			}
			return nil
		}),
	)

	if err := store.Save(t.Context(), "sets/a.json", []byte(`[1]`)); err != nil {
		t.Fatal(err)
	}

	if len(keys) != 1 || keys[0] != "sets/a.json" {
		t.Fatalf("unexpected object keys: got %v, want [sets/a.json]", keys)
	}
}

func BenchmarkStore(b *testing.B) {
	client, bucket := setup(b)
	blob.RunBenchmarks(
		b,
		NewStore(client, bucket),
	)
}

func setup(t testing.TB) (*s3.Client, string) {
	client := s3x.NewTestClient(t)
	bucket := xtesting.UniqueName("bucket")

	t.Cleanup(func() {
		if err := s3x.DeleteBucketIfExists(
			xtesting.ContextForCleanup(t),
			client,
			bucket,
			nil,
		); err != nil {
			t.Error(err)
		}
	})

	return client, bucket
}
