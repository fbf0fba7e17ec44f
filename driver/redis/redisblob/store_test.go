package redisblob_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dogmatiq/setkit/blob"
	. "github.com/dogmatiq/setkit/driver/redis/redisblob"
	"github.com/dogmatiq/setkit/internal/x/xtesting"
	"github.com/redis/go-redis/v9"
)

func TestStore(t *testing.T) {
	blob.RunTests(
		t,
		setup(t),
	)
}

func BenchmarkStore(b *testing.B) {
	blob.RunBenchmarks(
		b,
		setup(b),
	)
}

// setup returns a store that confines the test's blobs to a unique key prefix
// which is deleted when the test ends.
func setup(t testing.TB) blob.Store {
	addr := os.Getenv("SETKIT_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:26379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("Redis server at %s is unavailable: %s", addr, err)
	}

	prefix := xtesting.UniqueName("test") + ":"

	t.Cleanup(func() {
		ctx := xtesting.ContextForCleanup(t)
		iter := client.Scan(ctx, 0, prefix+"*", 0).Iterator()

		for iter.Next(ctx) {
			if err := client.Del(ctx, iter.Val()).Err(); err != nil {
				t.Error(err)
			}
		}

		if err := iter.Err(); err != nil {
			t.Error(err)
		}

		if err := client.Close(); err != nil {
			t.Error(err)
		}
	})

	return blob.WithNamePrefix(
		&Store{Client: client},
		prefix,
	)
}
