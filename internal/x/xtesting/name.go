package xtesting

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// UniqueName returns a name with the given prefix that is unique across
// processes, such as the name of an S3 bucket or DynamoDB table created by a
// test.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

var counters sync.Map // map[string]*atomic.Uint64

// SequentialName returns a name with the given prefix that is unique within
// the current process.
//
// The names are easier to read than those produced by [UniqueName] and are
// suitable for stores that are discarded when the test process exits.
func SequentialName(prefix string) string {
	v, ok := counters.Load(prefix)
	if !ok {
		var counter atomic.Uint64
		v, _ = counters.LoadOrStore(prefix, &counter)
	}

	counter := v.(*atomic.Uint64)
	return fmt.Sprintf("%s-%d", prefix, counter.Add(1))
}
