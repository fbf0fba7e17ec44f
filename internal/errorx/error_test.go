package errorx_test

import (
	"errors"
	"testing"

	"github.com/dogmatiq/setkit/blob"
	. "github.com/dogmatiq/setkit/internal/errorx"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("it adds context to the error", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("<cause>")
		err := cause
		Wrap(&err, "unable to load %q", "<name>")

		if got, want := err.Error(), `unable to load "<name>": <cause>`; got != want {
			t.Fatalf("unexpected message: got %q, want %q", got, want)
		}

		if !errors.Is(err, cause) {
			t.Fatal("expected the wrapped error to match the cause")
		}
	})

	t.Run("it does not wrap a nil error", func(t *testing.T) {
		t.Parallel()

		var err error
		Wrap(&err, "unable to load")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("it does not wrap a blob.NotFoundError", func(t *testing.T) {
		t.Parallel()

		want := blob.NotFoundError{Name: "<name>"}
		var err error = want
		Wrap(&err, "unable to load")

		if err != want {
			t.Fatalf("unexpected error: got %#v, want %#v", err, want)
		}
	})
}
