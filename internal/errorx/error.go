package errorx

import (
	"fmt"

	"github.com/dogmatiq/setkit/blob"
)

// Wrap adds additional context to an error.
//
// [blob.NotFoundError] values are left unwrapped so that they can be
// compared directly by callers.
func Wrap(err *error, format string, args ...any) {
	if err == nil {
		panic("err must not be nil")
	}

	if *err == nil {
		return
	}

	if blob.IsNotFound(*err) {
		return
	}

	*err = fmt.Errorf(format+": %w", append(args, *err)...)
}
