package blob

import (
	"errors"
	"fmt"
)

// NotFoundError is returned by [Store.Load] if the named blob does not exist.
type NotFoundError struct {
	// Name is the name of the blob that was requested.
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("blob %q does not exist", e.Name)
}

// IsNotFound returns true if err is caused by a [NotFoundError].
func IsNotFound(err error) bool {
	return errors.As(err, &NotFoundError{})
}

// IgnoreNotFound returns nil if err is caused by a [NotFoundError]. Otherwise
// it returns err unchanged.
func IgnoreNotFound(err error) error {
	if IsNotFound(err) {
		return nil
	}
	return err
}
