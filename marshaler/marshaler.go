// Package marshaler converts values to and from their persisted binary form.
package marshaler

// Marshaler converts values of type T to and from bytes.
type Marshaler[T any] interface {
	Marshal(T) ([]byte, error)
	Unmarshal([]byte) (T, error)
}
