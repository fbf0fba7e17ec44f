package marshaler

import "encoding/json"

// NewJSONArray returns a [Marshaler] that represents a slice of T as a JSON
// array.
//
// A nil slice is marshaled as [] and the JSON document null is unmarshaled as
// an empty, non-nil slice. Any other document that is not an array of T is an
// error.
func NewJSONArray[T any]() Marshaler[[]T] {
	return jsonArray[T]{}
}

type jsonArray[T any] struct{}

func (jsonArray[T]) Marshal(v []T) ([]byte, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v)
}

func (jsonArray[T]) Unmarshal(data []byte) ([]T, error) {
	v := []T{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return []T{}, nil
	}
	return v, nil
}
