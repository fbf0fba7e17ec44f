package dynamox

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AttrAs returns the attribute of item with the given name, which must be of
// type T.
func AttrAs[T types.AttributeValue](item map[string]types.AttributeValue, name string) (T, error) {
	var zero T

	switch v := item[name].(type) {
	case nil:
		return zero, fmt.Errorf("malformed item: no %q attribute", name)
	case T:
		return v, nil
	default:
		return zero, fmt.Errorf("malformed item: %q attribute is %T, want %T", name, v, zero)
	}
}
