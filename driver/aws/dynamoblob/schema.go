package dynamoblob

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dogmatiq/setkit/driver/aws/internal/dynamox"
)

var (
	// nameAttr is the name of the attribute that stores the blob name on each
	// item. It is the table's primary key.
	nameAttr = "N"

	// dataAttr is the name of the attribute that stores the blob content on
	// each item.
	dataAttr = "D"
)

// createTable creates the DynamoDB table if it does not already exist.
func (s *store) createTable(ctx context.Context) error {
	return dynamox.CreateTableIfNotExists(
		ctx,
		s.Client,
		s.Table,
		s.OnRequest,
		dynamox.KeyAttr{
			Name:    &nameAttr,
			Type:    types.ScalarAttributeTypeS,
			KeyType: types.KeyTypeHash,
		},
	)
}
