package dynamox

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dogmatiq/setkit/driver/aws/internal/awsx"
)

// tableWaitDuration is the maximum time to wait for a newly created table to
// become active.
const tableWaitDuration = 2 * time.Minute

// KeyAttr describes an attribute that forms part of a table's primary key.
type KeyAttr struct {
	Name    *string
	Type    types.ScalarAttributeType
	KeyType types.KeyType
}

// CreateTableIfNotExists creates a DynamoDB table if it does not already
// exist, then waits for it to become active.
func CreateTableIfNotExists(
	ctx context.Context,
	client *dynamodb.Client,
	table string,
	onRequest func(any) []func(*dynamodb.Options),
	keys ...KeyAttr,
) error {
	in := &dynamodb.CreateTableInput{
		TableName:   &table,
		BillingMode: types.BillingModePayPerRequest,
	}

	for _, k := range keys {
		in.AttributeDefinitions = append(
			in.AttributeDefinitions,
			types.AttributeDefinition{
				AttributeName: k.Name,
				AttributeType: k.Type,
			},
		)

		in.KeySchema = append(
			in.KeySchema,
			types.KeySchemaElement{
				AttributeName: k.Name,
				KeyType:       k.KeyType,
			},
		)
	}

	if _, err := awsx.Do(ctx, client.CreateTable, onRequest, in); err != nil {
		if !errors.As(err, new(*types.ResourceInUseException)) {
			return err
		}
	}

	return dynamodb.
		NewTableExistsWaiter(client).
		Wait(
			ctx,
			&dynamodb.DescribeTableInput{TableName: &table},
			tableWaitDuration,
		)
}

// DeleteTableIfExists deletes a DynamoDB table if it exists.
func DeleteTableIfExists(
	ctx context.Context,
	client *dynamodb.Client,
	table string,
	onRequest func(any) []func(*dynamodb.Options),
) error {
	if _, err := awsx.Do(
		ctx,
		client.DeleteTable,
		onRequest,
		&dynamodb.DeleteTableInput{
			TableName: &table,
		},
	); err != nil {
		if !errors.As(err, new(*types.ResourceNotFoundException)) {
			return err
		}
	}

	return nil
}
