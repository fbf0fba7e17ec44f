// Package dynamoblob provides an implementation of [blob.Store] that persists
// to a DynamoDB table.
package dynamoblob

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dogmatiq/setkit/blob"
	"github.com/dogmatiq/setkit/driver/aws/internal/awsx"
	"github.com/dogmatiq/setkit/driver/aws/internal/dynamox"
	"github.com/dogmatiq/setkit/internal/errorx"
	"github.com/dogmatiq/setkit/internal/syncx"
)

// store is an implementation of [blob.Store] that stores each blob as a
// single DynamoDB item.
type store struct {
	Client    *dynamodb.Client
	Table     string
	OnRequest func(any) []func(*dynamodb.Options)

	createTableOnce syncx.SucceedOnce
}

// NewStore returns a new [blob.Store] that uses the given DynamoDB client to
// store blobs in the given table.
//
// The table is created the first time the store is used, if it does not
// already exist.
func NewStore(
	client *dynamodb.Client,
	table string,
	options ...Option,
) blob.Store {
	if table == "" {
		panic("table name must not be empty")
	}

	s := &store{
		Client: client,
		Table:  table,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// Option is a functional option that changes the behavior of [NewStore].
type Option func(*store)

// WithRequestHook is an [Option] that configures fn as a pre-request hook.
//
// Before each DynamoDB API request, fn is passed a pointer to the input struct,
// e.g. [dynamodb.GetItemInput], which it may modify in-place. It may be called
// with any DynamoDB request type. The types of requests used may change in any
// version without notice.
//
// Any functions returned by fn will be applied to the request's options before
// the request is sent.
func WithRequestHook(fn func(any) []func(*dynamodb.Options)) Option {
	return func(s *store) {
		s.OnRequest = fn
	}
}

func (s *store) Load(ctx context.Context, name string) (_ []byte, err error) {
	defer errorx.Wrap(&err, "unable to load blob %q from the %q table", name, s.Table)

	if err := s.createTableOnce.Do(ctx, s.createTable); err != nil {
		return nil, err
	}

	out, err := awsx.Do(
		ctx,
		s.Client.GetItem,
		s.OnRequest,
		&dynamodb.GetItemInput{
			TableName: &s.Table,
			Key: map[string]types.AttributeValue{
				nameAttr: &types.AttributeValueMemberS{Value: name},
			},
			ConsistentRead: aws.Bool(true),
		},
	)
	if err != nil {
		return nil, err
	}

	if out.Item == nil {
		return nil, blob.NotFoundError{Name: name}
	}

	data, err := dynamox.AttrAs[*types.AttributeValueMemberB](out.Item, dataAttr)
	if err != nil {
		return nil, err
	}

	return data.Value, nil
}

func (s *store) Save(ctx context.Context, name string, data []byte) (err error) {
	defer errorx.Wrap(&err, "unable to save blob %q to the %q table", name, s.Table)

	if err := s.createTableOnce.Do(ctx, s.createTable); err != nil {
		return err
	}

	if data == nil {
		data = []byte{}
	}

	_, err = awsx.Do(
		ctx,
		s.Client.PutItem,
		s.OnRequest,
		&dynamodb.PutItemInput{
			TableName: &s.Table,
			Item: map[string]types.AttributeValue{
				nameAttr: &types.AttributeValueMemberS{Value: name},
				dataAttr: &types.AttributeValueMemberB{Value: data},
			},
		},
	)

	return err
}
