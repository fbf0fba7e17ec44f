// Package s3blob provides an implementation of [blob.Store] that persists to
// an S3 bucket.
package s3blob

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dogmatiq/setkit/blob"
	"github.com/dogmatiq/setkit/driver/aws/internal/awsx"
	"github.com/dogmatiq/setkit/driver/aws/internal/s3x"
	"github.com/dogmatiq/setkit/internal/errorx"
	"github.com/dogmatiq/setkit/internal/syncx"
)

// store is an implementation of [blob.Store] that stores each blob as an S3
// object, keyed by the blob's name.
type store struct {
	Client    *s3.Client
	Bucket    string
	OnRequest func(any) []func(*s3.Options)

	createBucketOnce syncx.SucceedOnce
}

// NewStore returns a new [blob.Store] that uses the given S3 client to store
// blobs in the given bucket.
//
// The bucket is created the first time the store is used, if it does not
// already exist.
func NewStore(
	client *s3.Client,
	bucket string,
	options ...Option,
) blob.Store {
	if bucket == "" {
		panic("bucket name must not be empty")
	}

	s := &store{
		Client: client,
		Bucket: bucket,
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
// Before each S3 API request, fn is passed a pointer to the input struct, e.g.
// [s3.GetObjectInput], which it may modify in-place. It may be called with any
// S3 request type. The types of requests used may change in any version without
// notice.
//
// Any functions returned by fn will be applied to the request's options before
// the request is sent.
func WithRequestHook(fn func(any) []func(*s3.Options)) Option {
	return func(s *store) {
		s.OnRequest = fn
	}
}

func (s *store) Load(ctx context.Context, name string) (_ []byte, err error) {
	defer errorx.Wrap(&err, "unable to load blob %q from the %q bucket", name, s.Bucket)

	if err := s.createBucketOnce.Do(ctx, s.createBucket); err != nil {
		return nil, err
	}

	out, err := awsx.Do(
		ctx,
		s.Client.GetObject,
		s.OnRequest,
		&s3.GetObjectInput{
			Bucket: &s.Bucket,
			Key:    &name,
		},
	)
	if s3x.IsNotExists(err) {
		return nil, blob.NotFoundError{Name: name}
	}
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (s *store) Save(ctx context.Context, name string, data []byte) (err error) {
	defer errorx.Wrap(&err, "unable to save blob %q to the %q bucket", name, s.Bucket)

	if err := s.createBucketOnce.Do(ctx, s.createBucket); err != nil {
		return err
	}

	_, err = awsx.Do(
		ctx,
		s.Client.PutObject,
		s.OnRequest,
		&s3.PutObjectInput{
			Bucket:        &s.Bucket,
			Key:           &name,
			Body:          bytes.NewReader(data),
			ContentLength: aws.Int64(int64(len(data))),
		},
	)

	return err
}

func (s *store) createBucket(ctx context.Context) error {
	return s3x.CreateBucketIfNotExists(
		ctx,
		s.Client,
		s.Bucket,
		s.OnRequest,
	)
}
