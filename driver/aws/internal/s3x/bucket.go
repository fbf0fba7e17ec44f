package s3x

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dogmatiq/setkit/driver/aws/internal/awsx"
)

// CreateBucketIfNotExists creates the named bucket. It is not an error for the
// bucket to exist already.
func CreateBucketIfNotExists(
	ctx context.Context,
	client *s3.Client,
	bucket string,
	onRequest func(any) []func(*s3.Options),
) error {
	_, err := awsx.Do(
		ctx,
		client.CreateBucket,
		onRequest,
		&s3.CreateBucketInput{Bucket: aws.String(bucket)},
	)
	return IgnoreAlreadyExists(err)
}

// DeleteBucketIfExists removes every object in the named bucket, then the
// bucket itself. It is not an error for the bucket not to exist.
func DeleteBucketIfExists(
	ctx context.Context,
	client *s3.Client,
	bucket string,
	onRequest func(any) []func(*s3.Options),
) error {
	pages := s3.NewListObjectsV2Paginator(
		client,
		&s3.ListObjectsV2Input{Bucket: aws.String(bucket)},
	)

	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return IgnoreNotExists(err)
		}

		if len(page.Contents) == 0 {
			continue
		}

		var keys []types.ObjectIdentifier
		for _, obj := range page.Contents {
			keys = append(keys, types.ObjectIdentifier{Key: obj.Key})
		}

		if _, err := awsx.Do(
			ctx,
			client.DeleteObjects,
			onRequest,
			&s3.DeleteObjectsInput{
				Bucket: aws.String(bucket),
				Delete: &types.Delete{Objects: keys, Quiet: aws.Bool(true)},
			},
		); err != nil {
			return err
		}
	}

	_, err := awsx.Do(
		ctx,
		client.DeleteBucket,
		onRequest,
		&s3.DeleteBucketInput{Bucket: aws.String(bucket)},
	)
	return IgnoreNotExists(err)
}
