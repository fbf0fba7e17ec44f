package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/pebble"
	"github.com/dgraph-io/badger/v4"
	"github.com/dogmatiq/setkit/blob"
	"github.com/dogmatiq/setkit/driver/aws/dynamoblob"
	"github.com/dogmatiq/setkit/driver/aws/s3blob"
	"github.com/dogmatiq/setkit/driver/badger/badgerblob"
	"github.com/dogmatiq/setkit/driver/file/fileblob"
	"github.com/dogmatiq/setkit/driver/memory/memoryblob"
	"github.com/dogmatiq/setkit/driver/pebble/pebbleblob"
	"github.com/dogmatiq/setkit/driver/redis/redisblob"
	"github.com/dogmatiq/setkit/driver/sql/postgres/pgblob"
	_ "github.com/jackc/pgx/v4/stdlib" // pgx driver for database/sql
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
)

// openStore returns the blob store described by cfg.
//
// The returned function releases any resources held by the store.
func openStore(ctx context.Context, cfg storeConfig) (blob.Store, func() error, error) {
	store, closer, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open %q store: %w", cfg.Backend, err)
	}

	if cfg.Prefix != "" {
		store = blob.WithNamePrefix(store, cfg.Prefix)
	}

	return store, closer, nil
}

func openBackend(ctx context.Context, cfg storeConfig) (blob.Store, func() error, error) {
	nop := func() error { return nil }

	switch cfg.Backend {
	case "file":
		return &fileblob.Store{FS: afero.NewOsFs(), Dir: cfg.Dir}, nop, nil

	case "memory":
		return &memoryblob.Store{}, nop, nil

	case "s3":
		awscfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, nil, err
		}

		client := s3.NewFromConfig(
			awscfg,
			func(opts *s3.Options) {
				if cfg.S3.Endpoint != "" {
					opts.BaseEndpoint = aws.String(cfg.S3.Endpoint)
					opts.UsePathStyle = true
				}
			},
		)

		return s3blob.NewStore(client, cfg.S3.Bucket), nop, nil

	case "dynamodb":
		awscfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, nil, err
		}

		client := dynamodb.NewFromConfig(
			awscfg,
			func(opts *dynamodb.Options) {
				if cfg.DynamoDB.Endpoint != "" {
					opts.BaseEndpoint = aws.String(cfg.DynamoDB.Endpoint)
				}
			},
		)

		return dynamoblob.NewStore(client, cfg.DynamoDB.Table), nop, nil

	case "postgres":
		db, err := sql.Open("pgx", cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}

		if err := pgblob.CreateSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}

		return &pgblob.Store{DB: db}, db.Close, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})

		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, err
		}

		return &redisblob.Store{Client: client}, client.Close, nil

	case "badger":
		db, err := badger.Open(badger.DefaultOptions(cfg.Dir).WithLogger(nil))
		if err != nil {
			return nil, nil, err
		}

		return &badgerblob.Store{DB: db}, db.Close, nil

	case "pebble":
		db, err := pebble.Open(cfg.Dir, &pebble.Options{})
		if err != nil {
			return nil, nil, err
		}

		return &pebbleblob.Store{DB: db}, db.Close, nil

	default:
		return nil, nil, errors.New("unrecognized backend")
	}
}
