package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config is the configuration for all commands.
type config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Pretty bool   `mapstructure:"pretty"`
	} `mapstructure:"log"`

	Store storeConfig `mapstructure:"store"`
}

// storeConfig is the configuration of the blob store used by the disk
// command.
type storeConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
	Prefix  string `mapstructure:"prefix"`
	Region  string `mapstructure:"region"`

	Redis struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"redis"`

	S3 struct {
		Bucket   string `mapstructure:"bucket"`
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"s3"`

	DynamoDB struct {
		Table    string `mapstructure:"table"`
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"dynamodb"`

	Postgres struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"postgres"`
}

// envPrefix is the prefix of the environment variables that override the
// configuration, for example SETDEMO_STORE_BACKEND.
const envPrefix = "SETDEMO"

// bindFlags adds the persistent flags to cmd and binds each of them to a
// configuration key.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()

	flags.String("config", "", "config file (YAML, JSON or TOML)")
	flags.String("log-level", "warn", "log level to use for diagnostics")
	flags.Bool("log-pretty", false, "whether to prettify the log output")
	flags.String("store-backend", "file", "blob store used by the disk command (file, memory, s3, dynamodb, postgres, redis, badger, pebble)")
	flags.String("store-dir", ".", "directory used by the file, badger and pebble backends")
	flags.String("store-prefix", "", "prefix added to every set name")
	flags.String("store-region", "us-east-1", "AWS region used by the s3 and dynamodb backends")
	flags.String("store-redis-addr", "localhost:6379", "address of the Redis server")
	flags.String("store-s3-bucket", "setkit", "S3 bucket that contains the sets")
	flags.String("store-s3-endpoint", "", "S3 endpoint URL, for S3-compatible servers")
	flags.String("store-dynamodb-table", "setkit", "DynamoDB table that contains the sets")
	flags.String("store-dynamodb-endpoint", "", "DynamoDB endpoint URL, for DynamoDB Local")
	flags.String("store-postgres-dsn", "", "PostgreSQL connection string")

	keys := map[string]string{
		"config":                  "config",
		"log.level":               "log-level",
		"log.pretty":              "log-pretty",
		"store.backend":           "store-backend",
		"store.dir":               "store-dir",
		"store.prefix":            "store-prefix",
		"store.region":            "store-region",
		"store.redis.addr":        "store-redis-addr",
		"store.s3.bucket":         "store-s3-bucket",
		"store.s3.endpoint":       "store-s3-endpoint",
		"store.dynamodb.table":    "store-dynamodb-table",
		"store.dynamodb.endpoint": "store-dynamodb-endpoint",
		"store.postgres.dsn":      "store-postgres-dsn",
	}

	for key, flag := range keys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// loadConfig reads the configuration from the optional config file, the
// environment and the command-line flags, in increasing order of precedence.
func loadConfig(v *viper.Viper) (config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}
