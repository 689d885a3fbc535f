package kv

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/AtRiskMedia/glowyn-go/pkg/config"
)

// Options selects and configures a backend.
type Options struct {
	Driver        string
	SQLitePath    string
	TursoURL      string
	TursoToken    string
	DSN           string
	DynamoDBTable string
	AWSRegion     string
	Pool          PoolConfig
}

// OptionsFromConfig reads backend settings from pkg/config.
func OptionsFromConfig() Options {
	return Options{
		Driver:        config.StorageDriver,
		SQLitePath:    config.SQLitePath,
		TursoURL:      config.TursoDatabaseURL,
		TursoToken:    config.TursoAuthToken,
		DSN:           config.DatabaseURL,
		DynamoDBTable: config.DynamoDBTable,
		AWSRegion:     config.AWSRegion,
		Pool: PoolConfig{
			MaxOpenConns:    config.DBMaxOpenConns,
			MaxIdleConns:    config.DBMaxIdleConns,
			ConnMaxLifetime: time.Duration(config.DBConnMaxLifetimeMinutes) * time.Minute,
		},
	}
}

// Open returns the backend named by opts.Driver. The default sqlite3 driver
// is promoted to Turso when both Turso settings are present.
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Driver {
	case "", "sqlite3", "sqlite":
		if opts.TursoURL != "" && opts.TursoToken != "" {
			return OpenTurso(ctx, opts.TursoURL, opts.TursoToken, opts.Pool)
		}
		return OpenSQLite(ctx, opts.SQLitePath, opts.Pool)
	case "libsql", "turso":
		if opts.TursoURL == "" || opts.TursoToken == "" {
			return nil, fmt.Errorf("libsql driver requires TURSO_DATABASE_URL and TURSO_AUTH_TOKEN")
		}
		return OpenTurso(ctx, opts.TursoURL, opts.TursoToken, opts.Pool)
	case "mysql", "pgx", "postgres":
		if opts.DSN == "" {
			return nil, fmt.Errorf("%s driver requires DATABASE_URL", opts.Driver)
		}
		dialect, _ := DialectFor(opts.Driver)
		return OpenSQL(ctx, dialect, opts.DSN, opts.Pool)
	case "dynamodb":
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return NewDynamoStorage(dynamodb.NewFromConfig(cfg), opts.DynamoDBTable), nil
	case "memory":
		return NewMemoryStorage(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
}
