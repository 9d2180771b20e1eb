// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/circuitshop/circuitshop/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the single shared MongoDB connection.
//
// Connection problems do not abort startup: the app comes up with nil deps,
// store-dependent endpoints fail uniformly, and GET /test reports what is
// missing. Failing fast here would take the diagnostics endpoint down with
// the store.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if appCfg.MongoURI == "" {
		logger.Warn("mongo_uri not set; store operations will fail until configured")
		return DBDeps{}, nil
	}

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed; continuing without store", zap.Error(err))
		return DBDeps{}, nil
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("MongoDB ping failed; continuing without store", zap.Error(err))
		_ = client.Disconnect(ctx)
		return DBDeps{}, nil
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema makes sure the storefront collections exist and carry
// JSON-Schema validators where the server supports them. Skipped entirely in
// degraded (no-store) mode.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	return validators.EnsureAll(ctx, deps.MongoDatabase)
}
