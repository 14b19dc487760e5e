package main

import (
	"context"

	"storefront/config"
	"storefront/database"
	"storefront/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// newSnapshotStore picks the configured snapshot backend. Returns nil when
// none is configured, in which case the store runs from seed data only.
func newSnapshotStore(cfg config.Config, redisClient *redis.Client) repository.SnapshotStore {
	switch cfg.SnapshotBackend {
	case "redis":
		zap.L().Info("Using Redis snapshot backend")
		return repository.NewRedisSnapshotStore(redisClient)
	case "mongo":
		db, err := database.NewMongoDatabase(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		zap.L().Info("Using MongoDB snapshot backend")
		return repository.NewMongoSnapshotStore(db)
	case "dynamo":
		client, err := database.NewDynamoClient(context.Background(), cfg.AWSRegion, cfg.AWSEndpoint)
		if err != nil {
			zap.L().Fatal("Failed to build DynamoDB client", zap.Error(err))
		}
		zap.L().Info("Using DynamoDB snapshot backend", zap.String("table", cfg.DynamoTable))
		return repository.NewDynamoSnapshotStore(client, cfg.DynamoTable)
	case "":
		zap.L().Info("No snapshot backend configured, state is in-memory only")
		return nil
	default:
		zap.L().Fatal("Unknown snapshot backend", zap.String("backend", cfg.SnapshotBackend))
		return nil
	}
}
