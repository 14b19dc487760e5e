package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSnapshotStore keeps snapshot records in one collection, one document
// per record with `_id` = record name and the JSON payload in `data`.
type MongoSnapshotStore struct {
	collection *mongo.Collection
}

func NewMongoSnapshotStore(db *mongo.Database) *MongoSnapshotStore {
	return &MongoSnapshotStore{collection: db.Collection("snapshots")}
}

type snapshotDoc struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

func (s *MongoSnapshotStore) Read(ctx context.Context, record string) ([]byte, error) {
	var doc snapshotDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": record}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("mongo FindOne failed: %w", err)
	}
	return doc.Data, nil
}

func (s *MongoSnapshotStore) Write(ctx context.Context, record string, data []byte) error {
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": record},
		snapshotDoc{ID: record, Data: data},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo ReplaceOne failed: %w", err)
	}
	return nil
}
