package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoSnapshotStore keeps snapshot records in a table with primary key
// `record_id` (string).
type DynamoSnapshotStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoSnapshotStore(client *dynamodb.Client, table string) *DynamoSnapshotStore {
	return &DynamoSnapshotStore{client: client, table: table}
}

type ddbSnapshot struct {
	RecordID  string `dynamodbav:"record_id"`
	Data      []byte `dynamodbav:"data"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

func (s *DynamoSnapshotStore) Read(ctx context.Context, record string) ([]byte, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"record_id": record})
	if err != nil {
		return nil, fmt.Errorf("marshal key: %w", err)
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{TableName: &s.table, Key: key})
	if err != nil {
		return nil, fmt.Errorf("dynamodb GetItem failed: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNoSnapshot
	}
	var doc ddbSnapshot
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	return doc.Data, nil
}

func (s *DynamoSnapshotStore) Write(ctx context.Context, record string, data []byte) error {
	item, err := attributevalue.MarshalMap(ddbSnapshot{
		RecordID:  record,
		Data:      data,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: &s.table, Item: item})
	if err != nil {
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	return nil
}
