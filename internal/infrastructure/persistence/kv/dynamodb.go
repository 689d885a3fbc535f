package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client the backend calls.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type kvItem struct {
	Key       string `dynamodbav:"storeKey"`
	Value     string `dynamodbav:"storeValue"`
	UpdatedAt int64  `dynamodbav:"updatedAt"`
}

// DynamoStorage keeps one item per key in a table whose partition key is storeKey.
type DynamoStorage struct {
	client    DynamoAPI
	tableName string
}

func NewDynamoStorage(client DynamoAPI, tableName string) *DynamoStorage {
	return &DynamoStorage{client: client, tableName: tableName}
}

func (d *DynamoStorage) keyOf(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"storeKey": &types.AttributeValueMemberS{Value: key},
	}
}

func (d *DynamoStorage) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            d.keyOf(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", d.tableName, err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var item kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return []byte(item.Value), nil
}

func (d *DynamoStorage) Set(ctx context.Context, key string, value []byte) error {
	marshaled, err := attributevalue.MarshalMap(kvItem{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      marshaled,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", d.tableName, err)
	}
	return nil
}

func (d *DynamoStorage) Delete(ctx context.Context, key string) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key:       d.keyOf(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete item from table '%s': %w", d.tableName, err)
	}
	return nil
}

func (d *DynamoStorage) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	var startKey map[string]types.AttributeValue
	for {
		out, err := d.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(d.tableName),
			ProjectionExpression:     aws.String("#k"),
			ExpressionAttributeNames: map[string]string{"#k": "storeKey"},
			ExclusiveStartKey:        startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan table '%s': %w", d.tableName, err)
		}
		for _, raw := range out.Items {
			var item kvItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, fmt.Errorf("failed to unmarshal item: %w", err)
			}
			keys = append(keys, item.Key)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return keys, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (d *DynamoStorage) Close() error { return nil }
