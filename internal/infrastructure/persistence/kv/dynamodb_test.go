package kv

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

// fakeDynamo stores raw attribute maps keyed by storeKey and pages scans one
// item at a time so pagination is exercised.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func keyString(m map[string]types.AttributeValue) string {
	return m["storeKey"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyString(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[keyString(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, keyString(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := make([]string, 0, len(f.items))
	for k := range f.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := 0
	if in.ExclusiveStartKey != nil {
		after := keyString(in.ExclusiveStartKey)
		for start < len(keys) && keys[start] <= after {
			start++
		}
	}
	if start >= len(keys) {
		return &dynamodb.ScanOutput{}, nil
	}

	k := keys[start]
	item := map[string]types.AttributeValue{"storeKey": &types.AttributeValueMemberS{Value: k}}
	out := &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{item}}
	if start < len(keys)-1 {
		out.LastEvaluatedKey = item
	}
	return out, nil
}

func TestDynamoStorage(t *testing.T) {
	exerciseStorage(t, NewDynamoStorage(newFakeDynamo(), "glowyn-state"))
}

func TestDynamoStorageWritesItemShape(t *testing.T) {
	fake := newFakeDynamo()
	s := NewDynamoStorage(fake, "glowyn-state")
	require.NoError(t, s.Set(context.Background(), "glowyn-feed-storage", []byte(`{"state":{}}`)))

	item := fake.items["glowyn-feed-storage"]
	require.Contains(t, item, "storeValue")
	require.Contains(t, item, "updatedAt")
}
