package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table keyed by user_id and optionally id.
// Query pages hold pageSize items to exercise pagination.
type fakeDynamo struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	pageSize int
	err      error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}, pageSize: 2}
}

func attrS(m map[string]types.AttributeValue, k string) string {
	if v, ok := m[k].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func itemKey(m map[string]types.AttributeValue) string {
	return attrS(m, "user_id") + "|" + attrS(m, "id")
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[itemKey(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := itemKey(in.Item)
	if in.ConditionExpression != nil && aws.ToString(in.ConditionExpression) == "attribute_not_exists(#id)" {
		if _, exists := f.items[k]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := itemKey(in.Key)
	old, ok := f.items[k]
	delete(f.items, k)
	if !ok {
		return &dynamodb.DeleteItemOutput{}, nil
	}
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	userID := attrS(in.ExpressionAttributeValues, ":user_id")
	if userID == "" {
		return nil, errors.New("missing :user_id")
	}

	var keys []string
	for k, it := range f.items {
		if attrS(it, "user_id") == userID {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	start := 0
	if in.ExclusiveStartKey != nil {
		after := itemKey(in.ExclusiveStartKey)
		for start < len(keys) && keys[start] <= after {
			start++
		}
	}
	end := min(start+f.pageSize, len(keys))

	out := &dynamodb.QueryOutput{Count: int32(end - start)}
	if in.Select != types.SelectCount {
		for _, k := range keys[start:end] {
			out.Items = append(out.Items, f.items[k])
		}
	}
	if end < len(keys) {
		last := f.items[keys[end-1]]
		out.LastEvaluatedKey = map[string]types.AttributeValue{"user_id": last["user_id"], "id": last["id"]}
	}
	return out, nil
}
