package repository

import (
	"cmp"
	"context"
	"slices"

	"bidright/internal/domain/entities"
	"bidright/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateInputItem struct {
	IndustryID    string   `dynamodbav:"industry_id"`
	ProjectTypeID string   `dynamodbav:"project_type_id"`
	Complexity    string   `dynamodbav:"complexity"`
	FeatureIDs    []string `dynamodbav:"feature_ids,omitempty"`
}

type estimateItem struct {
	UserID         string            `dynamodbav:"user_id"`
	ID             string            `dynamodbav:"id"`
	Hours          int               `dynamodbav:"hours"`
	HourMin        int               `dynamodbav:"hour_min"`
	HourMax        int               `dynamodbav:"hour_max"`
	Cost           int               `dynamodbav:"cost"`
	CostMin        int               `dynamodbav:"cost_min"`
	CostMax        int               `dynamodbav:"cost_max"`
	RevisionLimit  int               `dynamodbav:"revision_limit"`
	IndustryName   string            `dynamodbav:"industry_name"`
	ProjectName    string            `dynamodbav:"project_name"`
	ComplexityName string            `dynamodbav:"complexity_name"`
	FeatureNames   []string          `dynamodbav:"feature_names,omitempty"`
	Input          estimateInputItem `dynamodbav:"input"`
	CreatedAt      string            `dynamodbav:"created_at"`
}

// EstimateDynamoRepository persists saved estimates in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//   - SK: id (string)
//
// Every access is scoped by user, so one user's estimates are never visible
// to another.
type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, userID, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            estimateKey(userID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

// ListByUserID returns the user's estimates oldest first.
func (r *EstimateDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Estimate, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, r.userQuery(userID, ""))

	var out []entities.Estimate
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromEstimateItem(it))
		}
	}

	slices.SortStableFunc(out, func(a, b entities.Estimate) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *EstimateDynamoRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, r.userQuery(userID, types.SelectCount))

	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          estimateKey(userID, id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *EstimateDynamoRepository) userQuery(userID string, sel types.Select) *dynamodb.QueryInput {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	}
	if sel != "" {
		in.Select = sel
	}
	return in
}

func estimateKey(userID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: userID},
		"id":      &types.AttributeValueMemberS{Value: id},
	}
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		UserID:         e.UserID,
		ID:             e.ID,
		Hours:          e.Hours,
		HourMin:        e.HourRange.Min,
		HourMax:        e.HourRange.Max,
		Cost:           e.Cost,
		CostMin:        e.CostRange.Min,
		CostMax:        e.CostRange.Max,
		RevisionLimit:  e.RevisionLimit,
		IndustryName:   e.IndustryName,
		ProjectName:    e.ProjectName,
		ComplexityName: e.ComplexityName,
		FeatureNames:   e.FeatureNames,
		Input: estimateInputItem{
			IndustryID:    e.Input.IndustryID,
			ProjectTypeID: e.Input.ProjectTypeID,
			Complexity:    e.Input.Complexity,
			FeatureIDs:    e.Input.FeatureIDs,
		},
		CreatedAt: formatTime(e.CreatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:             it.ID,
		UserID:         it.UserID,
		Hours:          it.Hours,
		HourRange:      entities.Range{Min: it.HourMin, Max: it.HourMax},
		Cost:           it.Cost,
		CostRange:      entities.Range{Min: it.CostMin, Max: it.CostMax},
		RevisionLimit:  it.RevisionLimit,
		IndustryName:   it.IndustryName,
		ProjectName:    it.ProjectName,
		ComplexityName: it.ComplexityName,
		FeatureNames:   it.FeatureNames,
		Input: entities.EstimateInput{
			IndustryID:    it.Input.IndustryID,
			ProjectTypeID: it.Input.ProjectTypeID,
			Complexity:    it.Input.Complexity,
			FeatureIDs:    it.Input.FeatureIDs,
		},
		CreatedAt: parseTime(it.CreatedAt),
	}
}
