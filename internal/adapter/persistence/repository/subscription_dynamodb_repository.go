package repository

import (
	"context"

	"bidright/internal/domain/entities"
	"bidright/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSubscriptionsTableName = "subscriptions"

type subscriptionItem struct {
	UserID      string `dynamodbav:"user_id"`
	Plan        string `dynamodbav:"plan"`
	Active      bool   `dynamodbav:"active"`
	Canceled    bool   `dynamodbav:"canceled"`
	Annual      bool   `dynamodbav:"annual"`
	RenewalDate string `dynamodbav:"renewal_date,omitempty"`
	PaymentID   string `dynamodbav:"payment_id,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists Subscription entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
type SubscriptionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb DynamoAPI, tableName string) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) Upsert(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		UserID:      s.UserID,
		Plan:        s.Plan,
		Active:      s.Active,
		Canceled:    s.Canceled,
		Annual:      s.Annual,
		RenewalDate: formatTime(s.RenewalDate),
		PaymentID:   s.PaymentID,
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	return entities.Subscription{
		UserID:      it.UserID,
		Plan:        it.Plan,
		Active:      it.Active,
		Canceled:    it.Canceled,
		Annual:      it.Annual,
		RenewalDate: parseTime(it.RenewalDate),
		PaymentID:   it.PaymentID,
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
