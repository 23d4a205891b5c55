package repository

import (
	"context"
	"strconv"
	"time"

	"studio_interiors/internal/domain/entities"
	"studio_interiors/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "milestone_payments"
	paymentsEstimateIDIndex  = "estimate_id-index"
)

type milestonePaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	EstimateID         string                 `dynamodbav:"estimate_id"`
	MilestoneIndex     int                    `dynamodbav:"milestone_index"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// MilestonePaymentDynamoRepository persists MilestonePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)

type MilestonePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMilestonePaymentRepository = (*MilestonePaymentDynamoRepository)(nil)

func NewMilestonePaymentDynamoRepository(ddb *dynamodb.Client) *MilestonePaymentDynamoRepository {
	return &MilestonePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *MilestonePaymentDynamoRepository) Create(ctx context.Context, p entities.MilestonePayment) (entities.MilestonePayment, error) {
	it := toMilestonePaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.MilestonePayment{}, err
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
		return entities.MilestonePayment{}, err
	}
	return p, nil
}

func (r *MilestonePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.MilestonePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MilestonePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.MilestonePayment{}, nil
	}

	var it milestonePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MilestonePayment{}, err
	}
	return fromMilestonePaymentItem(it), nil
}

func (r *MilestonePaymentDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.MilestonePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsEstimateIDIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.MilestonePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it milestonePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMilestonePaymentItem(it))
	}
	return items, nil
}

func toMilestonePaymentItem(p entities.MilestonePayment) milestonePaymentItem {
	return milestonePaymentItem{
		ID:                 p.ID,
		EstimateID:         p.EstimateID,
		MilestoneIndex:     p.MilestoneIndex,
		Amount:             floatToString(p.Amount),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromMilestonePaymentItem(it milestonePaymentItem) entities.MilestonePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.MilestonePayment{
		ID:                 it.ID,
		EstimateID:         it.EstimateID,
		MilestoneIndex:     it.MilestoneIndex,
		Amount:             amount,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
