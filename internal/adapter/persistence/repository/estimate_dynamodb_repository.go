package repository

import (
	"context"
	"encoding/json"
	"errors"
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
	defaultEstimatesTableName = "estimates"
	estimatesProjectIDIndex   = "project_id-index"
)

type estimateItem struct {
	ID                   string `dynamodbav:"id"`
	Title                string `dynamodbav:"title"`
	ClientID             string `dynamodbav:"client_id,omitempty"`
	ProjectID            string `dynamodbav:"project_id,omitempty"`
	Scope                string `dynamodbav:"scope"`
	LineItems            string `dynamodbav:"line_items,omitempty"`
	Subtotal             string `dynamodbav:"subtotal"`
	GSTAmount            string `dynamodbav:"gst_amount"`
	Total                string `dynamodbav:"total"`
	MilestonePercentages string `dynamodbav:"milestone_percentages,omitempty"`
	Milestones           string `dynamodbav:"milestones,omitempty"`
	Status               string `dynamodbav:"status"`
	IsTemplate           bool   `dynamodbav:"is_template"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Structured fields (scope, line items, milestones) are stored as JSON
// strings: they are read and written as a unit, never queried field-by-field.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
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

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
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
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	estimates := make([]entities.Estimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		e, err := fromEstimateItem(it)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, e)
	}
	return estimates, nil
}

func (r *EstimateDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

// Update replaces the whole record; recalculation rewrites every derived
// field at once so a targeted update expression buys nothing.
func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	scope, err := json.Marshal(e.Scope)
	if err != nil {
		return estimateItem{}, err
	}

	it := estimateItem{
		ID:         e.ID,
		Title:      e.Title,
		ClientID:   e.ClientID,
		ProjectID:  e.ProjectID,
		Scope:      string(scope),
		Subtotal:   floatToString(e.Subtotal),
		GSTAmount:  floatToString(e.GSTAmount),
		Total:      floatToString(e.Total),
		Status:     string(e.Status),
		IsTemplate: e.IsTemplate,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	if e.LineItems != nil {
		b, err := json.Marshal(e.LineItems)
		if err != nil {
			return estimateItem{}, err
		}
		it.LineItems = string(b)
	}
	if e.MilestonePercentages != nil {
		b, err := json.Marshal(e.MilestonePercentages)
		if err != nil {
			return estimateItem{}, err
		}
		it.MilestonePercentages = string(b)
	}
	if e.Milestones != nil {
		b, err := json.Marshal(e.Milestones)
		if err != nil {
			return estimateItem{}, err
		}
		it.Milestones = string(b)
	}
	return it, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	gst, _ := strconv.ParseFloat(it.GSTAmount, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)

	e := entities.Estimate{
		ID:         it.ID,
		Title:      it.Title,
		ClientID:   it.ClientID,
		ProjectID:  it.ProjectID,
		Subtotal:   subtotal,
		GSTAmount:  gst,
		Total:      total,
		Status:     entities.EstimateStatus(it.Status),
		IsTemplate: it.IsTemplate,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}

	if it.Scope != "" {
		if err := json.Unmarshal([]byte(it.Scope), &e.Scope); err != nil {
			return entities.Estimate{}, err
		}
	}
	if it.LineItems != "" {
		if err := json.Unmarshal([]byte(it.LineItems), &e.LineItems); err != nil {
			return entities.Estimate{}, err
		}
	}
	if it.MilestonePercentages != "" {
		if err := json.Unmarshal([]byte(it.MilestonePercentages), &e.MilestonePercentages); err != nil {
			return entities.Estimate{}, err
		}
	}
	if it.Milestones != "" {
		if err := json.Unmarshal([]byte(it.Milestones), &e.Milestones); err != nil {
			return entities.Estimate{}, err
		}
	}
	return e, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
