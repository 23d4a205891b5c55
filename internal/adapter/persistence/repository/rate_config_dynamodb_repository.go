package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studio_interiors/internal/domain/entities"
	"studio_interiors/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRateConfigsTableName = "rate_configs"
	rateConfigsTypeIndex        = "config_type-index"
)

type rateConfigItem struct {
	ID         string `dynamodbav:"id"`
	ConfigType string `dynamodbav:"config_type"`
	Name       string `dynamodbav:"name"`
	Config     string `dynamodbav:"config"`
	IsActive   bool   `dynamodbav:"is_active"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// RateConfigDynamoRepository persists RateConfig entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: config_type-index (PK: config_type)
//
// Versions are never overwritten: a new version is a new item, and inactive
// items stay queryable through ListByType for history.

type RateConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateConfigRepository = (*RateConfigDynamoRepository)(nil)

func NewRateConfigDynamoRepository(ddb *dynamodb.Client) *RateConfigDynamoRepository {
	return &RateConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATE_CONFIGS_TABLE", defaultRateConfigsTableName),
	}
}

func (r *RateConfigDynamoRepository) Create(ctx context.Context, c entities.RateConfig) (entities.RateConfig, error) {
	it, err := toRateConfigItem(c)
	if err != nil {
		return entities.RateConfig{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RateConfig{}, err
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
		return entities.RateConfig{}, err
	}
	return c, nil
}

func (r *RateConfigDynamoRepository) GetByID(ctx context.Context, id string) (entities.RateConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RateConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.RateConfig{}, nil
	}

	var it rateConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RateConfig{}, err
	}
	return fromRateConfigItem(it)
}

func (r *RateConfigDynamoRepository) GetActiveByType(ctx context.Context, configType entities.ConfigType) ([]entities.RateConfig, error) {
	return r.queryByType(ctx, configType, true)
}

func (r *RateConfigDynamoRepository) ListByType(ctx context.Context, configType entities.ConfigType) ([]entities.RateConfig, error) {
	return r.queryByType(ctx, configType, false)
}

func (r *RateConfigDynamoRepository) queryByType(ctx context.Context, configType entities.ConfigType, activeOnly bool) ([]entities.RateConfig, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rateConfigsTypeIndex),
		KeyConditionExpression: aws.String("config_type = :ct"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ct": &types.AttributeValueMemberS{Value: string(configType)},
		},
	}
	if activeOnly {
		input.FilterExpression = aws.String("is_active = :active")
		input.ExpressionAttributeValues[":active"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	configs := make([]entities.RateConfig, 0, len(out.Items))
	for _, raw := range out.Items {
		var it rateConfigItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		c, err := fromRateConfigItem(it)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, nil
}

// FindActiveByTypeAndName resolves the single active version of a named
// config. Should duplicates exist, the most recently updated one wins --
// the same tie-break the calculator's snapshot applies.
func (r *RateConfigDynamoRepository) FindActiveByTypeAndName(ctx context.Context, configType entities.ConfigType, name string) (entities.RateConfig, error) {
	active, err := r.GetActiveByType(ctx, configType)
	if err != nil {
		return entities.RateConfig{}, err
	}

	var found entities.RateConfig
	for _, c := range active {
		if c.Name != name {
			continue
		}
		if found.ID == "" || c.UpdatedAt.After(found.UpdatedAt) {
			found = c
		}
	}
	return found, nil
}

func (r *RateConfigDynamoRepository) DeactivateByID(ctx context.Context, id string) (entities.RateConfig, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_active = :inactive, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inactive":   &types.AttributeValueMemberBOOL{Value: false},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RateConfig{}, nil
		}
		return entities.RateConfig{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.RateConfig{}, nil
	}
	var it rateConfigItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RateConfig{}, err
	}
	return fromRateConfigItem(it)
}

func toRateConfigItem(c entities.RateConfig) (rateConfigItem, error) {
	payload, err := json.Marshal(c.Config)
	if err != nil {
		return rateConfigItem{}, err
	}
	return rateConfigItem{
		ID:         c.ID,
		ConfigType: string(c.ConfigType),
		Name:       c.Name,
		Config:     string(payload),
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromRateConfigItem(it rateConfigItem) (entities.RateConfig, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	c := entities.RateConfig{
		ID:         it.ID,
		ConfigType: entities.ConfigType(it.ConfigType),
		Name:       it.Name,
		IsActive:   it.IsActive,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	if it.Config != "" {
		if err := json.Unmarshal([]byte(it.Config), &c.Config); err != nil {
			return entities.RateConfig{}, err
		}
	}
	return c, nil
}
