package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "request_collections"
	requestsCompanyIDIndex   = "company_id-index"
	requestsUserIDIndex      = "user_id-index"
)

type requestCollectionItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	CompanyID   string `dynamodbav:"company_id"`
	EcopointID  string `dynamodbav:"ecopoint_id"`
	Quantity    string `dynamodbav:"quantity"`
	Material    string `dynamodbav:"material"`
	Address     string `dynamodbav:"address"`
	Description string `dynamodbav:"description"`
	Status      string `dynamodbav:"status"`
	Notified    bool   `dynamodbav:"notified"`
	NotifiedAt  string `dynamodbav:"notified_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// RequestCollectionDynamoRepository persists RequestCollection entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)
//   - GSI: user_id-index (PK: user_id)
//
// Status transitions condition on company_id: the ownership check and the
// write are one UpdateItem, including the em_coleta notification side effect.

type RequestCollectionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestCollectionRepository = (*RequestCollectionDynamoRepository)(nil)

func NewRequestCollectionDynamoRepository(ddb *dynamodb.Client) *RequestCollectionDynamoRepository {
	return &RequestCollectionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUEST_COLLECTIONS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestCollectionDynamoRepository) Create(ctx context.Context, rc entities.RequestCollection) (entities.RequestCollection, error) {
	av, err := attributevalue.MarshalMap(toRequestCollectionItem(rc))
	if err != nil {
		return entities.RequestCollection{}, err
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
		return entities.RequestCollection{}, err
	}
	return rc, nil
}

func (r *RequestCollectionDynamoRepository) GetByID(ctx context.Context, id string) (entities.RequestCollection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RequestCollection{}, err
	}
	if len(out.Item) == 0 {
		return entities.RequestCollection{}, nil
	}

	var it requestCollectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RequestCollection{}, err
	}
	return fromRequestCollectionItem(it), nil
}

func (r *RequestCollectionDynamoRepository) ListByCompanyID(ctx context.Context, companyID string) ([]entities.RequestCollection, error) {
	return r.queryIndex(ctx, requestsCompanyIDIndex, "company_id", companyID)
}

func (r *RequestCollectionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.RequestCollection, error) {
	return r.queryIndex(ctx, requestsUserIDIndex, "user_id", userID)
}

func (r *RequestCollectionDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.RequestCollection, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RequestCollection, 0, len(out.Items))
	for _, raw := range out.Items {
		var it requestCollectionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRequestCollectionItem(it))
	}
	return items, nil
}

// UpdateStatusOwned writes the new status conditioned on the record existing
// and belonging to companyID. When markNotified is set, notified and
// notified_at are written in the same expression. A failed condition is
// disambiguated with a follow-up read.
func (r *RequestCollectionDynamoRepository) UpdateStatusOwned(ctx context.Context, id string, status entities.RequestStatus, markNotified bool, companyID string) (entities.RequestCollection, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":owner":      &types.AttributeValueMemberS{Value: companyID},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
		"#company_id": "company_id",
	}

	if markNotified {
		expr += ", #notified = :notified, #notified_at = :notified_at"
		values[":notified"] = &types.AttributeValueMemberBOOL{Value: true}
		values[":notified_at"] = &types.AttributeValueMemberS{Value: now}
		names["#notified"] = "notified"
		names["#notified_at"] = "notified_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #company_id = :owner"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.RequestCollection{}, getErr
			}
			if existing.ID == "" {
				return entities.RequestCollection{}, nil
			}
			return entities.RequestCollection{}, interfaces.ErrNotOwner
		}
		return entities.RequestCollection{}, err
	}

	var it requestCollectionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RequestCollection{}, err
	}
	return fromRequestCollectionItem(it), nil
}

func toRequestCollectionItem(rc entities.RequestCollection) requestCollectionItem {
	it := requestCollectionItem{
		ID:          rc.ID,
		UserID:      rc.UserID,
		CompanyID:   rc.CompanyID,
		EcopointID:  rc.EcopointID,
		Quantity:    strconv.Itoa(rc.Quantity),
		Material:    rc.Material,
		Address:     rc.Address,
		Description: rc.Description,
		Status:      string(rc.Status),
		Notified:    rc.Notified,
		CreatedAt:   rc.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   rc.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if rc.NotifiedAt != nil {
		it.NotifiedAt = rc.NotifiedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromRequestCollectionItem(it requestCollectionItem) entities.RequestCollection {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	quantity, _ := strconv.Atoi(it.Quantity)

	rc := entities.RequestCollection{
		ID:          it.ID,
		UserID:      it.UserID,
		CompanyID:   it.CompanyID,
		EcopointID:  it.EcopointID,
		Quantity:    quantity,
		Material:    it.Material,
		Address:     it.Address,
		Description: it.Description,
		Status:      entities.RequestStatus(it.Status),
		Notified:    it.Notified,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.NotifiedAt != "" {
		if notifiedAt, err := time.Parse(time.RFC3339Nano, it.NotifiedAt); err == nil {
			rc.NotifiedAt = &notifiedAt
		}
	}
	return rc
}
