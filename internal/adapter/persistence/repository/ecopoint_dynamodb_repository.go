package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEcoPointsTableName = "ecopoints"
	ecoPointsCompanyIDIndex   = "company_id-index"
	ecoPointsCnpjIndex        = "cnpj-index"
)

type ecoPointItem struct {
	ID                string   `dynamodbav:"id"`
	CompanyID         string   `dynamodbav:"company_id"`
	Title             string   `dynamodbav:"title"`
	CNPJ              string   `dynamodbav:"cnpj"`
	OpeningHours      string   `dynamodbav:"opening_hours"`
	Interval          string   `dynamodbav:"interval"`
	AcceptedMaterials []string `dynamodbav:"accepted_materials"`
	Address           string   `dynamodbav:"address"`
	Coordinates       string   `dynamodbav:"coordinates"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// EcoPointDynamoRepository persists EcoPoint entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)
//   - GSI: cnpj-index (PK: cnpj)
//
// Ownership-gated writes condition on company_id so the permission check and
// the mutation are one atomic operation.

type EcoPointDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEcoPointRepository = (*EcoPointDynamoRepository)(nil)

func NewEcoPointDynamoRepository(ddb *dynamodb.Client) *EcoPointDynamoRepository {
	return &EcoPointDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ECOPOINTS_TABLE", defaultEcoPointsTableName),
	}
}

func (r *EcoPointDynamoRepository) Create(ctx context.Context, e entities.EcoPoint) (entities.EcoPoint, error) {
	av, err := attributevalue.MarshalMap(toEcoPointItem(e))
	if err != nil {
		return entities.EcoPoint{}, err
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
		return entities.EcoPoint{}, err
	}
	return e, nil
}

func (r *EcoPointDynamoRepository) GetByID(ctx context.Context, id string) (entities.EcoPoint, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EcoPoint{}, err
	}
	if len(out.Item) == 0 {
		return entities.EcoPoint{}, nil
	}

	var it ecoPointItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EcoPoint{}, err
	}
	return fromEcoPointItem(it), nil
}

func (r *EcoPointDynamoRepository) GetByCnpj(ctx context.Context, cnpj string) (entities.EcoPoint, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ecoPointsCnpjIndex),
		KeyConditionExpression: aws.String("cnpj = :cnpj"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cnpj": &types.AttributeValueMemberS{Value: cnpj},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.EcoPoint{}, err
	}
	if len(out.Items) == 0 {
		return entities.EcoPoint{}, nil
	}

	var it ecoPointItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.EcoPoint{}, err
	}
	return fromEcoPointItem(it), nil
}

func (r *EcoPointDynamoRepository) List(ctx context.Context) ([]entities.EcoPoint, error) {
	var items []entities.EcoPoint
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it ecoPointItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEcoPointItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *EcoPointDynamoRepository) ListByCompanyID(ctx context.Context, companyID string) ([]entities.EcoPoint, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ecoPointsCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.EcoPoint, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ecoPointItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEcoPointItem(it))
	}
	return items, nil
}

// UpdateOwned applies the patch conditioned on the record existing and being
// owned by companyID. A failed condition is disambiguated with a follow-up
// read: absent record means not found, present record means another owner.
func (r *EcoPointDynamoRepository) UpdateOwned(ctx context.Context, id string, patch entities.EcoPointPatch, companyID string) (entities.EcoPoint, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":owner":      &types.AttributeValueMemberS{Value: companyID},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
		"#company_id": "company_id",
	}

	set := func(attr string, av types.AttributeValue) {
		placeholder := "#" + attr
		valueKey := ":" + attr
		expr += fmt.Sprintf(", %s = %s", placeholder, valueKey)
		names[placeholder] = attr
		values[valueKey] = av
	}

	if patch.Title != nil {
		set("title", &types.AttributeValueMemberS{Value: *patch.Title})
	}
	if patch.CNPJ != nil {
		set("cnpj", &types.AttributeValueMemberS{Value: *patch.CNPJ})
	}
	if patch.OpeningHours != nil {
		set("opening_hours", &types.AttributeValueMemberS{Value: *patch.OpeningHours})
	}
	if patch.Interval != nil {
		set("interval", &types.AttributeValueMemberS{Value: *patch.Interval})
	}
	if patch.AcceptedMaterials != nil {
		av, err := attributevalue.Marshal(*patch.AcceptedMaterials)
		if err != nil {
			return entities.EcoPoint{}, err
		}
		set("accepted_materials", av)
	}
	if patch.Address != nil {
		set("address", &types.AttributeValueMemberS{Value: *patch.Address})
	}
	if patch.Coordinates != nil {
		set("coordinates", &types.AttributeValueMemberS{Value: *patch.Coordinates})
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
			return r.resolveConditionFailure(ctx, id)
		}
		return entities.EcoPoint{}, err
	}

	var it ecoPointItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EcoPoint{}, err
	}
	return fromEcoPointItem(it), nil
}

// DeleteOwned removes the record with the same ownership condition as
// UpdateOwned.
func (r *EcoPointDynamoRepository) DeleteOwned(ctx context.Context, id string, companyID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #company_id = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#company_id": "company_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return getErr
			}
			if existing.ID == "" {
				return interfaces.ErrRecordNotFound
			}
			return interfaces.ErrNotOwner
		}
		return err
	}
	return nil
}

func (r *EcoPointDynamoRepository) resolveConditionFailure(ctx context.Context, id string) (entities.EcoPoint, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.EcoPoint{}, err
	}
	if existing.ID == "" {
		return entities.EcoPoint{}, nil
	}
	return entities.EcoPoint{}, interfaces.ErrNotOwner
}

func toEcoPointItem(e entities.EcoPoint) ecoPointItem {
	return ecoPointItem{
		ID:                e.ID,
		CompanyID:         e.CompanyID,
		Title:             e.Title,
		CNPJ:              e.CNPJ,
		OpeningHours:      e.OpeningHours,
		Interval:          e.Interval,
		AcceptedMaterials: e.AcceptedMaterials,
		Address:           e.Address,
		Coordinates:       e.Coordinates,
		CreatedAt:         e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEcoPointItem(it ecoPointItem) entities.EcoPoint {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.EcoPoint{
		ID:                it.ID,
		CompanyID:         it.CompanyID,
		Title:             it.Title,
		CNPJ:              it.CNPJ,
		OpeningHours:      it.OpeningHours,
		Interval:          it.Interval,
		AcceptedMaterials: it.AcceptedMaterials,
		Address:           it.Address,
		Coordinates:       it.Coordinates,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
