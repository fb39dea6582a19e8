package repository

import (
	"context"
	"errors"
	"time"

	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"
	usersEmailIndex       = "email-index"
	usersRoleIndex        = "role-index"
	usersNameIndex        = "name-index"
)

type userItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Password  string `dynamodbav:"password"`
	Role      string `dynamodbav:"role"`
	Approved  bool   `dynamodbav:"approved"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User accounts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//   - GSI: role-index (PK: role)
//   - GSI: name-index (PK: name)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.queryOne(ctx, usersEmailIndex, "email", email)
}

func (r *UserDynamoRepository) GetByName(ctx context.Context, name string) (entities.User, error) {
	return r.queryOne(ctx, usersNameIndex, "#name", name)
}

func (r *UserDynamoRepository) queryOne(ctx context.Context, index, attr, value string) (entities.User, error) {
	input := &dynamodb.QueryInput{
		TableName: aws.String(r.tableName),
		IndexName: aws.String(index),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	}
	// "name" is a DynamoDB reserved word and needs a placeholder.
	if attr == "#name" {
		input.KeyConditionExpression = aws.String("#name = :v")
		input.ExpressionAttributeNames = map[string]string{"#name": "name"}
	} else {
		input.KeyConditionExpression = aws.String(attr + " = :v")
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
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
			var it userItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			users = append(users, fromUserItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return users, nil
}

func (r *UserDynamoRepository) ListByRole(ctx context.Context, role entities.Role) ([]entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersRoleIndex),
		KeyConditionExpression: aws.String("#role = :role"),
		ExpressionAttributeNames: map[string]string{
			"#role": "role",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
	})
	if err != nil {
		return nil, err
	}

	users := make([]entities.User, 0, len(out.Items))
	for _, raw := range out.Items {
		var it userItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		users = append(users, fromUserItem(it))
	}
	return users, nil
}

func (r *UserDynamoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		count += int64(out.Count)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return count, nil
}

func (r *UserDynamoRepository) Update(ctx context.Context, id string, patch entities.UserPatch) (entities.User, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}

	if patch.Name != nil {
		expr += ", #name = :name"
		names["#name"] = "name"
		values[":name"] = &types.AttributeValueMemberS{Value: *patch.Name}
	}
	if patch.Email != nil {
		expr += ", #email = :email"
		names["#email"] = "email"
		values[":email"] = &types.AttributeValueMemberS{Value: *patch.Email}
	}
	if patch.Password != nil {
		expr += ", #password = :password"
		names["#password"] = "password"
		values[":password"] = &types.AttributeValueMemberS{Value: *patch.Password}
	}
	if patch.Approved != nil {
		expr += ", #approved = :approved"
		names["#approved"] = "approved"
		values[":approved"] = &types.AttributeValueMemberBOOL{Value: *patch.Approved}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrRecordNotFound
		}
		return err
	}
	return nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Role:      string(u.Role),
		Approved:  u.Approved,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.User{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Password:  it.Password,
		Role:      entities.Role(it.Role),
		Approved:  it.Approved,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
