package repository

import (
	"context"
	"time"

	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHousesTableName = "houses"

type houseItem struct {
	ID        string   `dynamodbav:"id"`
	Name      string   `dynamodbav:"name"`
	MemberIDs []string `dynamodbav:"member_ids"`
	CreatedAt string   `dynamodbav:"created_at"`
	UpdatedAt string   `dynamodbav:"updated_at"`
}

// HouseDynamoRepository reads House entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The workflow never writes houses; the roster is owned by the wider product.

type HouseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHouseRepository = (*HouseDynamoRepository)(nil)

func NewHouseDynamoRepository(ddb *dynamodb.Client) *HouseDynamoRepository {
	return &HouseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HOUSES_TABLE", defaultHousesTableName),
	}
}

func (r *HouseDynamoRepository) GetByID(ctx context.Context, id string) (entities.House, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.House{}, err
	}
	if len(out.Item) == 0 {
		return entities.House{}, nil
	}

	var it houseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.House{}, err
	}
	return fromHouseItem(it), nil
}

func (r *HouseDynamoRepository) ListByMemberID(ctx context.Context, userID string) ([]entities.House, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("contains(#member_ids, :uid)"),
		ExpressionAttributeNames: map[string]string{
			"#member_ids": "member_ids",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	houses := make([]entities.House, 0, len(out.Items))
	for _, item := range out.Items {
		var it houseItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		houses = append(houses, fromHouseItem(it))
	}
	return houses, nil
}

func fromHouseItem(it houseItem) entities.House {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.House{
		ID:        it.ID,
		Name:      it.Name,
		MemberIDs: it.MemberIDs,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
