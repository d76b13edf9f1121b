package repository

import (
	"context"
	"errors"
	"time"

	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultRentRequestsTableName = "rent_requests"

type rentRequestItem struct {
	HouseID             string `dynamodbav:"house_id"`
	ID                  string `dynamodbav:"id"`
	RentConfigurationID string `dynamodbav:"rent_configuration_id"`
	MonthlyRentAmount   string `dynamodbav:"monthly_rent_amount"`
	RentDueDay          int    `dynamodbav:"rent_due_day"`
	Status              string `dynamodbav:"status"`
	ClaimedBy           string `dynamodbav:"claimed_by,omitempty"`
	ClaimedAt           string `dynamodbav:"claimed_at,omitempty"`
	ActiveProposalID    string `dynamodbav:"active_proposal_id,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// RentRequestDynamoRepository persists RentAllocationRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: house_id (string)
//
// We purposely use the house id as PK so a house can never hold two request
// items; the "one non-terminal request per house" rule then reduces to
// conditional writes on this single item. Claim exclusivity, the
// active-proposal slot and resolution are all compare-and-swap updates
// guarded by the current status; a failed condition is returned as the
// zero-value entity, never as an error.

type RentRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRentRequestRepository = (*RentRequestDynamoRepository)(nil)

func NewRentRequestDynamoRepository(ddb *dynamodb.Client) *RentRequestDynamoRepository {
	return &RentRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RENT_REQUESTS_TABLE", defaultRentRequestsTableName),
	}
}

func (r *RentRequestDynamoRepository) GetByHouseID(ctx context.Context, houseID string) (entities.RentAllocationRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"house_id": &types.AttributeValueMemberS{Value: houseID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RentAllocationRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.RentAllocationRequest{}, nil
	}

	var it rentRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RentAllocationRequest{}, err
	}
	return fromRentRequestItem(it), nil
}

func (r *RentRequestDynamoRepository) PutPending(ctx context.Context, req entities.RentAllocationRequest) (entities.RentAllocationRequest, error) {
	av, err := attributevalue.MarshalMap(toRentRequestItem(req))
	if err != nil {
		return entities.RentAllocationRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#house_id) OR #status IN (:fulfilled, :expired)"),
		ExpressionAttributeNames: map[string]string{
			"#house_id": "house_id",
			"#status":   "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fulfilled": &types.AttributeValueMemberS{Value: string(entities.RequestStatusFulfilled)},
			":expired":   &types.AttributeValueMemberS{Value: string(entities.RequestStatusExpired)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RentAllocationRequest{}, nil
		}
		return entities.RentAllocationRequest{}, err
	}
	return req, nil
}

func (r *RentRequestDynamoRepository) Claim(ctx context.Context, houseID, userID string) (entities.RentAllocationRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return r.update(ctx, houseID, &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String("SET #status = :claimed, #claimed_by = :user, #claimed_at = :now, #updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#claimed_by": "claimed_by",
			"#claimed_at": "claimed_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":claimed": &types.AttributeValueMemberS{Value: string(entities.RequestStatusClaimed)},
			":pending": &types.AttributeValueMemberS{Value: string(entities.RequestStatusPending)},
			":user":    &types.AttributeValueMemberS{Value: userID},
			":now":     &types.AttributeValueMemberS{Value: now},
		},
	})
}

func (r *RentRequestDynamoRepository) SetActiveProposal(ctx context.Context, houseID, proposalID string) (entities.RentAllocationRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return r.update(ctx, houseID, &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String("SET #active_proposal_id = :pid, #updated_at = :now"),
		ConditionExpression: aws.String("#status = :claimed AND attribute_not_exists(#active_proposal_id)"),
		ExpressionAttributeNames: map[string]string{
			"#status":             "status",
			"#active_proposal_id": "active_proposal_id",
			"#updated_at":         "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":claimed": &types.AttributeValueMemberS{Value: string(entities.RequestStatusClaimed)},
			":pid":     &types.AttributeValueMemberS{Value: proposalID},
			":now":     &types.AttributeValueMemberS{Value: now},
		},
	})
}

func (r *RentRequestDynamoRepository) ClearActiveProposal(ctx context.Context, houseID, proposalID string, next entities.RequestStatus) (entities.RentAllocationRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	// Going back to pending also surrenders the claim.
	updateExpr := "SET #status = :next, #updated_at = :now REMOVE #active_proposal_id"
	if next == entities.RequestStatusPending {
		updateExpr += ", #claimed_by, #claimed_at"
	}

	input := &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String(updateExpr),
		ConditionExpression: aws.String("#active_proposal_id = :pid"),
		ExpressionAttributeNames: map[string]string{
			"#status":             "status",
			"#active_proposal_id": "active_proposal_id",
			"#updated_at":         "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberS{Value: string(next)},
			":pid":  &types.AttributeValueMemberS{Value: proposalID},
			":now":  &types.AttributeValueMemberS{Value: now},
		},
	}
	if next == entities.RequestStatusPending {
		input.ExpressionAttributeNames["#claimed_by"] = "claimed_by"
		input.ExpressionAttributeNames["#claimed_at"] = "claimed_at"
	}
	return r.update(ctx, houseID, input)
}

func (r *RentRequestDynamoRepository) update(ctx context.Context, houseID string, input *dynamodb.UpdateItemInput) (entities.RentAllocationRequest, error) {
	input.TableName = aws.String(r.tableName)
	input.Key = map[string]types.AttributeValue{
		"house_id": &types.AttributeValueMemberS{Value: houseID},
	}
	input.ReturnValues = types.ReturnValueAllNew

	out, err := r.ddb.UpdateItem(ctx, input)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RentAllocationRequest{}, nil
		}
		return entities.RentAllocationRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.RentAllocationRequest{}, nil
	}

	var it rentRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RentAllocationRequest{}, err
	}
	return fromRentRequestItem(it), nil
}

func toRentRequestItem(req entities.RentAllocationRequest) rentRequestItem {
	it := rentRequestItem{
		HouseID:             req.HouseID,
		ID:                  req.ID,
		RentConfigurationID: req.RentConfigurationID,
		MonthlyRentAmount:   req.MonthlyRentAmount.String(),
		RentDueDay:          req.RentDueDay,
		Status:              string(req.Status),
		ClaimedBy:           req.ClaimedBy,
		ActiveProposalID:    req.ActiveProposalID,
		CreatedAt:           req.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           req.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if req.ClaimedAt != nil {
		it.ClaimedAt = req.ClaimedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromRentRequestItem(it rentRequestItem) entities.RentAllocationRequest {
	amount, _ := decimal.NewFromString(it.MonthlyRentAmount)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	req := entities.RentAllocationRequest{
		HouseID:             it.HouseID,
		ID:                  it.ID,
		RentConfigurationID: it.RentConfigurationID,
		MonthlyRentAmount:   amount,
		RentDueDay:          it.RentDueDay,
		Status:              entities.RequestStatus(it.Status),
		ClaimedBy:           it.ClaimedBy,
		ActiveProposalID:    it.ActiveProposalID,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
	if it.ClaimedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ClaimedAt); err == nil {
			req.ClaimedAt = &t
		}
	}
	return req
}
