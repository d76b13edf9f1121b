package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"splitnest/internal/domain/entities"
	"splitnest/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultRentProposalsTableName = "rent_proposals"
	proposalsHouseIDIndex         = "house_id-index"
	proposalsStatusIndex          = "status-index"
)

type allocationItem struct {
	UserID         string `dynamodbav:"user_id"`
	Amount         string `dynamodbav:"amount"`
	ApprovalStatus string `dynamodbav:"approval_status"`
	DeclineReason  string `dynamodbav:"decline_reason,omitempty"`
	RespondedAt    string `dynamodbav:"responded_at,omitempty"`
}

type rentProposalItem struct {
	ID                  string           `dynamodbav:"id"`
	HouseID             string           `dynamodbav:"house_id"`
	RentConfigurationID string           `dynamodbav:"rent_configuration_id"`
	CreatedBy           string           `dynamodbav:"created_by"`
	Status              string           `dynamodbav:"status"`
	Allocations         []allocationItem `dynamodbav:"allocations"`
	CreatedAt           string           `dynamodbav:"created_at"`
	SubmittedAt         string           `dynamodbav:"submitted_at,omitempty"`
	ResolvedAt          string           `dynamodbav:"resolved_at,omitempty"`
}

// RentProposalDynamoRepository persists RentProposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: house_id-index (PK: house_id)
//   - GSI: status-index (PK: status)
//
// Every state-dependent mutation carries a ConditionExpression on the
// current status; per-member decisions additionally pin the allocation list
// element (owner and pending state) so a vote can never be applied twice or
// land on the wrong member after a reorder. Failed conditions come back as
// the zero-value entity.

type RentProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRentProposalRepository = (*RentProposalDynamoRepository)(nil)

func NewRentProposalDynamoRepository(ddb *dynamodb.Client) *RentProposalDynamoRepository {
	return &RentProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RENT_PROPOSALS_TABLE", defaultRentProposalsTableName),
	}
}

func (r *RentProposalDynamoRepository) Create(ctx context.Context, p entities.RentProposal) (entities.RentProposal, error) {
	av, err := attributevalue.MarshalMap(toRentProposalItem(p))
	if err != nil {
		return entities.RentProposal{}, err
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
		return entities.RentProposal{}, err
	}
	return p, nil
}

func (r *RentProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.RentProposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RentProposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.RentProposal{}, nil
	}

	var it rentProposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RentProposal{}, err
	}
	return fromRentProposalItem(it), nil
}

func (r *RentProposalDynamoRepository) GetActiveByHouseID(ctx context.Context, houseID string) (entities.RentProposal, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsHouseIDIndex),
		KeyConditionExpression: aws.String("#house_id = :hid"),
		FilterExpression:       aws.String("#status IN (:draft, :submitted)"),
		ExpressionAttributeNames: map[string]string{
			"#house_id": "house_id",
			"#status":   "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hid":       &types.AttributeValueMemberS{Value: houseID},
			":draft":     &types.AttributeValueMemberS{Value: string(entities.ProposalStatusDraft)},
			":submitted": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusSubmitted)},
		},
	}

	// The filter runs after the 1MB page read, so a house with a long
	// history of resolved proposals can yield empty pages before the
	// active one shows up.
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return entities.RentProposal{}, err
		}
		if len(out.Items) > 0 {
			var it rentProposalItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return entities.RentProposal{}, err
			}
			return fromRentProposalItem(it), nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entities.RentProposal{}, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *RentProposalDynamoRepository) ListByHouseID(ctx context.Context, houseID string) ([]entities.RentProposal, error) {
	proposals, err := r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsHouseIDIndex),
		KeyConditionExpression: aws.String("#house_id = :hid"),
		ExpressionAttributeNames: map[string]string{
			"#house_id": "house_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hid": &types.AttributeValueMemberS{Value: houseID},
		},
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})
	return proposals, nil
}

func (r *RentProposalDynamoRepository) ListSubmitted(ctx context.Context) ([]entities.RentProposal, error) {
	return r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsStatusIndex),
		KeyConditionExpression: aws.String("#status = :submitted"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":submitted": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusSubmitted)},
		},
	})
}

// queryAll drains every page of a query.
func (r *RentProposalDynamoRepository) queryAll(ctx context.Context, input *dynamodb.QueryInput) ([]entities.RentProposal, error) {
	proposals := []entities.RentProposal{}
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it rentProposalItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			proposals = append(proposals, fromRentProposalItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return proposals, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *RentProposalDynamoRepository) UpdateAllocations(ctx context.Context, id string, allocs []entities.Allocation) (entities.RentProposal, error) {
	av, err := marshalAllocations(allocs)
	if err != nil {
		return entities.RentProposal{}, err
	}

	return r.update(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String("SET #allocations = :allocations"),
		ConditionExpression: aws.String("#status = :draft"),
		ExpressionAttributeNames: map[string]string{
			"#allocations": "allocations",
			"#status":      "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":allocations": av,
			":draft":       &types.AttributeValueMemberS{Value: string(entities.ProposalStatusDraft)},
		},
	})
}

func (r *RentProposalDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#status = :draft"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusDraft)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *RentProposalDynamoRepository) Submit(ctx context.Context, id string, allocs []entities.Allocation, submittedAt time.Time) (entities.RentProposal, error) {
	av, err := marshalAllocations(allocs)
	if err != nil {
		return entities.RentProposal{}, err
	}

	return r.update(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String("SET #status = :submitted, #allocations = :allocations, #submitted_at = :submitted_at"),
		ConditionExpression: aws.String("#status = :draft"),
		ExpressionAttributeNames: map[string]string{
			"#status":       "status",
			"#allocations":  "allocations",
			"#submitted_at": "submitted_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":submitted":    &types.AttributeValueMemberS{Value: string(entities.ProposalStatusSubmitted)},
			":allocations":  av,
			":submitted_at": &types.AttributeValueMemberS{Value: submittedAt.UTC().Format(time.RFC3339Nano)},
			":draft":        &types.AttributeValueMemberS{Value: string(entities.ProposalStatusDraft)},
		},
	})
}

func (r *RentProposalDynamoRepository) RecordDecision(ctx context.Context, id string, index int, alloc entities.Allocation) (entities.RentProposal, error) {
	path := fmt.Sprintf("#allocations[%d]", index)

	updateExpr := fmt.Sprintf("SET %s.#approval_status = :decision, %s.#responded_at = :responded_at", path, path)
	values := map[string]types.AttributeValue{
		":decision":     &types.AttributeValueMemberS{Value: string(alloc.ApprovalStatus)},
		":pending":      &types.AttributeValueMemberS{Value: string(entities.ApprovalStatusPending)},
		":submitted":    &types.AttributeValueMemberS{Value: string(entities.ProposalStatusSubmitted)},
		":uid":          &types.AttributeValueMemberS{Value: alloc.UserID},
		":responded_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#allocations":     "allocations",
		"#approval_status": "approval_status",
		"#responded_at":    "responded_at",
		"#status":          "status",
		"#user_id":         "user_id",
	}
	if alloc.DeclineReason != "" {
		updateExpr += fmt.Sprintf(", %s.#decline_reason = :reason", path)
		names["#decline_reason"] = "decline_reason"
		values[":reason"] = &types.AttributeValueMemberS{Value: alloc.DeclineReason}
	}

	return r.update(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression: aws.String(updateExpr),
		ConditionExpression: aws.String(fmt.Sprintf(
			"#status = :submitted AND %s.#user_id = :uid AND %s.#approval_status = :pending", path, path,
		)),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
}

func (r *RentProposalDynamoRepository) Resolve(ctx context.Context, id string, status entities.ProposalStatus, resolvedAt time.Time) (entities.RentProposal, error) {
	return r.update(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String("SET #status = :next, #resolved_at = :resolved_at"),
		ConditionExpression: aws.String("#status = :submitted"),
		ExpressionAttributeNames: map[string]string{
			"#status":      "status",
			"#resolved_at": "resolved_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":next":        &types.AttributeValueMemberS{Value: string(status)},
			":submitted":   &types.AttributeValueMemberS{Value: string(entities.ProposalStatusSubmitted)},
			":resolved_at": &types.AttributeValueMemberS{Value: resolvedAt.UTC().Format(time.RFC3339Nano)},
		},
	})
}

func (r *RentProposalDynamoRepository) update(ctx context.Context, id string, input *dynamodb.UpdateItemInput) (entities.RentProposal, error) {
	input.TableName = aws.String(r.tableName)
	input.Key = map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	input.ReturnValues = types.ReturnValueAllNew

	out, err := r.ddb.UpdateItem(ctx, input)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RentProposal{}, nil
		}
		return entities.RentProposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.RentProposal{}, nil
	}

	var it rentProposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RentProposal{}, err
	}
	return fromRentProposalItem(it), nil
}

func marshalAllocations(allocs []entities.Allocation) (types.AttributeValue, error) {
	items := make([]allocationItem, len(allocs))
	for i, a := range allocs {
		items[i] = toAllocationItem(a)
	}
	list, err := attributevalue.MarshalList(items)
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberL{Value: list}, nil
}

func toAllocationItem(a entities.Allocation) allocationItem {
	it := allocationItem{
		UserID:         a.UserID,
		Amount:         a.Amount.String(),
		ApprovalStatus: string(a.ApprovalStatus),
		DeclineReason:  a.DeclineReason,
	}
	if a.RespondedAt != nil {
		it.RespondedAt = a.RespondedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromAllocationItem(it allocationItem) entities.Allocation {
	amount, _ := decimal.NewFromString(it.Amount)
	a := entities.Allocation{
		UserID:         it.UserID,
		Amount:         amount,
		ApprovalStatus: entities.ApprovalStatus(it.ApprovalStatus),
		DeclineReason:  it.DeclineReason,
	}
	if it.RespondedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.RespondedAt); err == nil {
			a.RespondedAt = &t
		}
	}
	return a
}

func toRentProposalItem(p entities.RentProposal) rentProposalItem {
	it := rentProposalItem{
		ID:                  p.ID,
		HouseID:             p.HouseID,
		RentConfigurationID: p.RentConfigurationID,
		CreatedBy:           p.CreatedBy,
		Status:              string(p.Status),
		Allocations:         make([]allocationItem, len(p.Allocations)),
		CreatedAt:           p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	for i, a := range p.Allocations {
		it.Allocations[i] = toAllocationItem(a)
	}
	if p.SubmittedAt != nil {
		it.SubmittedAt = p.SubmittedAt.UTC().Format(time.RFC3339Nano)
	}
	if p.ResolvedAt != nil {
		it.ResolvedAt = p.ResolvedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromRentProposalItem(it rentProposalItem) entities.RentProposal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.RentProposal{
		ID:                  it.ID,
		HouseID:             it.HouseID,
		RentConfigurationID: it.RentConfigurationID,
		CreatedBy:           it.CreatedBy,
		Status:              entities.ProposalStatus(it.Status),
		Allocations:         make([]entities.Allocation, len(it.Allocations)),
		CreatedAt:           createdAt,
	}
	for i, a := range it.Allocations {
		p.Allocations[i] = fromAllocationItem(a)
	}
	if it.SubmittedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.SubmittedAt); err == nil {
			p.SubmittedAt = &t
		}
	}
	if it.ResolvedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ResolvedAt); err == nil {
			p.ResolvedAt = &t
		}
	}
	return p
}
