package repository

import (
	"context"
	"errors"
	"sort"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"
	budgetDetailsSequence   = "budget_details"
)

type budgetDetailItem struct {
	ID            int64   `dynamodbav:"id"`
	ItemType      string  `dynamodbav:"item_type"`
	ItemName      string  `dynamodbav:"item_name"`
	Specification string  `dynamodbav:"specification"`
	Unit          string  `dynamodbav:"unit"`
	Quantity      float64 `dynamodbav:"quantity"`
	UnitPrice     float64 `dynamodbav:"unit_price"`
	Amount        float64 `dynamodbav:"amount"`
}

type budgetItem struct {
	ID           int64              `dynamodbav:"id"`
	ProjectID    int64              `dynamodbav:"project_id"`
	ProjectName  string             `dynamodbav:"project_name"`
	CreatorID    int64              `dynamodbav:"creator_id"`
	CreatorName  string             `dynamodbav:"creator_name"`
	CreatedAt    string             `dynamodbav:"created_at"`
	Status       string             `dynamodbav:"status"`
	TotalAmount  float64            `dynamodbav:"total_amount"`
	ApproverID   *int64             `dynamodbav:"approver_id,omitempty"`
	ApproverName string             `dynamodbav:"approver_name,omitempty"`
	ApprovedAt   string             `dynamodbav:"approved_at,omitempty"`
	Details      []budgetDetailItem `dynamodbav:"details"`
}

// BudgetDynamoRepository persists budgets in DynamoDB.
//
// Table requirements:
//   - budgets: PK id (number)
//
// Details are stored inside the budget item, so a single PutItem writes the
// budget and all of its lines atomically. Project and creator names are
// copied in at creation.
type BudgetDynamoRepository struct {
	ddb       dynamoAPI
	seq       sequence
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return newBudgetDynamoRepository(ddb)
}

func newBudgetDynamoRepository(ddb dynamoAPI) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		seq:       newSequence(ddb),
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	id, err := r.seq.reserve(ctx, r.tableName, 1)
	if err != nil {
		return entities.Budget{}, err
	}
	b.ID = id

	if len(b.Details) > 0 {
		firstDetail, err := r.seq.reserve(ctx, budgetDetailsSequence, len(b.Details))
		if err != nil {
			return entities.Budget{}, err
		}
		for i := range b.Details {
			b.Details[i].ID = firstDetail + int64(i)
			b.Details[i].BudgetID = id
		}
	}

	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// List returns budget summaries without their details.
func (r *BudgetDynamoRepository) List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error) {
	var out []entities.Budget
	err := r.scan(ctx, func(b entities.Budget) {
		if filter.Status != nil && b.Status != *filter.Status {
			return
		}
		b.Details = nil
		out = append(out, b)
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateStatus reads the budget, applies mutate and writes the status and
// approval attributes back. Concurrent updates resolve as last writer wins.
func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id int64, mutate interfaces.BudgetMutation) (entities.Budget, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if current.ID == 0 {
		return entities.Budget{}, nil
	}
	if err := mutate(&current); err != nil {
		return entities.Budget{}, err
	}

	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		next := toBudgetItem(current)
		names := map[string]string{
			"#status":        "status",
			"#approver_id":   "approver_id",
			"#approver_name": "approver_name",
			"#approved_at":   "approved_at",
		}
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: next.Status},
		}
		if next.ApproverID == nil {
			return "SET #status = :status REMOVE #approver_id, #approver_name, #approved_at", vals, names
		}
		vals[":approver_id"] = numberAttr(*next.ApproverID)
		vals[":approver_name"] = &types.AttributeValueMemberS{Value: next.ApproverName}
		vals[":approved_at"] = &types.AttributeValueMemberS{Value: next.ApprovedAt}
		return "SET #status = :status, #approver_id = :approver_id, #approver_name = :approver_name, #approved_at = :approved_at", vals, names
	})
}

func (r *BudgetDynamoRepository) SumTotal(ctx context.Context, filter entities.BudgetTotalFilter) (float64, error) {
	total := 0.0
	err := r.scan(ctx, func(b entities.Budget) {
		if filter.Matches(b) {
			total += b.TotalAmount
		}
	})
	return total, err
}

func (r *BudgetDynamoRepository) scan(ctx context.Context, visit func(b entities.Budget)) error {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName), ConsistentRead: aws.Bool(true)}
	return scanAll(ctx, r.ddb, in, func(item map[string]types.AttributeValue) error {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return err
		}
		visit(fromBudgetItem(it))
		return nil
	})
}

func (r *BudgetDynamoRepository) update(
	ctx context.Context,
	id int64,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Budget, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}
	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	it := budgetItem{
		ID:           b.ID,
		ProjectID:    b.ProjectID,
		ProjectName:  b.ProjectName,
		CreatorID:    b.CreatorID,
		CreatorName:  b.CreatorName,
		CreatedAt:    formatTime(b.CreatedAt),
		Status:       string(b.Status),
		TotalAmount:  b.TotalAmount,
		ApproverID:   b.ApproverID,
		ApproverName: b.ApproverName,
		Details:      make([]budgetDetailItem, 0, len(b.Details)),
	}
	if b.ApprovedAt != nil {
		it.ApprovedAt = formatTime(*b.ApprovedAt)
	}
	for _, d := range b.Details {
		it.Details = append(it.Details, budgetDetailItem{
			ID:            d.ID,
			ItemType:      string(d.ItemType),
			ItemName:      d.ItemName,
			Specification: d.Specification,
			Unit:          d.Unit,
			Quantity:      d.Quantity,
			UnitPrice:     d.UnitPrice,
			Amount:        d.Amount,
		})
	}
	return it
}

func fromBudgetItem(it budgetItem) entities.Budget {
	b := entities.Budget{
		ID:           it.ID,
		ProjectID:    it.ProjectID,
		ProjectName:  it.ProjectName,
		CreatorID:    it.CreatorID,
		CreatorName:  it.CreatorName,
		CreatedAt:    parseTime(it.CreatedAt),
		Status:       entities.BudgetStatus(it.Status),
		TotalAmount:  it.TotalAmount,
		ApproverID:   it.ApproverID,
		ApproverName: it.ApproverName,
	}
	if it.ApprovedAt != "" {
		ts := parseTime(it.ApprovedAt)
		b.ApprovedAt = &ts
	}
	for _, d := range it.Details {
		b.Details = append(b.Details, entities.BudgetDetail{
			ID:            d.ID,
			BudgetID:      it.ID,
			ItemType:      entities.ItemType(d.ItemType),
			ItemName:      d.ItemName,
			Specification: d.Specification,
			Unit:          d.Unit,
			Quantity:      d.Quantity,
			UnitPrice:     d.UnitPrice,
			Amount:        d.Amount,
		})
	}
	return b
}
