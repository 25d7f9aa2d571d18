package repository

import (
	"context"
	"sort"
	"time"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"
	projectDateLayout        = "2006-01-02"
)

type projectItem struct {
	ID          int64  `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	StartDate   string `dynamodbav:"start_date"`
	ManagerID   int64  `dynamodbav:"manager_id"`
	ManagerName string `dynamodbav:"manager_name"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ProjectDynamoRepository persists projects in DynamoDB.
//
// Table requirements:
//   - projects: PK id (number)
//   - unique_keys: PK key (string), holds "project#<name>" claims
//
// Identities are immutable, so the manager's username is stored with the
// project instead of being joined on read.
type ProjectDynamoRepository struct {
	ddb       dynamoAPI
	seq       sequence
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return newProjectDynamoRepository(ddb)
}

func newProjectDynamoRepository(ddb dynamoAPI) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		seq:       newSequence(ddb),
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func projectNameKey(name string) string { return "project#" + name }

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	id, err := r.seq.reserve(ctx, r.tableName, 1)
	if err != nil {
		return entities.Project{}, err
	}
	p.ID = id

	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			uniqueKeyPut(projectNameKey(p.Name), id),
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if isUniqueKeyConflict(err) {
			return entities.Project{}, interfaces.ErrDuplicate
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) GetByName(ctx context.Context, name string) (entities.Project, error) {
	id, err := lookupUniqueKey(ctx, r.ddb, projectNameKey(name))
	if err != nil || id == 0 {
		return entities.Project{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	var out []entities.Project
	err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName), ConsistentRead: aws.Bool(true)}, func(item map[string]types.AttributeValue) error {
		var it projectItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return err
		}
		out = append(out, fromProjectItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:          p.ID,
		Name:        p.Name,
		StartDate:   p.StartDate.UTC().Format(projectDateLayout),
		ManagerID:   p.ManagerID,
		ManagerName: p.ManagerName,
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	start, _ := time.Parse(projectDateLayout, it.StartDate)
	return entities.Project{
		ID:          it.ID,
		Name:        it.Name,
		StartDate:   start,
		ManagerID:   it.ManagerID,
		ManagerName: it.ManagerName,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
