package repository

import (
	"context"
	"sort"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type identityItem struct {
	ID           int64  `dynamodbav:"id"`
	Username     string `dynamodbav:"username"`
	PasswordHash []byte `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// IdentityDynamoRepository persists identities in DynamoDB.
//
// Table requirements:
//   - users: PK id (number)
//   - unique_keys: PK key (string), holds "username#<name>" claims
//   - counters: PK name (string)
type IdentityDynamoRepository struct {
	ddb       dynamoAPI
	seq       sequence
	tableName string
}

var _ interfaces.IIdentityRepository = (*IdentityDynamoRepository)(nil)

func NewIdentityDynamoRepository(ddb *dynamodb.Client) *IdentityDynamoRepository {
	return newIdentityDynamoRepository(ddb)
}

func newIdentityDynamoRepository(ddb dynamoAPI) *IdentityDynamoRepository {
	return &IdentityDynamoRepository{
		ddb:       ddb,
		seq:       newSequence(ddb),
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func usernameKey(username string) string { return "username#" + username }

func (r *IdentityDynamoRepository) Create(ctx context.Context, identity entities.Identity) (entities.Identity, error) {
	id, err := r.seq.reserve(ctx, r.tableName, 1)
	if err != nil {
		return entities.Identity{}, err
	}
	identity.ID = id

	av, err := attributevalue.MarshalMap(toIdentityItem(identity))
	if err != nil {
		return entities.Identity{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			uniqueKeyPut(usernameKey(identity.Username), id),
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
			return entities.Identity{}, interfaces.ErrDuplicate
		}
		return entities.Identity{}, err
	}
	return identity, nil
}

func (r *IdentityDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Identity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Identity{}, err
	}
	if len(out.Item) == 0 {
		return entities.Identity{}, nil
	}
	var it identityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Identity{}, err
	}
	return fromIdentityItem(it), nil
}

func (r *IdentityDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Identity, error) {
	id, err := lookupUniqueKey(ctx, r.ddb, usernameKey(username))
	if err != nil || id == 0 {
		return entities.Identity{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *IdentityDynamoRepository) FirstByRole(ctx context.Context, role entities.Role) (entities.Identity, error) {
	all, err := r.List(ctx)
	if err != nil {
		return entities.Identity{}, err
	}
	for _, i := range all {
		if i.Role == role {
			return i, nil
		}
	}
	return entities.Identity{}, nil
}

// List scans the users table; the account population is small.
func (r *IdentityDynamoRepository) List(ctx context.Context) ([]entities.Identity, error) {
	var out []entities.Identity
	err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName), ConsistentRead: aws.Bool(true)}, func(item map[string]types.AttributeValue) error {
		var it identityItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return err
		}
		out = append(out, fromIdentityItem(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *IdentityDynamoRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		n += int64(page.Count)
	}
	return n, nil
}

func toIdentityItem(i entities.Identity) identityItem {
	return identityItem{
		ID:           i.ID,
		Username:     i.Username,
		PasswordHash: i.PasswordHash,
		Role:         string(i.Role),
		CreatedAt:    formatTime(i.CreatedAt),
	}
}

func fromIdentityItem(it identityItem) entities.Identity {
	return entities.Identity{
		ID:           it.ID,
		Username:     it.Username,
		PasswordHash: it.PasswordHash,
		Role:         entities.Role(it.Role),
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
