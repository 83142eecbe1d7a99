package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gateway_bridge/internal/domain/entities"
	"gateway_bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName   = "transactions"
	transactionsAuthorizationIndex = "authorization-index"
)

// DynamoDBAPI is the subset of *dynamodb.Client the journal uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type transactionItem struct {
	ID            string `dynamodbav:"id"`
	Gateway       string `dynamodbav:"gateway"`
	Action        string `dynamodbav:"action"`
	Date          string `dynamodbav:"date"`
	Success       bool   `dynamodbav:"success"`
	Message       string `dynamodbav:"message"`
	Authorization string `dynamodbav:"authorization,omitempty"`
	Reference     string `dynamodbav:"reference,omitempty"`
	Amount        string `dynamodbav:"amount,omitempty"`
	Currency      string `dynamodbav:"currency,omitempty"`
	Test          bool   `dynamodbav:"test"`
	ParamsRaw     string `dynamodbav:"params_raw,omitempty"`
}

// TransactionJournalDynamoRepository persists TransactionRecord entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: authorization-index (PK: authorization)
type TransactionJournalDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ITransactionJournalRepository = (*TransactionJournalDynamoRepository)(nil)

// NewTransactionJournalDynamoRepository writes to table, "transactions" when empty.
func NewTransactionJournalDynamoRepository(ddb DynamoDBAPI, table string) *TransactionJournalDynamoRepository {
	table = strings.TrimSpace(table)
	if table == "" {
		table = defaultTransactionsTableName
	}
	return &TransactionJournalDynamoRepository{ddb: ddb, tableName: table}
}

func (r *TransactionJournalDynamoRepository) Append(ctx context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error) {
	it, err := toTransactionItem(rec)
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TransactionRecord{}, err
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
		return entities.TransactionRecord{}, err
	}
	return rec, nil
}

func (r *TransactionJournalDynamoRepository) GetByID(ctx context.Context, id string) (entities.TransactionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.TransactionRecord{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TransactionRecord{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionJournalDynamoRepository) ListByAuthorization(ctx context.Context, authorization string) ([]entities.TransactionRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsAuthorizationIndex),
		KeyConditionExpression: aws.String("#auth = :auth"),
		ExpressionAttributeNames: map[string]string{
			"#auth": "authorization",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":auth": &types.AttributeValueMemberS{Value: authorization},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.TransactionRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

// Params are stored as raw JSON: gateway replies carry nil values and mixed types that
// do not round-trip through attribute maps.
func toTransactionItem(rec entities.TransactionRecord) (transactionItem, error) {
	it := transactionItem{
		ID:            rec.ID,
		Gateway:       rec.Gateway,
		Action:        string(rec.Action),
		Date:          rec.Date.UTC().Format(time.RFC3339Nano),
		Success:       rec.Success,
		Message:       rec.Message,
		Authorization: rec.Authorization,
		Reference:     rec.Reference,
		Amount:        rec.Amount,
		Currency:      rec.Currency,
		Test:          rec.Test,
	}
	if len(rec.Params) > 0 {
		b, err := json.Marshal(rec.Params)
		if err != nil {
			return transactionItem{}, err
		}
		it.ParamsRaw = string(b)
	}
	return it, nil
}

func fromTransactionItem(it transactionItem) entities.TransactionRecord {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	rec := entities.TransactionRecord{
		ID:            it.ID,
		Gateway:       it.Gateway,
		Action:        entities.Action(it.Action),
		Date:          dt,
		Success:       it.Success,
		Message:       it.Message,
		Authorization: it.Authorization,
		Reference:     it.Reference,
		Amount:        it.Amount,
		Currency:      it.Currency,
		Test:          it.Test,
	}
	if it.ParamsRaw != "" {
		_ = json.Unmarshal([]byte(it.ParamsRaw), &rec.Params)
	}
	return rec
}
