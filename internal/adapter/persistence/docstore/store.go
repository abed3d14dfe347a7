// Package docstore is the single adapter every repository talks through. It
// translates create/set/update/remove/get/list/query-by-field operations into
// DynamoDB calls against named collections (one table per collection) and
// stamps createdAt/updatedAt on every write.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	// ErrNotFound is returned by Update when the document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists is returned by Create when the id is already taken.
	ErrAlreadyExists = errors.New("document already exists")
)

// Item is a schemaless document as stored: a field map keyed by attribute
// name. The document id always lives in the "id" attribute.
type Item = map[string]types.AttributeValue

// Attribute names match the field names the documents have always carried.
const (
	attrID        = "id"
	attrCreatedAt = "createdAt"
	attrUpdatedAt = "updatedAt"
)

// Store is the DynamoDB-backed document store.
//
// Table layout:
//   - one table per collection, named <prefix><collection>
//   - PK: id (string)
//   - equality queries run against a GSI named <field>-index
type Store struct {
	ddb    *dynamodb.Client
	prefix string
}

func New(ddb *dynamodb.Client, prefix string) *Store {
	return &Store{ddb: ddb, prefix: prefix}
}

func (s *Store) tableName(collection string) *string {
	return aws.String(s.prefix + collection)
}

// Create writes a new document, failing with ErrAlreadyExists when the id is
// taken. Both timestamps are stamped.
func (s *Store) Create(ctx context.Context, collection, id string, fields Item) error {
	item := cloneItem(fields)
	now := nowString()
	item[attrID] = &types.AttributeValueMemberS{Value: id}
	item[attrCreatedAt] = &types.AttributeValueMemberS{Value: now}
	item[attrUpdatedAt] = &types.AttributeValueMemberS{Value: now}

	_, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                s.tableName(collection),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": attrID},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update applies a partial field set to an existing document and returns the
// full updated item. ErrNotFound when the document is absent.
func (s *Store) Update(ctx context.Context, collection, id string, fields Item) (Item, error) {
	names := map[string]string{"#id": attrID, "#updated_at": attrUpdatedAt}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
	}

	setParts := []string{"#updated_at = :updated_at"}
	i := 0
	for field, value := range fields {
		if field == attrID || field == attrCreatedAt || field == attrUpdatedAt {
			continue
		}
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":f%d", i)
		names[nameKey] = field
		values[valueKey] = value
		setParts = append(setParts, fmt.Sprintf("%s = %s", nameKey, valueKey))
		i++
	}

	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 s.tableName(collection),
		Key:                       keyOf(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(setParts, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out.Attributes, nil
}

// Remove deletes a document. Deleting an absent document is not an error, so
// a retried cascade stays idempotent.
func (s *Store) Remove(ctx context.Context, collection, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: s.tableName(collection),
		Key:       keyOf(id),
	})
	return err
}

// GetOne reads one document. A nil item without error means absent; callers
// translate that into their own not-found handling.
func (s *Store) GetOne(ctx context.Context, collection, id string) (Item, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      s.tableName(collection),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

// List materializes the whole collection, newest first. Every list view works
// over the full result set; filtering and pagination happen in memory, which
// is deliberate at this domain's data volumes.
func (s *Store) List(ctx context.Context, collection string) ([]Item, error) {
	var items []Item
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         s.tableName(collection),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sortByCreatedAtDesc(items)
	return items, nil
}

// QueryEq returns documents whose field equals value, via the <field>-index
// GSI. The index itself is unordered; results are sorted newest first after
// receipt, mirroring how the views always sorted child collections.
func (s *Store) QueryEq(ctx context.Context, collection, field, value string) ([]Item, error) {
	var items []Item
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 s.tableName(collection),
			IndexName:                 aws.String(field + "-index"),
			KeyConditionExpression:    aws.String("#f = :v"),
			ExpressionAttributeNames:  map[string]string{"#f": field},
			ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sortByCreatedAtDesc(items)
	return items, nil
}

func keyOf(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrID: &types.AttributeValueMemberS{Value: id},
	}
}

func cloneItem(fields Item) Item {
	item := make(Item, len(fields)+3)
	for k, v := range fields {
		item[k] = v
	}
	return item
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func sortByCreatedAtDesc(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAtOf(items[i]) > createdAtOf(items[j])
	})
}

func createdAtOf(item Item) string {
	if v, ok := item[attrCreatedAt].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
