package repository

import (
	"time"

	"clicknova_admin/internal/adapter/persistence/docstore"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// marshalFields marshals an item struct into the attribute map handed to the
// docstore. The docstore owns id/createdAt/updatedAt, so they are stripped
// here regardless of what the struct carried.
func marshalFields(item any) (docstore.Item, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, err
	}
	delete(av, "id")
	delete(av, "createdAt")
	delete(av, "updatedAt")
	return av, nil
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
