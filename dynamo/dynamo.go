// Package dynamo projects validated records into DynamoDB items.
// A projection is a pure flattening: the record is marshalled into a
// map of attribute values keyed by partition and sort key, and a value
// reconstructed from that item equals the original field-for-field.
package dynamo

import (
	"chatbet-models/errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is one flattened record ready for a key-value store client.
type Item = map[string]types.AttributeValue

// Keys carries the table keys of a DB record variant. Every DB variant
// embeds it; both keys are mandatory.
type Keys struct {
	PK string `json:"PK" dynamodbav:"PK" validate:"required"`
	SK string `json:"SK" dynamodbav:"SK" validate:"required"`
}

// CompanyKey derives the partition key of a tenant.
func CompanyKey(companyID string) string {
	return "company#" + companyID
}

// MarshalItem flattens v into an item. Field encodings: timestamps as
// RFC 3339 strings, URLs and enums as plain strings, monetary amounts
// as number attributes.
func MarshalItem(v any) (Item, error) {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return nil, errors.NewValidation("", "cannot flatten record: "+err.Error())
	}
	return item, nil
}

// UnmarshalItem reconstructs a record from a flattened item. Callers
// validate the result before use.
func UnmarshalItem(item Item, v any) error {
	if err := attributevalue.UnmarshalMap(item, v); err != nil {
		return errors.NewValidation("", "cannot reconstruct record: "+err.Error())
	}
	return nil
}
