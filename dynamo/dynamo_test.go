package dynamo

import (
	"testing"
	"time"

	"chatbet-models/validation"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

type record struct {
	Keys
	Title     string    `dynamodbav:"title"`
	Count     int       `dynamodbav:"count"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

func TestCompanyKey(t *testing.T) {
	req := require.New(t)
	req.Equal("company#betvip", CompanyKey("betvip"))
}

func TestKeys_Required(t *testing.T) {
	req := require.New(t)

	req.NoError(validation.Struct(Keys{PK: "company#betvip", SK: "site_config"}))
	req.Error(validation.Struct(Keys{PK: "company#betvip"}))
	req.Error(validation.Struct(Keys{SK: "site_config"}))
}

func TestMarshalItem_RoundTrip(t *testing.T) {
	req := require.New(t)

	original := record{
		Keys:      Keys{PK: CompanyKey("betvip"), SK: "sample"},
		Title:     "Bienvenido",
		Count:     3,
		CreatedAt: time.Now().UTC(),
	}

	item, err := MarshalItem(original)
	req.NoError(err)

	pk, ok := item["PK"].(*types.AttributeValueMemberS)
	req.True(ok)
	req.Equal("company#betvip", pk.Value)

	var restored record
	req.NoError(UnmarshalItem(item, &restored))
	req.Equal(original, restored)
}
