// Package money provides lossless monetary amounts for bet limits.
// Amounts are stored as decimals, never floats, and serialize to a
// decimal string (JSON) or a number attribute (DynamoDB).
package money

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Amount is an immutable decimal amount. The zero value is 0.
type Amount struct {
	dec decimal.Decimal
}

// NewAmount parses a decimal string. The amount is normalized so that
// equal values share one representation ("10.00" and "10" are the same
// Amount), which keeps flatten/reconstruct round trips exact.
func NewAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return normalized(d), nil
}

// MustAmount is for defaults and tests with known-good literals.
func MustAmount(s string) Amount {
	a, err := NewAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// NewAmountFromFloat accepts numeric payload values. Callers that care
// about exactness should send amounts as strings.
func NewAmountFromFloat(f float64) Amount {
	return normalized(decimal.NewFromFloat(f))
}

func normalized(d decimal.Decimal) Amount {
	canon, _ := decimal.NewFromString(d.String())
	return Amount{dec: canon}
}

func (a Amount) String() string { return a.dec.String() }

func (a Amount) Decimal() decimal.Decimal { return a.dec }

func (a Amount) Equal(b Amount) bool { return a.dec.Equal(b.dec) }

func (a Amount) Cmp(b Amount) int { return a.dec.Cmp(b.dec) }

func (a Amount) IsNegative() bool { return a.dec.IsNegative() }

func (a Amount) IsPositive() bool { return a.dec.IsPositive() }

func (a Amount) IsZero() bool { return a.dec.IsZero() }

// MarshalJSON emits the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.dec.String() + `"`), nil
}

// UnmarshalJSON accepts both a JSON number and a decimal string, so
// numeric legacy payloads keep working.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	parsed, err := NewAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalDynamoDBAttributeValue projects the amount as a number
// attribute, preserving the full decimal string.
func (a Amount) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: a.dec.String()}, nil
}

// UnmarshalDynamoDBAttributeValue accepts number or string attributes.
func (a *Amount) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		parsed, err := NewAmount(v.Value)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case *types.AttributeValueMemberS:
		parsed, err := NewAmount(v.Value)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("amount: unsupported attribute type %T", av)
	}
}
