package tutorial

import (
	"chatbet-models/dynamo"
	"chatbet-models/validation"
)

// SortKey is the sort key of the tutorials catalogue row.
const SortKey = "tutorials"

// TutorialsDB is the persisted form of a tenant's tutorial catalogue.
type TutorialsDB struct {
	Tutorials
	dynamo.Keys
}

// FromMinimalDB builds an empty persisted catalogue for a company.
func FromMinimalDB(companyID string) *TutorialsDB {
	return &TutorialsDB{
		Tutorials: *FromMinimal(),
		Keys:      dynamo.Keys{PK: dynamo.CompanyKey(companyID), SK: SortKey},
	}
}

// NewDB wraps an existing catalogue with its table keys.
func NewDB(t *Tutorials, companyID string) *TutorialsDB {
	return &TutorialsDB{
		Tutorials: *t,
		Keys:      dynamo.Keys{PK: dynamo.CompanyKey(companyID), SK: SortKey},
	}
}

func (d *TutorialsDB) Validate() error {
	if err := validation.Struct(d.Keys); err != nil {
		return err
	}
	return d.Tutorials.Validate()
}

// Item projects the record into a DynamoDB attribute map.
func (d *TutorialsDB) Item() (dynamo.Item, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return dynamo.MarshalItem(d)
}

// FromItem rebuilds a validated record from a DynamoDB attribute map.
func FromItem(item dynamo.Item) (*TutorialsDB, error) {
	d := &TutorialsDB{}
	if err := dynamo.UnmarshalItem(item, d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
