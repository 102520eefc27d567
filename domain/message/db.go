package message

import (
	"chatbet-models/dynamo"
	"chatbet-models/validation"
)

// SortKey identifies template records inside a company partition.
const SortKey = "message_templates"

// TemplatesDB is the persistence projection of Templates.
type TemplatesDB struct {
	Templates
	dynamo.Keys
}

// FromMinimalDB builds the default template set keyed for a company.
func FromMinimalDB(companyID string) (*TemplatesDB, error) {
	base, err := FromMinimal()
	if err != nil {
		return nil, err
	}
	db := &TemplatesDB{
		Templates: *base,
		Keys:      dynamo.Keys{PK: dynamo.CompanyKey(companyID), SK: SortKey},
	}
	if err := db.Validate(); err != nil {
		return nil, err
	}
	return db, nil
}

// NewDB wraps an existing template set with table keys.
func NewDB(t Templates, companyID string) (*TemplatesDB, error) {
	db := &TemplatesDB{
		Templates: t,
		Keys:      dynamo.Keys{PK: dynamo.CompanyKey(companyID), SK: SortKey},
	}
	if err := db.Validate(); err != nil {
		return nil, err
	}
	return db, nil
}

func (d *TemplatesDB) Validate() error {
	return validation.Struct(d)
}

// Item flattens the record for storage.
func (d *TemplatesDB) Item() (dynamo.Item, error) {
	return dynamo.MarshalItem(d)
}

// FromItem reconstructs a validated record from a stored item.
func FromItem(item dynamo.Item) (*TemplatesDB, error) {
	d := &TemplatesDB{}
	if err := dynamo.UnmarshalItem(item, d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
