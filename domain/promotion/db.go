package promotion

import (
	"chatbet-models/dynamo"
	"chatbet-models/validation"
)

// SortKey identifies promotion records inside a company partition.
const SortKey = "promotions_config"

// ConfigDB is the persistence projection of Config.
type ConfigDB struct {
	Config
	dynamo.Keys
}

// FromMinimalDB builds an empty promotions aggregate keyed for a
// company.
func FromMinimalDB(companyID string) (*ConfigDB, error) {
	return NewDB(*FromMinimal(), companyID)
}

// NewDB wraps an existing aggregate with table keys.
func NewDB(c Config, companyID string) (*ConfigDB, error) {
	d := &ConfigDB{
		Config: c,
		Keys:   dynamo.Keys{PK: dynamo.CompanyKey(companyID), SK: SortKey},
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *ConfigDB) Validate() error {
	if err := validation.Struct(d.Keys); err != nil {
		return err
	}
	return d.Config.Validate()
}

// Item flattens the record for storage.
func (d *ConfigDB) Item() (dynamo.Item, error) {
	return dynamo.MarshalItem(d)
}

// FromItem reconstructs a validated record from a stored item.
func FromItem(item dynamo.Item) (*ConfigDB, error) {
	d := &ConfigDB{}
	if err := dynamo.UnmarshalItem(item, d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
