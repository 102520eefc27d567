package sportsbook

import (
	"chatbet-models/dynamo"
	"chatbet-models/errors"
	"chatbet-models/validation"
)

// SortKey identifies sportsbook records inside a company partition.
const SortKey = "sportbook_config"

// ConfigDB is the persistence projection of Config.
type ConfigDB struct {
	Config
	dynamo.Keys
}

func (d *ConfigDB) Validate() error {
	v := &errors.ValidationError{}
	if err := validation.Struct(d); err != nil {
		v.Merge("", err)
	}
	if err := d.Provider.Validate(); err != nil {
		v.Merge("config", err)
	}
	return v.OrNil()
}

// NewDB wraps an existing configuration with table keys.
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

// FromMinimalPhoenixDB builds a Phoenix-backed configuration keyed for
// a company.
func FromMinimalPhoenixDB(companyID string, p PhoenixParams) (*ConfigDB, error) {
	base, err := FromMinimalPhoenix(p)
	if err != nil {
		return nil, err
	}
	return NewDB(*base, companyID)
}

// FromMinimalBetsw3DB builds a Betsw3-backed configuration keyed for a
// company.
func FromMinimalBetsw3DB(companyID string, p Betsw3Params) (*ConfigDB, error) {
	base, err := FromMinimalBetsw3(p)
	if err != nil {
		return nil, err
	}
	return NewDB(*base, companyID)
}

// FromMinimalDigitainDB builds a Digitain-backed configuration keyed
// for a company.
func FromMinimalDigitainDB(companyID, sportbook string, p DigitainParams) (*ConfigDB, error) {
	base, err := FromMinimalDigitain(sportbook, p)
	if err != nil {
		return nil, err
	}
	return NewDB(*base, companyID)
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
