package site

import (
	"time"

	"chatbet-models/dynamo"
	"chatbet-models/errors"
	"chatbet-models/validation"
)

// SortKey identifies site configuration records inside a company
// partition.
const SortKey = "site_config"

// SiteConfigDB is the persistence projection of SiteConfig.
type SiteConfigDB struct {
	SiteConfig
	dynamo.Keys
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

func (d *SiteConfigDB) Validate() error {
	d.Locale.normalize()
	v := &errors.ValidationError{}
	if err := validation.Struct(d); err != nil {
		v.Merge("", err)
	}
	if err := d.Limits.Validate(); err != nil {
		v.Merge("limits", err)
	}
	if err := d.Integrations.validateUnions(); err != nil {
		v.Merge("integrations", err)
	}
	return v.OrNil()
}

// Touch refreshes the update timestamp.
func (d *SiteConfigDB) Touch() {
	d.UpdatedAt = time.Now().UTC()
}

// DefaultFactoryDB builds the default configuration keyed for a
// company.
func DefaultFactoryDB(siteName, companyID string) (*SiteConfigDB, error) {
	base, err := DefaultFactory(siteName, companyID)
	if err != nil {
		return nil, err
	}
	return NewDB(*base, companyID)
}

// NewDB wraps an existing configuration with table keys.
func NewDB(c SiteConfig, companyID string) (*SiteConfigDB, error) {
	now := time.Now().UTC()
	d := &SiteConfigDB{
		SiteConfig: c,
		Keys:       dynamo.Keys{PK: dynamo.CompanyKey(companyID), SK: SortKey},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Item flattens the record for storage.
func (d *SiteConfigDB) Item() (dynamo.Item, error) {
	return dynamo.MarshalItem(d)
}

// FromItem reconstructs a validated record from a stored item.
func FromItem(item dynamo.Item) (*SiteConfigDB, error) {
	d := &SiteConfigDB{}
	if err := dynamo.UnmarshalItem(item, d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
