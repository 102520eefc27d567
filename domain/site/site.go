// Package site models the per-tenant sportsbook site configuration:
// identity, locale, feature switches, money limits, and the messaging
// integrations the bot runtime connects through.
package site

import (
	"encoding/json"
	"strings"

	"chatbet-models/errors"
	"chatbet-models/money"
	"chatbet-models/validation"
)

// OddType selects how odds are displayed to the user.
type OddType string

const (
	OddTypeAmerican OddType = "american"
	OddTypeDecimal  OddType = "decimal"
)

// ValidationMethod selects how a member proves account ownership.
type ValidationMethod string

const (
	ValidationPhone ValidationMethod = "phone"
	ValidationEmail ValidationMethod = "email"
)

// Version selects the platform generation a site runs on.
type Version string

const (
	VersionV1 Version = "v1"
	VersionV2 Version = "v2"
)

// Identity names the site and its owning company.
type Identity struct {
	SiteName  string `json:"site_name" dynamodbav:"site_name" validate:"required"`
	CompanyID string `json:"company_id" dynamodbav:"company_id" validate:"required"`
	SiteURL   string `json:"site_url" dynamodbav:"site_url" validate:"required,url"`
}

// LocaleConfig carries currency, language and country settings.
// Currency and country are normalized to upper case, language to lower
// case, before validation.
type LocaleConfig struct {
	Currency       string `json:"currency" dynamodbav:"currency" validate:"required,len=3"`
	CurrencySymbol string `json:"currency_symbol" dynamodbav:"currency_symbol" validate:"required,min=1,max=3"`
	Language       string `json:"language" dynamodbav:"language" validate:"required,min=2,max=5"`
	Country        string `json:"country" dynamodbav:"country" validate:"required,len=2"`
	CountryCode    string `json:"country_code" dynamodbav:"country_code" validate:"required,min=2,max=4"`
	TimeZone       string `json:"time_zone" dynamodbav:"time_zone" validate:"required"`
}

func (l *LocaleConfig) normalize() {
	l.Currency = strings.ToUpper(l.Currency)
	l.Country = strings.ToUpper(l.Country)
	l.Language = strings.ToLower(l.Language)
}

// FeaturesConfig holds the per-site feature switches.
type FeaturesConfig struct {
	OddType            OddType          `json:"odd_type" dynamodbav:"odd_type" validate:"required,oneof=american decimal"`
	Validation         ValidationMethod `json:"validation" dynamodbav:"validation" validate:"required,oneof=phone email"`
	Combos             bool             `json:"combos" dynamodbav:"combos"`
	Version            Version          `json:"chatbet_version" dynamodbav:"chatbet_version" validate:"required,oneof=v1 v2"`
	MultigamesResponse *bool            `json:"multigames_response" dynamodbav:"multigames_response"`
}

// MoneyLimits bounds the stake of a single bet.
type MoneyLimits struct {
	MinBetAmount money.Amount `json:"min_bet_amount" dynamodbav:"min_bet_amount"`
	MaxBetAmount money.Amount `json:"max_bet_amount" dynamodbav:"max_bet_amount"`
}

// Validate enforces min >= 0, max > 0 and max > min.
func (m MoneyLimits) Validate() error {
	v := &errors.ValidationError{}
	if m.MinBetAmount.IsNegative() {
		v.Add("min_bet_amount", "must be greater than or equal to 0")
	}
	if !m.MaxBetAmount.IsPositive() {
		v.Add("max_bet_amount", "must be greater than 0")
	}
	if m.MaxBetAmount.Cmp(m.MinBetAmount) <= 0 {
		v.Add("max_bet_amount", "must be greater than min_bet_amount")
	}
	return v.OrNil()
}

// TestConfig holds the credentials of the synthetic test member used
// by smoke checks against a live site.
type TestConfig struct {
	PhoneNumber *string `json:"phone_number,omitempty" dynamodbav:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty" dynamodbav:"email,omitempty"`
	OTP         *string `json:"otp,omitempty" dynamodbav:"otp,omitempty"`
	UserKey     *string `json:"user_key,omitempty" dynamodbav:"user_key,omitempty"`
}

// SiteConfig is the aggregate site configuration of one tenant.
type SiteConfig struct {
	Identity     Identity       `json:"identity" dynamodbav:"identity"`
	Locale       LocaleConfig   `json:"locale" dynamodbav:"locale"`
	Features     FeaturesConfig `json:"features" dynamodbav:"features"`
	Limits       MoneyLimits    `json:"limits" dynamodbav:"limits"`
	Test         *TestConfig    `json:"test,omitempty" dynamodbav:"test,omitempty"`
	Integrations Integrations   `json:"integrations" dynamodbav:"integrations"`
}

// Validate normalizes the locale then checks every structural and
// cross-field constraint.
func (c *SiteConfig) Validate() error {
	c.Locale.normalize()
	v := &errors.ValidationError{}
	if err := validation.Struct(c); err != nil {
		v.Merge("", err)
	}
	if err := c.Limits.Validate(); err != nil {
		v.Merge("limits", err)
	}
	if err := c.Integrations.validateUnions(); err != nil {
		v.Merge("integrations", err)
	}
	return v.OrNil()
}

// Documented defaults used when a section is absent from the payload.

func DefaultLocale() LocaleConfig {
	return LocaleConfig{
		Currency:       "USD",
		CurrencySymbol: "$",
		Language:       "en",
		Country:        "US",
		CountryCode:    "+1",
		TimeZone:       "UTC",
	}
}

func DefaultFeatures() FeaturesConfig {
	multigames := false
	return FeaturesConfig{
		OddType:            OddTypeDecimal,
		Validation:         ValidationEmail,
		Combos:             false,
		Version:            VersionV1,
		MultigamesResponse: &multigames,
	}
}

func DefaultLimits() MoneyLimits {
	return MoneyLimits{
		MinBetAmount: money.MustAmount("1.00"),
		MaxBetAmount: money.MustAmount("1000.00"),
	}
}

func DefaultTest() *TestConfig {
	empty := ""
	otp := "123456"
	userKey := "testuser"
	return &TestConfig{PhoneNumber: &empty, Email: &empty, OTP: &otp, UserKey: &userKey}
}

// DefaultFactory builds a fully valid configuration for a new site
// from its identity alone; every other section takes the documented
// defaults (placeholder integration URLs, baseline features, 1..1000
// bet limits).
func DefaultFactory(siteName, companyID string) (*SiteConfig, error) {
	c := &SiteConfig{
		Identity: Identity{
			SiteName:  siteName,
			CompanyID: companyID,
			SiteURL:   "https://default.url",
		},
		Locale:       DefaultLocale(),
		Features:     DefaultFeatures(),
		Limits:       DefaultLimits(),
		Test:         DefaultTest(),
		Integrations: DefaultIntegrations(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse builds a validated SiteConfig from a raw payload, accepting
// legacy shapes and filling absent sections with the documented
// defaults.
func Parse(data []byte) (*SiteConfig, error) {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewValidation("", "payload is not an object: "+err.Error())
	}
	Normalize(raw)
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.NewValidation("", err.Error())
	}
	c := &SiteConfig{}
	if err := validation.DecodeStrict(buf, c); err != nil {
		return nil, err
	}
	if _, ok := raw["locale"]; !ok {
		c.Locale = DefaultLocale()
	}
	if _, ok := raw["features"]; !ok {
		c.Features = DefaultFeatures()
	}
	if _, ok := raw["limits"]; !ok {
		c.Limits = DefaultLimits()
	}
	if _, ok := raw["test"]; !ok {
		c.Test = DefaultTest()
	}
	if _, ok := raw["integrations"]; !ok {
		c.Integrations = DefaultIntegrations()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
