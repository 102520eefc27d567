// Package sportsbook models the provider-side configuration of a
// tenant: which sportsbook backs the site, its credentials, and the
// tournament hierarchy offered to bettors.
package sportsbook

import (
	"encoding/json"
	"fmt"
	"time"

	"chatbet-models/errors"
	"chatbet-models/legacy"
	"chatbet-models/validation"
)

// defaultOrder sorts unordered entries after every explicitly ordered
// one.
const defaultOrder = 999_999

type Competition struct {
	ID    string `json:"id" dynamodbav:"id" validate:"required"`
	Name  string `json:"name" dynamodbav:"name" validate:"required"`
	Order int    `json:"order" dynamodbav:"order"`
}

type Region struct {
	ID           string        `json:"id" dynamodbav:"id" validate:"required"`
	Name         *string       `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Competitions []Competition `json:"competitions" dynamodbav:"competitions" validate:"required,dive"`
	Order        int           `json:"order" dynamodbav:"order"`
}

type StakeType struct {
	ID    string  `json:"id" dynamodbav:"id" validate:"required"`
	Key   *string `json:"key,omitempty" dynamodbav:"key,omitempty"`
	Name  string  `json:"name" dynamodbav:"name" validate:"required"`
	Order int     `json:"order" dynamodbav:"order"`
}

type Tournament struct {
	SportID    string      `json:"sport_id" dynamodbav:"sport_id" validate:"required"`
	SportName  string      `json:"sport_name" dynamodbav:"sport_name" validate:"required"`
	MainMarket *string     `json:"main_market,omitempty" dynamodbav:"main_market,omitempty"`
	Regions    []Region    `json:"regions" dynamodbav:"regions" validate:"required,dive"`
	StakeTypes []StakeType `json:"stake_types" dynamodbav:"stake_types" validate:"omitempty,dive"`
	Order      int         `json:"order" dynamodbav:"order"`
}

// Config ties a named sportsbook to its provider credentials and
// tournament offer.
type Config struct {
	Sportbook   string         `json:"sportbook" dynamodbav:"sportbook" validate:"required"`
	Provider    ProviderConfig `json:"config" dynamodbav:"config"`
	Tournaments []Tournament   `json:"tournaments" dynamodbav:"tournaments" validate:"omitempty,dive"`

	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

func (c *Config) Validate() error {
	v := &errors.ValidationError{}
	if err := validation.Struct(c); err != nil {
		v.Merge("", err)
	}
	if err := c.Provider.Validate(); err != nil {
		v.Merge("config", err)
	}
	return v.OrNil()
}

// Touch refreshes the update timestamp.
func (c *Config) Touch() {
	c.UpdatedAt = time.Now().UTC()
}

// Normalize rewrites legacy sportsbook payload shapes in place:
// numeric last_state_epoch values become strings. Idempotent.
func Normalize(raw map[string]any) {
	cfg, ok := legacy.Section(raw, "config")
	if !ok {
		return
	}
	switch epoch := cfg["last_state_epoch"].(type) {
	case float64:
		cfg["last_state_epoch"] = fmt.Sprintf("%.0f", epoch)
	case json.Number:
		cfg["last_state_epoch"] = epoch.String()
	}
}

// Parse builds a validated Config from a raw payload, accepting legacy
// shapes and filling an absent tournament list with the default offer.
func Parse(data []byte) (*Config, error) {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewValidation("", "payload is not an object: "+err.Error())
	}
	Normalize(raw)
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.NewValidation("", err.Error())
	}
	c := &Config{}
	if err := validation.DecodeStrict(buf, c); err != nil {
		return nil, err
	}
	if _, ok := raw["tournaments"]; !ok {
		c.Tournaments = DefaultTournaments()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// PhoenixParams are the minimal inputs of a Phoenix factory call; zero
// values take documented defaults.
type PhoenixParams struct {
	ClusterAPIKey    string
	SecurityProtocol string
	BootstrapServers string
	GroupID          string
	Mechanisms       string
	ClusterAPISecret string
	OriginID         string
	URL              string
	BasicAuth        *BasicAuth
	LastStateEpoch   string
	IntegrationState string
	Tournaments      []Tournament
}

// FromMinimalPhoenix builds a valid Phoenix-backed configuration,
// defaulting URL to a placeholder and the tournament offer to the
// default set.
func FromMinimalPhoenix(p PhoenixParams) (*Config, error) {
	if p.URL == "" {
		p.URL = "https://placeholder.com/"
	}
	if p.BasicAuth == nil {
		p.BasicAuth = &BasicAuth{}
	}
	cfg := &PhoenixConfig{
		Provider:         ProviderPhoenix,
		ClusterAPIKey:    p.ClusterAPIKey,
		SecurityProtocol: p.SecurityProtocol,
		BootstrapServers: p.BootstrapServers,
		GroupID:          p.GroupID,
		Mechanisms:       p.Mechanisms,
		ClusterAPISecret: p.ClusterAPISecret,
		OriginID:         p.OriginID,
		URL:              p.URL,
		BasicAuth:        *p.BasicAuth,
		LastStateEpoch:   p.LastStateEpoch,
		IntegrationState: p.IntegrationState,
	}
	return newConfig("Phoenix", ProviderConfig{Phoenix: cfg}, p.Tournaments)
}

// Betsw3Params are the minimal inputs of a Betsw3 factory call; zero
// values take documented defaults.
type Betsw3Params struct {
	UserID      string
	SiteID      string
	PlatformID  string
	Language    string
	Source      string
	Currency    string
	AccessToken string
	URL         string
	Tournaments []Tournament
}

// FromMinimalBetsw3 builds a valid Betsw3-backed configuration with
// language/source/currency defaulting to en/web/USD.
func FromMinimalBetsw3(p Betsw3Params) (*Config, error) {
	if p.Language == "" {
		p.Language = "en"
	}
	if p.Source == "" {
		p.Source = "web"
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.URL == "" {
		p.URL = "https://placeholder.com/"
	}
	cfg := &Betsw3Config{
		Provider:    ProviderBetsw3,
		UserID:      p.UserID,
		SiteID:      p.SiteID,
		PlatformID:  p.PlatformID,
		Language:    p.Language,
		Source:      p.Source,
		Currency:    p.Currency,
		AccessToken: p.AccessToken,
		URL:         p.URL,
	}
	return newConfig("Betsw3", ProviderConfig{Betsw3: cfg}, p.Tournaments)
}

// DigitainParams are the minimal inputs of a Digitain factory call.
// Partner and client credentials are mandatory; URLs default to
// placeholders.
type DigitainParams struct {
	PartnerID       string
	ClientID        string
	ClientSecret    string
	TokenURL        string
	WebsocketURL    string
	ValidateUserURL string
	PlaceBetURL     string
	Tournaments     []Tournament
}

// FromMinimalDigitain builds a valid Digitain-backed configuration
// under the given sportsbook display name.
func FromMinimalDigitain(sportbook string, p DigitainParams) (*Config, error) {
	if p.TokenURL == "" {
		p.TokenURL = "https://placeholder.com/token"
	}
	if p.WebsocketURL == "" {
		p.WebsocketURL = "wss://placeholder.com/ws"
	}
	if p.ValidateUserURL == "" {
		p.ValidateUserURL = "https://placeholder.com/validate-user"
	}
	if p.PlaceBetURL == "" {
		p.PlaceBetURL = "https://placeholder.com/place-bet"
	}
	cfg := &DigitainConfig{
		Provider:        ProviderDigitain,
		PartnerID:       p.PartnerID,
		ClientID:        p.ClientID,
		ClientSecret:    p.ClientSecret,
		TokenURL:        p.TokenURL,
		WebsocketURL:    p.WebsocketURL,
		ValidateUserURL: p.ValidateUserURL,
		PlaceBetURL:     p.PlaceBetURL,
	}
	return newConfig(sportbook, ProviderConfig{Digitain: cfg}, p.Tournaments)
}

func newConfig(sportbook string, provider ProviderConfig, tournaments []Tournament) (*Config, error) {
	if tournaments == nil {
		tournaments = DefaultTournaments()
	}
	now := time.Now().UTC()
	c := &Config{
		Sportbook:   sportbook,
		Provider:    provider,
		Tournaments: tournaments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultTournaments is the baseline offer of a new sportsbook.
func DefaultTournaments() []Tournament {
	mainMarket := "result"
	europe := "Europe"
	return []Tournament{
		{
			SportID:    "soccer",
			SportName:  "soccer",
			MainMarket: &mainMarket,
			Regions: []Region{
				{
					ID:   "eu",
					Name: &europe,
					Competitions: []Competition{
						{ID: "1", Name: "UEFA Champions League", Order: defaultOrder},
						{ID: "2", Name: "Premier League", Order: defaultOrder},
					},
					Order: defaultOrder,
				},
			},
			StakeTypes: DefaultStakeTypes(),
			Order:      defaultOrder,
		},
	}
}

// DefaultStakeTypes is the baseline market list of a tournament.
func DefaultStakeTypes() []StakeType {
	return []StakeType{
		{ID: "1", Name: "Result", Order: defaultOrder},
		{ID: "2", Name: "Over/Under", Order: defaultOrder},
	}
}
