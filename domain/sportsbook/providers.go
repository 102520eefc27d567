package sportsbook

import (
	"encoding/json"
	"fmt"

	"chatbet-models/errors"
	"chatbet-models/validation"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Provider discriminators.
const (
	ProviderBetsw3   = "betsw3"
	ProviderDigitain = "digitain"
	ProviderPhoenix  = "phoenix"
)

// Betsw3Config holds the credentials of a Betsw3 integration. Field
// names keep the provider's camelCase wire casing.
type Betsw3Config struct {
	Provider    string `json:"provider" dynamodbav:"provider" validate:"required,eq=betsw3"`
	UserID      string `json:"userId" dynamodbav:"userId"`
	SiteID      string `json:"siteId" dynamodbav:"siteId"`
	PlatformID  string `json:"platformId" dynamodbav:"platformId"`
	Language    string `json:"language" dynamodbav:"language"`
	Source      string `json:"source" dynamodbav:"source"`
	Currency    string `json:"currency" dynamodbav:"currency"`
	AccessToken string `json:"access_token" dynamodbav:"access_token"`
	URL         string `json:"url" dynamodbav:"url" validate:"required,url"`
}

// DigitainConfig holds the credentials of a Digitain integration.
type DigitainConfig struct {
	Provider        string `json:"provider" dynamodbav:"provider" validate:"required,eq=digitain"`
	PartnerID       string `json:"partner_id" dynamodbav:"partner_id" validate:"required"`
	ClientID        string `json:"client_id" dynamodbav:"client_id" validate:"required"`
	ClientSecret    string `json:"client_secret" dynamodbav:"client_secret" validate:"required"`
	TokenURL        string `json:"token_url" dynamodbav:"token_url" validate:"required,url"`
	WebsocketURL    string `json:"websocket_url" dynamodbav:"websocket_url" validate:"required,url,startswith=wss"`
	ValidateUserURL string `json:"validate_user_url" dynamodbav:"validate_user_url" validate:"required,url"`
	PlaceBetURL     string `json:"place_bet_url" dynamodbav:"place_bet_url" validate:"required,url"`
}

// BasicAuth carries the HTTP basic credentials of the Phoenix bridge.
type BasicAuth struct {
	Username string `json:"username" dynamodbav:"username"`
	Password string `json:"password" dynamodbav:"password"`
}

// PhoenixConfig holds the event-stream credentials of a Phoenix
// integration. LastStateEpoch is a string on the wire; numeric legacy
// payloads are coerced by Normalize.
type PhoenixConfig struct {
	Provider         string    `json:"provider" dynamodbav:"provider" validate:"required,eq=phoenix"`
	ClusterAPIKey    string    `json:"cluster_api_key" dynamodbav:"cluster_api_key"`
	SecurityProtocol string    `json:"security_protocol" dynamodbav:"security_protocol"`
	BootstrapServers string    `json:"bootstrap_servers" dynamodbav:"bootstrap_servers"`
	GroupID          string    `json:"group_id" dynamodbav:"group_id"`
	Mechanisms       string    `json:"mechanisms" dynamodbav:"mechanisms"`
	ClusterAPISecret string    `json:"cluster_api_secret" dynamodbav:"cluster_api_secret"`
	OriginID         string    `json:"origin_id" dynamodbav:"origin_id"`
	URL              string    `json:"url" dynamodbav:"url" validate:"required,url"`
	BasicAuth        BasicAuth `json:"basic_auth" dynamodbav:"basic_auth"`
	LastStateEpoch   string    `json:"last_state_epoch" dynamodbav:"last_state_epoch"`
	IntegrationState string    `json:"integration_state" dynamodbav:"integration_state"`
}

// ProviderConfig is the provider one-of, discriminated on the wire by
// the "provider" field. Exactly one member is set.
type ProviderConfig struct {
	Betsw3   *Betsw3Config   `json:"-" dynamodbav:"-" validate:"-"`
	Digitain *DigitainConfig `json:"-" dynamodbav:"-" validate:"-"`
	Phoenix  *PhoenixConfig  `json:"-" dynamodbav:"-" validate:"-"`
}

func (p ProviderConfig) active() (any, error) {
	members := 0
	var member any
	if p.Betsw3 != nil {
		members++
		member = p.Betsw3
	}
	if p.Digitain != nil {
		members++
		member = p.Digitain
	}
	if p.Phoenix != nil {
		members++
		member = p.Phoenix
	}
	if members != 1 {
		return nil, errors.NewValidation("provider", "exactly one provider configuration must be set")
	}
	return member, nil
}

// Validate checks that exactly one member is set and that the active
// member's credentials are structurally sound.
func (p ProviderConfig) Validate() error {
	member, err := p.active()
	if err != nil {
		return err
	}
	return validation.Struct(member)
}

// Name reports the active provider discriminator, or "".
func (p ProviderConfig) Name() string {
	switch {
	case p.Betsw3 != nil:
		return ProviderBetsw3
	case p.Digitain != nil:
		return ProviderDigitain
	case p.Phoenix != nil:
		return ProviderPhoenix
	default:
		return ""
	}
}

func (p ProviderConfig) MarshalJSON() ([]byte, error) {
	member, err := p.active()
	if err != nil {
		return nil, err
	}
	return json.Marshal(member)
}

func (p *ProviderConfig) UnmarshalJSON(data []byte) error {
	var head struct {
		Provider string `json:"provider"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return errors.NewValidation("provider", "config must be an object: "+err.Error())
	}
	switch head.Provider {
	case ProviderBetsw3:
		cfg := &Betsw3Config{}
		if err := validation.DecodeStrict(data, cfg); err != nil {
			return err
		}
		*p = ProviderConfig{Betsw3: cfg}
		return nil
	case ProviderDigitain:
		cfg := &DigitainConfig{}
		if err := validation.DecodeStrict(data, cfg); err != nil {
			return err
		}
		*p = ProviderConfig{Digitain: cfg}
		return nil
	case ProviderPhoenix:
		cfg := &PhoenixConfig{}
		if err := validation.DecodeStrict(data, cfg); err != nil {
			return err
		}
		*p = ProviderConfig{Phoenix: cfg}
		return nil
	default:
		return errors.NewValidation("provider", fmt.Sprintf("unknown provider %q", head.Provider))
	}
}

func (p ProviderConfig) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	member, err := p.active()
	if err != nil {
		return nil, err
	}
	return attributevalue.Marshal(member)
}

func (p *ProviderConfig) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	m, ok := av.(*types.AttributeValueMemberM)
	if !ok {
		return errors.NewValidation("provider", "config must be a map attribute")
	}
	provider, ok := m.Value["provider"].(*types.AttributeValueMemberS)
	if !ok {
		return errors.NewValidation("provider", "required field is missing")
	}
	switch provider.Value {
	case ProviderBetsw3:
		cfg := &Betsw3Config{}
		if err := attributevalue.Unmarshal(av, cfg); err != nil {
			return err
		}
		*p = ProviderConfig{Betsw3: cfg}
		return nil
	case ProviderDigitain:
		cfg := &DigitainConfig{}
		if err := attributevalue.Unmarshal(av, cfg); err != nil {
			return err
		}
		*p = ProviderConfig{Digitain: cfg}
		return nil
	case ProviderPhoenix:
		cfg := &PhoenixConfig{}
		if err := attributevalue.Unmarshal(av, cfg); err != nil {
			return err
		}
		*p = ProviderConfig{Phoenix: cfg}
		return nil
	default:
		return errors.NewValidation("provider", fmt.Sprintf("unknown provider %q", provider.Value))
	}
}
