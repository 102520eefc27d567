package site

import (
	"encoding/json"
	"fmt"

	"chatbet-models/errors"
	"chatbet-models/legacy"
	"chatbet-models/validation"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// WhatsApp provider discriminators.
const (
	ProviderWhapi = "whapi"
	ProviderMeta  = "meta"
)

type TelegramConfig struct {
	Token      string  `json:"token" dynamodbav:"token"`
	WebhookURL *string `json:"webhook_url,omitempty" dynamodbav:"webhook_url,omitempty" validate:"omitempty,url"`
}

type TwilioConfig struct {
	Enabled          bool   `json:"enabled" dynamodbav:"enabled"`
	VerifyServiceSID string `json:"verify_service_sid" dynamodbav:"verify_service_sid"`
	AuthToken        string `json:"auth_token" dynamodbav:"auth_token"`
	AccountSID       string `json:"account_sid" dynamodbav:"account_sid"`
}

type MeilisearchIndexPaths struct {
	Fixtures string `json:"fixtures" dynamodbav:"fixtures" validate:"required"`
	Sports   string `json:"sports" dynamodbav:"sports" validate:"required"`
}

type MeilisearchConfig struct {
	URL   string                `json:"url" dynamodbav:"url" validate:"required,url"`
	Token string                `json:"token" dynamodbav:"token"`
	Index MeilisearchIndexPaths `json:"index" dynamodbav:"index"`
}

// WhapiConfig connects WhatsApp through the WHAPI provider.
type WhapiConfig struct {
	Provider string `json:"provider" dynamodbav:"provider" validate:"required,eq=whapi"`
	APIURL   string `json:"api_url" dynamodbav:"api_url" validate:"required,url"`
	Token    string `json:"token" dynamodbav:"token"`
}

// MetaConfig connects WhatsApp through the official Meta Cloud API.
type MetaConfig struct {
	Provider        string  `json:"provider" dynamodbav:"provider" validate:"required,eq=meta"`
	PhoneID         string  `json:"phone_id" dynamodbav:"phone_id" validate:"required"`
	AuthToken       string  `json:"auth_token" dynamodbav:"auth_token" validate:"required"`
	ConnectionToken string  `json:"connection_token" dynamodbav:"connection_token" validate:"required"`
	AppID           *string `json:"app_id,omitempty" dynamodbav:"app_id,omitempty"`
	WebhookURL      *string `json:"webhook_url,omitempty" dynamodbav:"webhook_url,omitempty" validate:"omitempty,url"`
}

// WhatsAppConfig is the provider one-of, discriminated on the wire by
// the "provider" field. Exactly one member is set.
type WhatsAppConfig struct {
	Whapi *WhapiConfig `json:"-" dynamodbav:"-" validate:"-"`
	Meta  *MetaConfig  `json:"-" dynamodbav:"-" validate:"-"`
}

// NewWhapi builds the WHAPI member with its discriminator set.
func NewWhapi(apiURL, token string) WhatsAppConfig {
	return WhatsAppConfig{Whapi: &WhapiConfig{Provider: ProviderWhapi, APIURL: apiURL, Token: token}}
}

// NewMeta builds the Meta member with its discriminator set.
func NewMeta(phoneID, authToken, connectionToken string) WhatsAppConfig {
	return WhatsAppConfig{Meta: &MetaConfig{
		Provider:        ProviderMeta,
		PhoneID:         phoneID,
		AuthToken:       authToken,
		ConnectionToken: connectionToken,
	}}
}

func (w WhatsAppConfig) active() (any, error) {
	switch {
	case w.Whapi != nil && w.Meta != nil:
		return nil, errors.NewValidation("provider", "exactly one provider configuration must be set")
	case w.Whapi != nil:
		return w.Whapi, nil
	case w.Meta != nil:
		return w.Meta, nil
	default:
		return nil, errors.NewValidation("provider", "exactly one provider configuration must be set")
	}
}

// Validate checks that exactly one member is set and that the active
// member is structurally sound.
func (w WhatsAppConfig) Validate() error {
	member, err := w.active()
	if err != nil {
		return err
	}
	return validation.Struct(member)
}

func (w WhatsAppConfig) MarshalJSON() ([]byte, error) {
	member, err := w.active()
	if err != nil {
		return nil, err
	}
	return json.Marshal(member)
}

func (w *WhatsAppConfig) UnmarshalJSON(data []byte) error {
	var head struct {
		Provider string `json:"provider"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return errors.NewValidation("provider", "config must be an object: "+err.Error())
	}
	switch head.Provider {
	case ProviderWhapi:
		cfg := &WhapiConfig{}
		if err := validation.DecodeStrict(data, cfg); err != nil {
			return err
		}
		*w = WhatsAppConfig{Whapi: cfg}
		return nil
	case ProviderMeta:
		cfg := &MetaConfig{}
		if err := validation.DecodeStrict(data, cfg); err != nil {
			return err
		}
		*w = WhatsAppConfig{Meta: cfg}
		return nil
	default:
		return errors.NewValidation("provider", fmt.Sprintf("unknown provider %q", head.Provider))
	}
}

func (w WhatsAppConfig) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	member, err := w.active()
	if err != nil {
		return nil, err
	}
	return attributevalue.Marshal(member)
}

func (w *WhatsAppConfig) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	m, ok := av.(*types.AttributeValueMemberM)
	if !ok {
		return errors.NewValidation("provider", "config must be a map attribute")
	}
	provider, ok := m.Value["provider"].(*types.AttributeValueMemberS)
	if !ok {
		return errors.NewValidation("provider", "required field is missing")
	}
	switch provider.Value {
	case ProviderWhapi:
		cfg := &WhapiConfig{}
		if err := attributevalue.Unmarshal(av, cfg); err != nil {
			return err
		}
		*w = WhatsAppConfig{Whapi: cfg}
		return nil
	case ProviderMeta:
		cfg := &MetaConfig{}
		if err := attributevalue.Unmarshal(av, cfg); err != nil {
			return err
		}
		*w = WhatsAppConfig{Meta: cfg}
		return nil
	default:
		return errors.NewValidation("provider", fmt.Sprintf("unknown provider %q", provider.Value))
	}
}

// WhatsAppIntegration wraps the provider config with an on/off switch.
type WhatsAppIntegration struct {
	Enabled bool           `json:"enabled" dynamodbav:"enabled"`
	Config  WhatsAppConfig `json:"config" dynamodbav:"config"`
}

// Integrations groups the optional third-party connections of a site.
type Integrations struct {
	Telegram    *TelegramConfig      `json:"telegram,omitempty" dynamodbav:"telegram,omitempty"`
	Twilio      *TwilioConfig        `json:"twilio,omitempty" dynamodbav:"twilio,omitempty"`
	Meilisearch *MeilisearchConfig   `json:"meilisearch,omitempty" dynamodbav:"meilisearch,omitempty"`
	WhatsApp    *WhatsAppIntegration `json:"whatsapp,omitempty" dynamodbav:"whatsapp,omitempty"`
}

// validateUnions enforces the one-of constraints tags cannot express.
func (i Integrations) validateUnions() error {
	if i.WhatsApp == nil {
		return nil
	}
	if err := i.WhatsApp.Config.Validate(); err != nil {
		v := &errors.ValidationError{}
		return v.Merge("whatsapp.config", err).OrNil()
	}
	return nil
}

// Normalize rewrites legacy site payload shapes in place. The retired
// "whapi" integration key maps to "whatsapp"; bare provider configs
// are wrapped into an enabled integration. Idempotent.
func Normalize(raw map[string]any) {
	ints, ok := legacy.Section(raw, "integrations")
	if !ok {
		return
	}
	if twilio, ok := legacy.Section(ints, "twilio"); ok {
		legacy.EnsureDefault(twilio, "enabled", true)
	}
	if _, hasNew := ints["whatsapp"]; !hasNew {
		if whapi, hasOld := ints["whapi"]; hasOld {
			delete(ints, "whapi")
			switch v := whapi.(type) {
			case nil:
				ints["whatsapp"] = nil
			case map[string]any:
				_, wrapped := v["enabled"]
				_, hasConfig := v["config"]
				if wrapped || hasConfig {
					ints["whatsapp"] = v
				} else {
					ints["whatsapp"] = map[string]any{"enabled": true, "config": v}
				}
			default:
				ints["whatsapp"] = v
			}
		}
	}
	if whatsapp, ok := legacy.Section(ints, "whatsapp"); ok {
		legacy.EnsureDefault(whatsapp, "enabled", true)
		if cfg, ok := legacy.Section(whatsapp, "config"); ok {
			legacy.EnsureDefault(cfg, "provider", ProviderWhapi)
		}
	}
}

// DefaultIntegrations returns the placeholder integration set used for
// freshly provisioned sites.
func DefaultIntegrations() Integrations {
	return Integrations{
		Telegram: &TelegramConfig{Token: ""},
		Twilio:   &TwilioConfig{Enabled: true},
		WhatsApp: &WhatsAppIntegration{
			Enabled: true,
			Config:  NewWhapi("https://placeholder.com", ""),
		},
		Meilisearch: &MeilisearchConfig{
			URL:   "https://placeholder.com",
			Token: "",
			Index: MeilisearchIndexPaths{Fixtures: "fixtures_index", Sports: "sports_index"},
		},
	}
}
