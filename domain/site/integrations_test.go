package site

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_LegacyWhapiKey(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare provider config is wrapped and enabled",
			input:    `{"integrations":{"whapi":{"api_url":"https://whapi.example","token":"tok"}}}`,
			expected: `{"integrations":{"whatsapp":{"enabled":true,"config":{"provider":"whapi","api_url":"https://whapi.example","token":"tok"}}}}`,
		},
		{
			name:     "wrapped legacy config keeps its switch",
			input:    `{"integrations":{"whapi":{"enabled":false,"config":{"api_url":"https://whapi.example"}}}}`,
			expected: `{"integrations":{"whatsapp":{"enabled":false,"config":{"provider":"whapi","api_url":"https://whapi.example"}}}}`,
		},
		{
			name:     "current key wins over the legacy one",
			input:    `{"integrations":{"whapi":{"api_url":"https://old.example"},"whatsapp":{"enabled":true,"config":{"provider":"meta","phone_id":"1","auth_token":"a","connection_token":"c"}}}}`,
			expected: `{"integrations":{"whapi":{"api_url":"https://old.example"},"whatsapp":{"enabled":true,"config":{"provider":"meta","phone_id":"1","auth_token":"a","connection_token":"c"}}}}`,
		},
		{
			name:     "twilio defaults to enabled",
			input:    `{"integrations":{"twilio":{"account_sid":"AC1"}}}`,
			expected: `{"integrations":{"twilio":{"account_sid":"AC1","enabled":true}}}`,
		},
		{
			name:     "no integrations section",
			input:    `{"identity":{"site_name":"x"}}`,
			expected: `{"identity":{"site_name":"x"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{}
			req.NoError(json.Unmarshal([]byte(tt.input), &raw))

			Normalize(raw)
			got, err := json.Marshal(raw)
			req.NoError(err)
			req.JSONEq(tt.expected, string(got), "test=%s", tt.name)

			// Idempotent: a second pass changes nothing.
			Normalize(raw)
			got, err = json.Marshal(raw)
			req.NoError(err)
			req.JSONEq(tt.expected, string(got), "test=%s", tt.name)
		})
	}
}

func TestWhatsAppConfig_JSON(t *testing.T) {
	req := require.New(t)

	whapi := NewWhapi("https://whapi.example", "tok")
	out, err := json.Marshal(whapi)
	req.NoError(err)
	req.JSONEq(`{"provider":"whapi","api_url":"https://whapi.example","token":"tok"}`, string(out))

	var back WhatsAppConfig
	req.NoError(json.Unmarshal(out, &back))
	req.NotNil(back.Whapi)
	req.Nil(back.Meta)
	req.Equal("tok", back.Whapi.Token)

	meta := NewMeta("phone-1", "auth", "conn")
	out, err = json.Marshal(meta)
	req.NoError(err)
	req.NoError(json.Unmarshal(out, &back))
	req.NotNil(back.Meta)
	req.Nil(back.Whapi)
	req.Equal("phone-1", back.Meta.PhoneID)

	req.Error(json.Unmarshal([]byte(`{"provider":"smoke-signals"}`), &back))

	empty := WhatsAppConfig{}
	_, err = json.Marshal(empty)
	req.Error(err)
}

func TestSiteConfigDB_RoundTrip(t *testing.T) {
	req := require.New(t)

	d, err := DefaultFactoryDB("BetVIP", "betvip")
	req.NoError(err)
	req.Equal("company#betvip", d.PK)
	req.Equal("site_config", d.SK)

	item, err := d.Item()
	req.NoError(err)

	restored, err := FromItem(item)
	req.NoError(err)
	req.Equal(d, restored)

	// The meta provider survives the same projection.
	d.Integrations.WhatsApp.Config = NewMeta("phone-1", "auth", "conn")
	item, err = d.Item()
	req.NoError(err)
	restored, err = FromItem(item)
	req.NoError(err)
	req.NotNil(restored.Integrations.WhatsApp.Config.Meta)
	req.Equal("phone-1", restored.Integrations.WhatsApp.Config.Meta.PhoneID)
}
