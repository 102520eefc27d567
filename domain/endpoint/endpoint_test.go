package endpoint

import (
	"testing"

	"chatbet-models/errors"

	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected Method
		wantErr  bool
	}{
		{name: "canonical", input: "GET", expected: MethodGet},
		{name: "lowercase", input: "post", expected: MethodPost},
		{name: "mixed case with spaces", input: " Delete ", expected: MethodDelete},
		{name: "patch is allowed", input: "patch", expected: MethodPatch},
		{name: "unknown verb", input: "FETCH", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMethod(tt.input)
			if tt.wantErr {
				v, ok := errors.AsValidation(err)
				req.True(ok, "test=%s", tt.name)
				req.Equal("method", v.Fields[0].Field)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, m)
		})
	}
}

func TestEndpoint_Validate(t *testing.T) {
	req := require.New(t)

	valid := Endpoint{
		Method:  MethodPost,
		URL:     "https://api.example.com/bets/place",
		Params:  map[string]any{},
		Payload: map[string]any{"amount": "10"},
		Headers: map[string]string{"Authorization": "Bearer x"},
	}

	tests := []struct {
		name    string
		modify  func(*Endpoint)
		wantErr bool
	}{
		{name: "valid", modify: func(*Endpoint) {}},
		{name: "method is optional", modify: func(e *Endpoint) { e.Method = "" }},
		{name: "unknown verb", modify: func(e *Endpoint) { e.Method = "FETCH" }, wantErr: true},
		{name: "lowercase verb rejected before coercion", modify: func(e *Endpoint) { e.Method = "get" }, wantErr: true},
		{name: "missing url", modify: func(e *Endpoint) { e.URL = "" }, wantErr: true},
		{name: "malformed url", modify: func(e *Endpoint) { e.URL = "not a url" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.modify(&e)
			err := e.Validate()
			if tt.wantErr {
				req.Error(err, "test=%s", tt.name)
			} else {
				req.NoError(err, "test=%s", tt.name)
			}
		})
	}
}

func TestParse_CoercesLegacyVerbs(t *testing.T) {
	req := require.New(t)

	payload := `{
		"bets": {
			"place_bet": {
				"method": "post",
				"endpoint": "https://api.example.com/bets/place",
				"params": {},
				"payload": {},
				"headers": {}
			}
		},
		"users": {
			"get_user_balance": {
				"endpoint": "https://api.example.com/users/balance",
				"params": {},
				"payload": {},
				"headers": {}
			}
		}
	}`

	a, err := Parse([]byte(payload))
	req.NoError(err)
	req.Equal(MethodPost, a.Bets.PlaceBet.Method)
	req.Equal(Method(""), a.Users.GetUserBalance.Method)

	_, err = Parse([]byte(`{"bets":{"place_bet":{"method":"FETCH","endpoint":"https://x.example","params":{},"payload":{},"headers":{}}}}`))
	req.Error(err)

	_, err = Parse([]byte(`{"bets":{"place_bet":{"endpoint":"not a url","params":{},"payload":{},"headers":{}}}}`))
	req.Error(err)

	_, err = Parse([]byte(`{"mystery_group":{}}`))
	req.Error(err)
}

func TestDefaultFactory(t *testing.T) {
	req := require.New(t)

	d, err := DefaultFactory("betvip")
	req.NoError(err)
	req.Equal("company#betvip", d.PK)
	req.Equal("platform_endpoints", d.SK)
	req.NoError(d.Validate())

	req.Equal(MethodPost, d.Auth.ValidateUser.Method)
	req.Equal(MethodGet, d.Users.GetUserBalance.Method)
	req.NotNil(d.Combos.DeleteBetCombo)
	req.NotNil(d.Bets.PlaceBet.Params)
}

func TestAPIEndpointsDB_RoundTrip(t *testing.T) {
	req := require.New(t)

	d, err := DefaultFactory("betvip")
	req.NoError(err)

	item, err := d.Item()
	req.NoError(err)

	restored, err := FromItem(item)
	req.NoError(err)
	req.Equal(d, restored)
}
