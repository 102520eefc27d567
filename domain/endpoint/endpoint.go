// Package endpoint describes the platform API surface a tenant's bot
// talks to: one validated descriptor per upstream operation, grouped
// by area. The descriptors configure an HTTP client; no request is
// ever made from here.
package endpoint

import (
	"encoding/json"
	"strings"

	"chatbet-models/errors"
	"chatbet-models/validation"
)

// Method is an HTTP verb from the fixed allowed set.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// ParseMethod coerces a free-case verb string to its canonical Method.
// Unknown verbs fail naming the method field.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToUpper(strings.TrimSpace(s))); m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return m, nil
	default:
		return "", errors.NewValidation("method", "invalid HTTP method: "+s)
	}
}

// Endpoint describes one upstream operation. Method is optional for
// legacy descriptors that predate it.
type Endpoint struct {
	Method  Method            `json:"method,omitempty" dynamodbav:"method,omitempty" validate:"omitempty,oneof=GET POST PUT PATCH DELETE"`
	URL     string            `json:"endpoint" dynamodbav:"endpoint" validate:"required,url"`
	Params  map[string]any    `json:"params" dynamodbav:"params"`
	Payload map[string]any    `json:"payload" dynamodbav:"payload"`
	Headers map[string]string `json:"headers" dynamodbav:"headers"`
}

func (e *Endpoint) Validate() error {
	return validation.Struct(e)
}

// Endpoint groups, one record per API area. Fields are optional: a
// platform exposes only the operations its sportsbook supports.

type Auth struct {
	ValidateUser  *Endpoint `json:"validate_user,omitempty" dynamodbav:"validate_user,omitempty"`
	ValidateToken *Endpoint `json:"validate_token,omitempty" dynamodbav:"validate_token,omitempty"`
	GenerateToken *Endpoint `json:"generate_token,omitempty" dynamodbav:"generate_token,omitempty"`
	GenerateOTP   *Endpoint `json:"generate_otp,omitempty" dynamodbav:"generate_otp,omitempty"`
}

type Users struct {
	GetUserBalance *Endpoint `json:"get_user_balance,omitempty" dynamodbav:"get_user_balance,omitempty"`
}

type Sports struct {
	GetAvailableSports *Endpoint `json:"get_available_sports,omitempty" dynamodbav:"get_available_sports,omitempty"`
	ListSports         *Endpoint `json:"list_sports,omitempty" dynamodbav:"list_sports,omitempty"`
}

type Tournaments struct {
	GetTournaments *Endpoint `json:"get_tournaments,omitempty" dynamodbav:"get_tournaments,omitempty"`
}

type Fixtures struct {
	GetFixturesBySport      *Endpoint `json:"get_fixtures_by_sport,omitempty" dynamodbav:"get_fixtures_by_sport,omitempty"`
	GetFixturesByTournament *Endpoint `json:"get_fixtures_by_tournament,omitempty" dynamodbav:"get_fixtures_by_tournament,omitempty"`
	GetSpecialBets          *Endpoint `json:"get_special_bets,omitempty" dynamodbav:"get_special_bets,omitempty"`
	GetRecommendedBets      *Endpoint `json:"get_recommended_bets,omitempty" dynamodbav:"get_recommended_bets,omitempty"`
}

type Odds struct {
	GetFixtureOdds *Endpoint `json:"get_fixture_odds,omitempty" dynamodbav:"get_fixture_odds,omitempty"`
	GetOddsCombo   *Endpoint `json:"get_odds_combo,omitempty" dynamodbav:"get_odds_combo,omitempty"`
}

type Bets struct {
	PlaceBet *Endpoint `json:"place_bet,omitempty" dynamodbav:"place_bet,omitempty"`
}

type Combos struct {
	PlaceCombo     *Endpoint `json:"place_combo,omitempty" dynamodbav:"place_combo,omitempty"`
	GetComboProfit *Endpoint `json:"get_combo_profit,omitempty" dynamodbav:"get_combo_profit,omitempty"`
	DeleteBetCombo *Endpoint `json:"delete_bet_combo,omitempty" dynamodbav:"delete_bet_combo,omitempty"`
	AddBetToCombo  *Endpoint `json:"add_bet_to_combo,omitempty" dynamodbav:"add_bet_to_combo,omitempty"`
	GetOddsCombo   *Endpoint `json:"get_odds_combo,omitempty" dynamodbav:"get_odds_combo,omitempty"`
}

// APIEndpoints is the unified endpoint configuration of a tenant.
type APIEndpoints struct {
	Auth        *Auth        `json:"auth,omitempty" dynamodbav:"auth,omitempty"`
	Users       *Users       `json:"users,omitempty" dynamodbav:"users,omitempty"`
	Sports      *Sports      `json:"sports,omitempty" dynamodbav:"sports,omitempty"`
	Tournaments *Tournaments `json:"tournaments,omitempty" dynamodbav:"tournaments,omitempty"`
	Fixtures    *Fixtures    `json:"fixtures,omitempty" dynamodbav:"fixtures,omitempty"`
	Odds        *Odds        `json:"odds,omitempty" dynamodbav:"odds,omitempty"`
	Bets        *Bets        `json:"bets,omitempty" dynamodbav:"bets,omitempty"`
	Combos      *Combos      `json:"combos,omitempty" dynamodbav:"combos,omitempty"`
}

func (a *APIEndpoints) Validate() error {
	return validation.Struct(a)
}

// Normalize rewrites legacy endpoint payload shapes in place: verb
// strings in any casing are coerced to their canonical form.
// Idempotent; unknown verbs are left for validation to reject.
func Normalize(raw map[string]any) {
	for _, group := range raw {
		groupMap, ok := group.(map[string]any)
		if !ok {
			continue
		}
		for _, ep := range groupMap {
			epMap, ok := ep.(map[string]any)
			if !ok {
				continue
			}
			if s, ok := epMap["method"].(string); ok {
				if m, err := ParseMethod(s); err == nil {
					epMap["method"] = string(m)
				}
			}
		}
	}
}

// Parse builds a validated APIEndpoints from a raw payload, accepting
// legacy shapes.
func Parse(data []byte) (*APIEndpoints, error) {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewValidation("", "payload is not an object: "+err.Error())
	}
	Normalize(raw)
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.NewValidation("", err.Error())
	}
	a := &APIEndpoints{}
	if err := validation.DecodeStrict(buf, a); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
