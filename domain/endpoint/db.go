package endpoint

import (
	"time"

	"chatbet-models/dynamo"
	"chatbet-models/validation"
)

// SortKey identifies endpoint records inside a company partition.
const SortKey = "platform_endpoints"

// APIEndpointsDB is the persistence projection of APIEndpoints.
type APIEndpointsDB struct {
	APIEndpoints
	dynamo.Keys
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

func (d *APIEndpointsDB) Validate() error {
	return validation.Struct(d)
}

// Touch refreshes the update timestamp.
func (d *APIEndpointsDB) Touch() {
	d.UpdatedAt = time.Now().UTC()
}

// DefaultFactory builds a complete endpoint configuration pointing at
// placeholder URLs, so a freshly provisioned company has no missing
// leaves in storage.
func DefaultFactory(companyID string) (*APIEndpointsDB, error) {
	const baseURL = "https://placeholder.com/api"

	ep := func(url string, method Method) *Endpoint {
		return &Endpoint{
			Method:  method,
			URL:     url,
			Params:  map[string]any{},
			Payload: map[string]any{},
			Headers: map[string]string{},
		}
	}

	now := time.Now().UTC()
	d := &APIEndpointsDB{
		APIEndpoints: APIEndpoints{
			Auth: &Auth{
				ValidateUser:  ep(baseURL+"/auth/validate-user", MethodPost),
				ValidateToken: ep(baseURL+"/auth/validate-token", MethodPost),
				GenerateToken: ep(baseURL+"/auth/generate-token", MethodPost),
			},
			Users: &Users{
				GetUserBalance: ep(baseURL+"/users/get-balance", MethodGet),
			},
			Sports: &Sports{
				GetAvailableSports: ep(baseURL+"/sports/available", MethodGet),
				ListSports:         ep(baseURL+"/sports/list", MethodGet),
			},
			Tournaments: &Tournaments{
				GetTournaments: ep(baseURL+"/tournaments", MethodGet),
			},
			Fixtures: &Fixtures{
				GetFixturesBySport:      ep(baseURL+"/fixtures/by-sport", MethodGet),
				GetFixturesByTournament: ep(baseURL+"/fixtures/by-tournament", MethodGet),
				GetSpecialBets:          ep(baseURL+"/fixtures/special-bets", MethodGet),
				GetRecommendedBets:      ep(baseURL+"/fixtures/recommended", MethodGet),
			},
			Odds: &Odds{
				GetFixtureOdds: ep(baseURL+"/odds/fixture", MethodGet),
				GetOddsCombo:   ep(baseURL+"/odds/combo", MethodPost),
			},
			Bets: &Bets{
				PlaceBet: ep(baseURL+"/bets/place", MethodPost),
			},
			Combos: &Combos{
				PlaceCombo:     ep(baseURL+"/combos/place", MethodPost),
				GetComboProfit: ep(baseURL+"/combos/profit", MethodPost),
				DeleteBetCombo: ep(baseURL+"/combos/bet", MethodDelete),
				AddBetToCombo:  ep(baseURL+"/combos/bet", MethodPost),
				GetOddsCombo:   ep(baseURL+"/combos/odds", MethodPost),
			},
		},
		Keys:      dynamo.Keys{PK: dynamo.CompanyKey(companyID), SK: SortKey},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Item flattens the record for storage.
func (d *APIEndpointsDB) Item() (dynamo.Item, error) {
	return dynamo.MarshalItem(d)
}

// FromItem reconstructs a validated record from a stored item.
func FromItem(item dynamo.Item) (*APIEndpointsDB, error) {
	d := &APIEndpointsDB{}
	if err := dynamo.UnmarshalItem(item, d); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
