package message

// Template groups, one record per conversation area. Every field is
// optional: a tenant configures only the flows it uses.

type Onboarding struct {
	MemberOnboarding *Item `json:"member_onboarding,omitempty" dynamodbav:"member_onboarding,omitempty"`
	GreetingMessage  *Item `json:"greeting_message,omitempty" dynamodbav:"greeting_message,omitempty"`
}

type Validation struct {
	MemberValidation      *Item `json:"member_validation,omitempty" dynamodbav:"member_validation,omitempty"`
	MemberValidationPhone *Item `json:"member_validation_phone,omitempty" dynamodbav:"member_validation_phone,omitempty"`
	MemberValidationEmail *Item `json:"member_validation_email,omitempty" dynamodbav:"member_validation_email,omitempty"`
	SendOTP               *Item `json:"send_otp,omitempty" dynamodbav:"send_otp,omitempty"`
	BadOTP                *Item `json:"bad_otp,omitempty" dynamodbav:"bad_otp,omitempty"`
	BlockedOTP            *Item `json:"blocked_otp,omitempty" dynamodbav:"blocked_otp,omitempty"`
}

type Registration struct {
	NotRegisteredUser        *Item `json:"not_registered_user,omitempty" dynamodbav:"not_registered_user,omitempty"`
	NotRegisteredUserCountry *Item `json:"not_registered_user_country,omitempty" dynamodbav:"not_registered_user_country,omitempty"`
}

type Menu struct {
	MainMenu   *Item `json:"main_menu,omitempty" dynamodbav:"main_menu,omitempty"`
	Support    *Item `json:"support,omitempty" dynamodbav:"support,omitempty"`
	Withdrawal *Item `json:"withdrawal,omitempty" dynamodbav:"withdrawal,omitempty"`
	Balance    *Item `json:"balance,omitempty" dynamodbav:"balance,omitempty"`
	Results    *Item `json:"results,omitempty" dynamodbav:"results,omitempty"`
	Deposit    *Item `json:"deposit,omitempty" dynamodbav:"deposit,omitempty"`
	ShowLinks  *Item `json:"show_links,omitempty" dynamodbav:"show_links,omitempty"`
}

type Bets struct {
	SpecialBet       *Item `json:"special_bet,omitempty" dynamodbav:"special_bet,omitempty"`
	SelectSport      *Item `json:"select_sport,omitempty" dynamodbav:"select_sport,omitempty"`
	SelectTournament *Item `json:"select_tournament,omitempty" dynamodbav:"select_tournament,omitempty"`
	SelectFixture    *Item `json:"select_fixture,omitempty" dynamodbav:"select_fixture,omitempty"`
	BetAmount        *Item `json:"bet_amount,omitempty" dynamodbav:"bet_amount,omitempty"`
	InvalidBetAmount *Item `json:"invalid_bet_amount,omitempty" dynamodbav:"invalid_bet_amount,omitempty"`
	FixtureOdds      *Item `json:"fixture_odds,omitempty" dynamodbav:"fixture_odds,omitempty"`
	SpecialBetsOdds  *Item `json:"special_bets_odds,omitempty" dynamodbav:"special_bets_odds,omitempty"`
	UnavailableOdds  *Item `json:"unavailable_odds,omitempty" dynamodbav:"unavailable_odds,omitempty"`
	PlacedBet        *Item `json:"placed_bet,omitempty" dynamodbav:"placed_bet,omitempty"`
	PlacedBetMenu    *Item `json:"placed_bet_menu,omitempty" dynamodbav:"placed_bet_menu,omitempty"`
	WithoutFunds     *Item `json:"without_funds,omitempty" dynamodbav:"without_funds,omitempty"`
	Deposit          *Item `json:"deposit,omitempty" dynamodbav:"deposit,omitempty"`
	BetRejected      *Item `json:"bet_rejected,omitempty" dynamodbav:"bet_rejected,omitempty"`
}

type Combos struct {
	ShowAllMarketsByFixtures       *Item `json:"show_all_markets_by_fixtures,omitempty" dynamodbav:"show_all_markets_by_fixtures,omitempty"`
	ErrorToAddMarket               *Item `json:"error_to_add_market,omitempty" dynamodbav:"error_to_add_market,omitempty"`
	ErrorToGetOdds                 *Item `json:"error_to_get_odds,omitempty" dynamodbav:"error_to_get_odds,omitempty"`
	ErrorToPlaceBet                *Item `json:"error_to_place_bet,omitempty" dynamodbav:"error_to_place_bet,omitempty"`
	SummaryAfterAddMarket          *Item `json:"summary_after_add_market,omitempty" dynamodbav:"summary_after_add_market,omitempty"`
	SummaryAfterRemoveBetFromCombo *Item `json:"summary_after_remove_bet_from_combo,omitempty" dynamodbav:"summary_after_remove_bet_from_combo,omitempty"`
	RemoveMarket                   *Item `json:"remove_market,omitempty" dynamodbav:"remove_market,omitempty"`
	SelectAmount                   *Item `json:"select_amount,omitempty" dynamodbav:"select_amount,omitempty"`
	PlaceComboBet                  *Item `json:"place_combo_bet,omitempty" dynamodbav:"place_combo_bet,omitempty"`
	SummaryAfterBet                *Item `json:"summary_after_bet,omitempty" dynamodbav:"summary_after_bet,omitempty"`
	ShowMyCombo                    *Item `json:"show_my_combo,omitempty" dynamodbav:"show_my_combo,omitempty"`
	DeleteCombo                    *Item `json:"delete_combo,omitempty" dynamodbav:"delete_combo,omitempty"`
	ComboOdds                      *Item `json:"combo_odds,omitempty" dynamodbav:"combo_odds,omitempty"`
	CombosRecommendation           *Item `json:"combos_recommendation,omitempty" dynamodbav:"combos_recommendation,omitempty"`
	CombosConfirmAddRecommended    *Item `json:"combos_confirm_add_recommended,omitempty" dynamodbav:"combos_confirm_add_recommended,omitempty"`
}

type Errors struct {
	InvalidInput *Item `json:"invalid_input,omitempty" dynamodbav:"invalid_input,omitempty"`
	Error        *Item `json:"error,omitempty" dynamodbav:"error,omitempty"`
	Error2       *Item `json:"error_2,omitempty" dynamodbav:"error_2,omitempty"`
}

type Confirmation struct {
	ConfirmBet *Item `json:"confirm_bet,omitempty" dynamodbav:"confirm_bet,omitempty"`
}

type Labels struct {
	MenuLabelText                       *Item `json:"menu_label_text,omitempty" dynamodbav:"menu_label_text,omitempty"`
	LabelText                           *Item `json:"label_text,omitempty" dynamodbav:"label_text,omitempty"`
	ComboSummaryAfterAddMarketLabelText *Item `json:"combo_summary_after_add_market_label_text,omitempty" dynamodbav:"combo_summary_after_add_market_label_text,omitempty"`
	SelectTournamentLabelText           *Item `json:"select_tournament_label_text,omitempty" dynamodbav:"select_tournament_label_text,omitempty"`
	SelectFixtureLabelText              *Item `json:"select_fixture_label_text,omitempty" dynamodbav:"select_fixture_label_text,omitempty"`
	MarketsWithoutComboLabelText        *Item `json:"markets_without_combo_label_text,omitempty" dynamodbav:"markets_without_combo_label_text,omitempty"`
	SelectSportLabelText                *Item `json:"select_sport_label_text,omitempty" dynamodbav:"select_sport_label_text,omitempty"`
	MoreOptionsText                     *Item `json:"more_options_text,omitempty" dynamodbav:"more_options_text,omitempty"`
	ComboRemoveMarketLabelText          *Item `json:"combo_remove_market_label_text,omitempty" dynamodbav:"combo_remove_market_label_text,omitempty"`
	SelectedOtherMarketLabelText        *Item `json:"selected_other_market_label_text,omitempty" dynamodbav:"selected_other_market_label_text,omitempty"`
	OtherMarketsLabelText               *Item `json:"other_markets_label_text,omitempty" dynamodbav:"other_markets_label_text,omitempty"`
	ComboOddsLabelText                  *Item `json:"combo_odds_label_text,omitempty" dynamodbav:"combo_odds_label_text,omitempty"`
	FixtureOddsLabelText                *Item `json:"fixture_odds_label_text,omitempty" dynamodbav:"fixture_odds_label_text,omitempty"`
	MenuMoreOptionsText                 *Item `json:"menu_more_options_text,omitempty" dynamodbav:"menu_more_options_text,omitempty"`
	ListMarketsLabelText                *Item `json:"list_markets_label_text,omitempty" dynamodbav:"list_markets_label_text,omitempty"`
	ListFixturesLabelText               *Item `json:"list_fixtures_label_text,omitempty" dynamodbav:"list_fixtures_label_text,omitempty"`
}

type End struct {
	EndConversation *Item `json:"end_conversation,omitempty" dynamodbav:"end_conversation,omitempty"`
}

type Guidance struct {
	ValidInputText       *Item `json:"valid_input_text,omitempty" dynamodbav:"valid_input_text,omitempty"`
	InvalidInputText     *Item `json:"invalid_input_text,omitempty" dynamodbav:"invalid_input_text,omitempty"`
	InvalidInputResponse *Item `json:"invalid_input_response,omitempty" dynamodbav:"invalid_input_response,omitempty"`
}
