package models

// Player represents a participant in a session. The struct is embedded in
// the session document; ids are session-scoped.
type Player struct {
	// ID is the session-scoped identifier for the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Avatar is an optional avatar reference
	Avatar string `json:"avatar,omitempty"`

	// ProfileID optionally links to a persistent cross-session profile
	ProfileID string `json:"profileId,omitempty"`

	// Score is the player's accumulated score
	Score int `json:"score"`

	// IsPaused marks a player who is skipped by turn advancement but keeps
	// their score and remaining actions
	IsPaused bool `json:"isPaused"`

	// JokersLeft is how many jokers the player can still play
	JokersLeft int `json:"jokersLeft"`

	// RerollsLeft is how many dare rerolls the player can still request
	RerollsLeft int `json:"rerollsLeft"`

	// ExchangeLeft is how many category exchanges the player can still use
	ExchangeLeft int `json:"exchangeLeft"`
}
