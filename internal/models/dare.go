package models

// Dare is the active challenge payload for a turn. The engine never
// interprets Text; Category and Difficulty are read by the exchange action
// and progressive mode.
type Dare struct {
	// ID is the content reference for the dare
	ID string `json:"id"`

	// Text is the challenge wording, opaque to the engine
	Text string `json:"text,omitempty"`

	// Category is the dare category
	Category string `json:"category"`

	// Difficulty is the dare difficulty, 1 (mild) to 4 (hard)
	Difficulty int `json:"difficulty"`
}
