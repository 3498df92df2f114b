package models

// HistoryRecord is the archived summary of a finished session. Records are
// keyed by session id, which is what makes archival idempotent.
type HistoryRecord struct {
	// SessionID is the id of the finished session
	SessionID string `json:"sessionId"`

	// WinnerName is the name of the highest-scoring player
	WinnerName string `json:"winnerName"`

	// LoserName is the name of the lowest-scoring player
	LoserName string `json:"loserName"`

	// RoundsPlayed is how many rounds were completed
	RoundsPlayed int `json:"roundsPlayed"`

	// PlayerCount is the roster size
	PlayerCount int `json:"playerCount"`

	// DifficultyLabel describes the settings the game was played with
	DifficultyLabel string `json:"difficultyLabel"`

	// PlayedAt is when the session finished
	PlayedAt Timestamp `json:"playedAt"`
}
