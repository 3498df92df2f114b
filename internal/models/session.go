package models

// SessionStatus represents the current state of a game session
type SessionStatus string

const (
	// SessionStatusLobby indicates a session is being assembled and has not started
	SessionStatusLobby SessionStatus = "lobby"

	// SessionStatusInProgress indicates a session is being played
	SessionStatusInProgress SessionStatus = "in_progress"

	// SessionStatusPaused indicates a session is temporarily suspended
	SessionStatusPaused SessionStatus = "paused"

	// SessionStatusFinished indicates a session has ended; terminal
	SessionStatusFinished SessionStatus = "finished"
)

// Settings holds the game options chosen in the lobby.
// Immutable once the session leaves the lobby.
type Settings struct {
	// RoundsTotal is how many full rounds the game lasts
	RoundsTotal int `json:"roundsTotal"`

	// ProgressiveMode escalates dare difficulty as rounds complete
	ProgressiveMode bool `json:"progressiveMode"`

	// AlcoholMode switches penalties to the drinking pool
	AlcoholMode bool `json:"alcoholMode"`

	// SoloMode is the single-player variant with its own action economy
	SoloMode bool `json:"soloMode"`

	// CategoryFilters restricts which dare categories are drawn
	CategoryFilters []string `json:"categoryFilters,omitempty"`
}

// Session represents one played game instance and is the authoritative
// shared state for every device in the party.
type Session struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// Status is the current state of the session
	Status SessionStatus `json:"status"`

	// HostPlayerID is the roster id of the player who created the session
	HostPlayerID string `json:"hostPlayerId"`

	// Settings are the game options, frozen at lobby close
	Settings Settings `json:"settings"`

	// Roster is the ordered list of players; order defines the turn sequence
	// and is fixed at lobby close
	Roster []*Player `json:"roster"`

	// CurrentTurnPlayerID is the roster id of the player whose turn it is
	CurrentTurnPlayerID string `json:"currentTurnPlayerId,omitempty"`

	// CurrentDare is the active challenge for the current turn
	CurrentDare *Dare `json:"currentDare,omitempty"`

	// RoundsCompleted counts fully played rounds
	RoundsCompleted int `json:"roundsCompleted"`

	// PlayersPlayedThisRound counts turns taken in the current round
	PlayersPlayedThisRound int `json:"playersPlayedThisRound"`

	// TurnCounter increments exactly once per accepted turn advance and is
	// the optimistic-concurrency version for the whole document
	TurnCounter int64 `json:"turnCounter"`

	// SwapUsedByPlayerIDs lists players whose lifetime swap is spent;
	// append-only
	SwapUsedByPlayerIDs []string `json:"swapUsedByPlayerIds,omitempty"`

	// ActiveDuos are the Mentor/Élève pairings resolved against this roster
	// at session start, with their per-game usage flags
	ActiveDuos []*ActiveDuo `json:"activeDuos,omitempty"`

	// WinnerName and LoserName are set once by the archival flow
	WinnerName string `json:"winnerName,omitempty"`
	LoserName  string `json:"loserName,omitempty"`

	// CreatedAt is when the lobby was assembled
	CreatedAt Timestamp `json:"createdAt"`

	// StartedAt is when the session left the lobby
	StartedAt *Timestamp `json:"startedAt,omitempty"`

	// EndedAt is when the session finished; set exactly once
	EndedAt *Timestamp `json:"endedAt,omitempty"`
}

// FindPlayer returns the roster entry with the given id, or nil.
func (s *Session) FindPlayer(playerID string) *Player {
	for _, p := range s.Roster {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// NonPausedCount returns the number of players currently taking turns.
func (s *Session) NonPausedCount() int {
	count := 0
	for _, p := range s.Roster {
		if !p.IsPaused {
			count++
		}
	}
	return count
}

// NextNonPausedAfter returns the id of the next non-paused player in roster
// order after the given player, wrapping around. The player itself is only
// returned when nobody else can play (solo mode, or everyone else paused).
// Returns "" if no non-paused player exists at all.
func (s *Session) NextNonPausedAfter(playerID string) string {
	start := -1
	for i, p := range s.Roster {
		if p.ID == playerID {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}

	for offset := 1; offset <= len(s.Roster); offset++ {
		candidate := s.Roster[(start+offset)%len(s.Roster)]
		if !candidate.IsPaused {
			return candidate.ID
		}
	}
	return ""
}

// FirstNonPaused returns the id of the first non-paused player in roster
// order, or "".
func (s *Session) FirstNonPaused() string {
	for _, p := range s.Roster {
		if !p.IsPaused {
			return p.ID
		}
	}
	return ""
}

// SwapUsedBy reports whether a player has already spent their lifetime swap.
func (s *Session) SwapUsedBy(playerID string) bool {
	for _, id := range s.SwapUsedByPlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}
