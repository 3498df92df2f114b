package game

import (
	"github.com/lverdier/defiparty/internal/common/clock"
	"github.com/lverdier/defiparty/internal/models"
	"github.com/lverdier/defiparty/internal/penalty"
	duoRepo "github.com/lverdier/defiparty/internal/repositories/duo"
	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
	"github.com/lverdier/defiparty/internal/services/archive"
	duoService "github.com/lverdier/defiparty/internal/services/duo"
)

// TurnOutcome describes how the acting player resolved their dare
type TurnOutcome string

const (
	// TurnOutcomeCompleted indicates the dare was performed
	TurnOutcomeCompleted TurnOutcome = "completed"

	// TurnOutcomeFailed indicates the dare was refused or failed; a penalty
	// applies
	TurnOutcomeFailed TurnOutcome = "failed"

	// TurnOutcomeJoker indicates dare resolution was skipped with a joker
	TurnOutcomeJoker TurnOutcome = "joker"
)

// MaxDifficulty is the hardest dare difficulty
const MaxDifficulty = 4

// Config holds configuration for the turn engine
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	DuoRepo     duoRepo.Repository

	// Service dependencies
	DuoDetector    *duoService.Detector
	ArchiveService archive.Service
	PenaltyPicker  *penalty.Picker
	Clock          clock.Clock
}

// StartSessionInput contains parameters for closing the lobby
type StartSessionInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// FirstDare optionally seats the opening dare
	FirstDare *models.Dare
}

// StartSessionOutput contains the result of closing the lobby
type StartSessionOutput struct {
	// Session is the updated session
	Session *models.Session
}

// AdvanceTurnInput contains parameters for advancing a turn
type AdvanceTurnInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// PlayerID is the player whose turn just completed; must be the
	// current turn player
	PlayerID string

	// ScoreDelta is added to the acting player's score
	ScoreDelta int

	// Outcome is how the dare was resolved
	Outcome TurnOutcome

	// NextDare optionally seats the dare for the next turn
	NextDare *models.Dare
}

// AdvanceTurnOutput contains the result of advancing a turn
type AdvanceTurnOutput struct {
	// Session is the updated session
	Session *models.Session

	// RoundCompleted indicates the turn closed a full round
	RoundCompleted bool

	// Finished indicates the game ended with this turn
	Finished bool

	// Penalty is the penalty phrase for a failed outcome, empty otherwise
	Penalty string

	// NextDifficultyFloor is the minimum dare difficulty for the next turn
	// (progressive mode escalates it as rounds complete)
	NextDifficultyFloor int

	// ArchivePending indicates the game finished but archival failed and
	// should be retried
	ArchivePending bool
}

// UseJokerInput contains parameters for spending a joker
type UseJokerInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// PlayerID is the player spending the joker
	PlayerID string
}

// UseJokerOutput contains the result of spending a joker
type UseJokerOutput struct {
	// JokersRemaining is the player's joker count after spending
	JokersRemaining int
}

// UseRerollInput contains parameters for spending a reroll
type UseRerollInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// PlayerID is the player spending the reroll
	PlayerID string
}

// UseRerollOutput contains the result of spending a reroll
type UseRerollOutput struct {
	// RerollsRemaining is the player's reroll count after spending
	RerollsRemaining int

	// NeedsNewDare asks the caller to draw a replacement dare and seat it
	// via SetCurrentDare
	NeedsNewDare bool
}

// UseExchangeInput contains parameters for spending an exchange
type UseExchangeInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// PlayerID is the player spending the exchange
	PlayerID string

	// TargetCategory replaces the current dare's category
	TargetCategory string
}

// UseExchangeOutput contains the result of spending an exchange
type UseExchangeOutput struct {
	// ExchangesRemaining is the player's exchange count after spending
	ExchangesRemaining int

	// Session is the updated session
	Session *models.Session
}

// SetCurrentDareInput contains parameters for seating a dare
type SetCurrentDareInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// Dare is the new active dare
	Dare *models.Dare
}

// SetCurrentDareOutput contains the result of seating a dare
type SetCurrentDareOutput struct {
	// Session is the updated session
	Session *models.Session
}

// SwapPlayersInput contains parameters for swapping roster positions
type SwapPlayersInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// Player1ID and Player2ID are the players exchanging positions
	Player1ID string
	Player2ID string
}

// SwapPlayersOutput contains the result of swapping roster positions
type SwapPlayersOutput struct {
	// Session is the updated session
	Session *models.Session
}

// PausePlayerInput contains parameters for pausing a player
type PausePlayerInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// PlayerID is the player to pause
	PlayerID string
}

// PausePlayerOutput contains the result of pausing a player
type PausePlayerOutput struct {
	// Session is the updated session
	Session *models.Session
}

// ResumePlayerInput contains parameters for resuming a player
type ResumePlayerInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// PlayerID is the player to resume
	PlayerID string
}

// ResumePlayerOutput contains the result of resuming a player
type ResumePlayerOutput struct {
	// Session is the updated session
	Session *models.Session
}

// PauseSessionInput contains parameters for suspending a session
type PauseSessionInput struct {
	// SessionID is the unique identifier for the session
	SessionID string
}

// PauseSessionOutput contains the result of suspending a session
type PauseSessionOutput struct {
	// Session is the updated session
	Session *models.Session
}

// ResumeSessionInput contains parameters for resuming a session
type ResumeSessionInput struct {
	// SessionID is the unique identifier for the session
	SessionID string
}

// ResumeSessionOutput contains the result of resuming a session
type ResumeSessionOutput struct {
	// Session is the updated session
	Session *models.Session
}

// UseAccompanimentInput contains parameters for spending a duo bonus
type UseAccompanimentInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// PlayerID is the mentor or élève invoking the bonus
	PlayerID string
}

// UseAccompanimentOutput contains the result of spending a duo bonus
type UseAccompanimentOutput struct {
	// Session is the updated session
	Session *models.Session

	// LinkID identifies which duo was spent
	LinkID string

	// MentorPlayerID and ElevePlayerID are the duo's two sides
	MentorPlayerID string
	ElevePlayerID  string
}

// ApplyPenaltyInput contains parameters for selecting a penalty
type ApplyPenaltyInput struct {
	// Difficulty is the failed dare's difficulty
	Difficulty int

	// AlcoholMode selects the drinking pool
	AlcoholMode bool
}

// ApplyPenaltyOutput contains the selected penalty phrase
type ApplyPenaltyOutput struct {
	Penalty string
}

// GetSessionInput defines the input for reading a session
type GetSessionInput struct {
	// SessionID is the unique identifier for the session
	SessionID string
}

// GetSessionOutput contains the session state
type GetSessionOutput struct {
	Session *models.Session
}

// WatchSessionInput defines the input for opening a snapshot subscription
type WatchSessionInput struct {
	// SessionID is the unique identifier for the session
	SessionID string
}

// WatchSessionOutput contains the opened subscription
type WatchSessionOutput struct {
	Subscription *sessionRepo.Subscription
}
