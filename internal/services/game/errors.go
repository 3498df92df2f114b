package game

// GameError is a custom error type for turn engine failures
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound     GameError = "session not found"
	ErrPlayerNotFound      GameError = "player not found"
	ErrInvalidState        GameError = "operation not allowed in current session state"
	ErrNotPlayersTurn      GameError = "not this player's turn"
	ErrActionExhausted     GameError = "action already exhausted"
	ErrSwapAlreadyUsed     GameError = "swap already used"
	ErrConcurrencyConflict GameError = "concurrent update conflict, please retry"
	ErrNoActiveDuo         GameError = "no active duo for this player"
	ErrLastActivePlayer    GameError = "cannot pause the last active player"
	ErrNoCurrentDare       GameError = "no current dare to act on"
	ErrStoreUnavailable    GameError = "session store unavailable"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilSessionRepo      GameError = "session repository cannot be nil"
	ErrNilDuoRepo          GameError = "duo repository cannot be nil"
	ErrNilDuoDetector      GameError = "duo detector cannot be nil"
	ErrNilArchiveService   GameError = "archive service cannot be nil"
	ErrNilPenaltyPicker    GameError = "penalty picker cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
)
