package lobby

// LobbyError is a custom error type for lobby validation failures
type LobbyError string

// Error implements the error interface
func (e LobbyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyRoster      LobbyError = "roster cannot be empty"
	ErrInvalidRounds    LobbyError = "rounds total must be at least 1"
	ErrUnknownCategory  LobbyError = "unknown category filter"
	ErrSoloRosterTooBig LobbyError = "solo mode requires a roster of exactly one player"
	ErrNilConfig        LobbyError = "config cannot be nil"
	ErrNilClock         LobbyError = "clock cannot be nil"
	ErrNilUUIDGenerator LobbyError = "UUID generator cannot be nil"
)
