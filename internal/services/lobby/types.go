package lobby

import (
	"github.com/lverdier/defiparty/internal/common/clock"
	"github.com/lverdier/defiparty/internal/common/uuid"
	"github.com/lverdier/defiparty/internal/models"
)

// Default per-player action economy
const (
	DefaultJokers   = 1
	DefaultRerolls  = 1
	DefaultExchange = 1
)

// Solo-mode overrides: no jokers or exchanges, extra rerolls
const (
	SoloJokers   = 0
	SoloRerolls  = 3
	SoloExchange = 0
)

// DefaultCategories are the dare categories known to the engine
var DefaultCategories = []string{"classique", "action", "vérité", "mime", "culture"}

// Config holds configuration for the lobby service
type Config struct {
	// KnownCategories validates settings category filters;
	// DefaultCategories if empty
	KnownCategories []string

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// PlayerSeed describes a participant before the roster is assembled
type PlayerSeed struct {
	// Name is the display name
	Name string

	// Avatar is an optional avatar reference
	Avatar string

	// ProfileID optionally links to a persistent profile
	ProfileID string
}

// AssembleSessionInput contains parameters for assembling a session
type AssembleSessionInput struct {
	// Host is the player creating the session; always part of the roster
	Host PlayerSeed

	// Players are the other participants, in seating order. The host may
	// appear here; it is not added twice.
	Players []PlayerSeed

	// Settings are the requested game options
	Settings models.Settings
}

// AssembleSessionOutput contains the assembled session. Persisting it is
// the caller's responsibility.
type AssembleSessionOutput struct {
	// Session is the assembled session, in lobby state
	Session *models.Session
}
