package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/lverdier/defiparty/internal/services/game Service

// Service defines the interface for turn engine operations
type Service interface {
	// StartSession closes the lobby: resolves active duos, seats the first
	// player and moves the session to in-progress. One-way.
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// AdvanceTurn applies a finished turn and rotates to the next player,
	// completing rounds and finishing the game when due
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)

	// UseJoker spends a joker, skipping dare resolution for the turn
	UseJoker(ctx context.Context, input *UseJokerInput) (*UseJokerOutput, error)

	// UseReroll spends a reroll and requests a replacement dare
	UseReroll(ctx context.Context, input *UseRerollInput) (*UseRerollOutput, error)

	// UseExchange spends an exchange and substitutes the dare's category
	UseExchange(ctx context.Context, input *UseExchangeInput) (*UseExchangeOutput, error)

	// SetCurrentDare replaces the active dare for the current turn
	SetCurrentDare(ctx context.Context, input *SetCurrentDareInput) (*SetCurrentDareOutput, error)

	// SwapPlayers exchanges two players' roster positions, consuming both
	// players' lifetime swap
	SwapPlayers(ctx context.Context, input *SwapPlayersInput) (*SwapPlayersOutput, error)

	// PausePlayer removes a player from rotation without losing their state
	PausePlayer(ctx context.Context, input *PausePlayerInput) (*PausePlayerOutput, error)

	// ResumePlayer puts a paused player back into rotation
	ResumePlayer(ctx context.Context, input *ResumePlayerInput) (*ResumePlayerOutput, error)

	// PauseSession suspends the whole session
	PauseSession(ctx context.Context, input *PauseSessionInput) (*PauseSessionOutput, error)

	// ResumeSession resumes a suspended session
	ResumeSession(ctx context.Context, input *ResumeSessionInput) (*ResumeSessionOutput, error)

	// UseAccompaniment spends one side of a Mentor/Élève duo bonus
	UseAccompaniment(ctx context.Context, input *UseAccompanimentInput) (*UseAccompanimentOutput, error)

	// ApplyPenalty selects a penalty phrase; pure, no session mutation
	ApplyPenalty(ctx context.Context, input *ApplyPenaltyInput) (*ApplyPenaltyOutput, error)

	// GetSession reads the current session state
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// WatchSession opens a snapshot subscription for the session
	WatchSession(ctx context.Context, input *WatchSessionInput) (*WatchSessionOutput, error)
}
