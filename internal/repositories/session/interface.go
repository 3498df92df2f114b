package session

import (
	"context"

	"github.com/lverdier/defiparty/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/lverdier/defiparty/internal/repositories/session Repository

// Repository is the storage adapter for session documents. It exposes the
// four primitives the engine needs: read-one, write (optionally gated on
// the turn counter), atomic field increment, and a snapshot subscription.
type Repository interface {
	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// SaveSession persists a session. When ExpectedTurnCounter is set the
	// write only commits if the stored counter still matches.
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// IncrementField atomically adds a delta to a numeric session field.
	// Action-economy fields fail closed and never go negative.
	IncrementField(ctx context.Context, input *IncrementFieldInput) (*IncrementFieldOutput, error)

	// Subscribe streams session snapshots, starting with the current state
	Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error)
}
