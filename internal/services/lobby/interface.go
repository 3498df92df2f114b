package lobby

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/lverdier/defiparty/internal/services/lobby Service

// Service defines the interface for lobby operations
type Service interface {
	// AssembleSession builds a valid initial session from a roster and
	// settings, before any remote write
	AssembleSession(ctx context.Context, input *AssembleSessionInput) (*AssembleSessionOutput, error)
}
