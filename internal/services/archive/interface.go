package archive

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/lverdier/defiparty/internal/services/archive Service

// Service finalizes finished sessions into history. FinalizeSession is
// idempotent: a retried call after a partial failure never duplicates a
// history record.
type Service interface {
	// FinalizeSession computes winner/loser, writes the finalize fields and
	// appends one history record keyed by session id
	FinalizeSession(ctx context.Context, input *FinalizeSessionInput) (*FinalizeSessionOutput, error)

	// GetHistory lists archived games, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
