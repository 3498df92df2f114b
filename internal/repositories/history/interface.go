package history

import (
	"context"

	"github.com/lverdier/defiparty/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/lverdier/defiparty/internal/repositories/history Repository

// Repository is the capped, ordered log of finished sessions. Appends are
// idempotent on session id; the log keeps at most the configured capacity,
// newest first.
type Repository interface {
	// AppendRecord stores a history record. Appending the same session id
	// twice leaves a single record and reports Appended=false.
	AppendRecord(ctx context.Context, input *AppendRecordInput) (*AppendRecordOutput, error)

	// ListRecords returns records newest first, at most the capacity
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)

	// GetRecord retrieves a record by session id
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.HistoryRecord, error)
}
