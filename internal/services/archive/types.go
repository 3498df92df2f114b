package archive

import (
	"github.com/lverdier/defiparty/internal/common/clock"
	"github.com/lverdier/defiparty/internal/models"
	historyRepo "github.com/lverdier/defiparty/internal/repositories/history"
	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
)

// Config holds configuration for the archive service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	HistoryRepo historyRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// FinalizeSessionInput contains parameters for finalizing a session
type FinalizeSessionInput struct {
	// SessionID is the unique identifier for the finished session
	SessionID string
}

// FinalizeSessionOutput contains the result of finalizing a session
type FinalizeSessionOutput struct {
	// Record is the history record for the session
	Record *models.HistoryRecord

	// Appended is false when the record already existed (retried archival)
	Appended bool
}

// GetHistoryInput contains parameters for listing archived games
type GetHistoryInput struct{}

// GetHistoryOutput contains archived games, newest first
type GetHistoryOutput struct {
	Records []*models.HistoryRecord
}
