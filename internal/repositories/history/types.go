package history

import (
	"github.com/redis/go-redis/v9"

	"github.com/lverdier/defiparty/internal/models"
)

// DefaultCapacity is how many finished games the log retains
const DefaultCapacity = 10

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Capacity caps the number of retained records; DefaultCapacity if 0
	Capacity int
}

// AppendRecordInput defines the input for appending a history record
type AppendRecordInput struct {
	// Record is the finished-game summary to store
	Record *models.HistoryRecord
}

// AppendRecordOutput contains the result of appending a history record
type AppendRecordOutput struct {
	// Appended is false when a record for the session id already existed
	Appended bool
}

// ListRecordsInput defines the input for listing history records
type ListRecordsInput struct{}

// ListRecordsOutput contains history records, newest first
type ListRecordsOutput struct {
	Records []*models.HistoryRecord
}

// GetRecordInput defines the input for retrieving a record by session id
type GetRecordInput struct {
	// SessionID is the finished session's id
	SessionID string
}
