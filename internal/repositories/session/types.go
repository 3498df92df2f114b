package session

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lverdier/defiparty/internal/models"
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// GetSessionInput defines the input for retrieving a session by ID
type GetSessionInput struct {
	// SessionID is the unique identifier for the session
	SessionID string
}

// SaveSessionInput defines the input for persisting a session
type SaveSessionInput struct {
	// Session is the document to write
	Session *models.Session

	// ExpectedTurnCounter, when non-nil, makes the write conditional: it
	// only commits if the stored turnCounter still equals this value.
	// A mismatch returns ErrCounterConflict.
	ExpectedTurnCounter *int64
}

// IncrementFieldInput defines the input for an atomic field increment
type IncrementFieldInput struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// Field addresses the counter, see FieldTurnCounter and the
	// Player*Field helpers
	Field string

	// Delta is added to the current value
	Delta int64
}

// IncrementFieldOutput contains the result of an atomic field increment
type IncrementFieldOutput struct {
	// NewValue is the field value after the increment
	NewValue int64
}

// SubscribeInput defines the input for opening a snapshot subscription
type SubscribeInput struct {
	// SessionID is the unique identifier for the session
	SessionID string
}

// Subscription is a cancellable stream of session snapshots. Consumers
// re-derive their view from each snapshot instead of mutating in place.
type Subscription struct {
	snapshots <-chan *models.Session
	closeFn   func() error
}

// NewSubscription wraps a snapshot channel and a close function. Exposed so
// fakes can be built in tests.
func NewSubscription(snapshots <-chan *models.Session, closeFn func() error) *Subscription {
	return &Subscription{
		snapshots: snapshots,
		closeFn:   closeFn,
	}
}

// Snapshots returns the snapshot channel. It is closed when the
// subscription ends.
func (s *Subscription) Snapshots() <-chan *models.Session {
	return s.snapshots
}

// Close ends the subscription
func (s *Subscription) Close() error {
	if s.closeFn != nil {
		return s.closeFn()
	}
	return nil
}

// Addressable fields for IncrementField.
const (
	// FieldTurnCounter addresses the session turn counter
	FieldTurnCounter = "turnCounter"

	// Player action-economy field names
	ActionJokers   = "jokersLeft"
	ActionRerolls  = "rerollsLeft"
	ActionExchange = "exchangeLeft"
)

// PlayerScoreField addresses a roster player's score
func PlayerScoreField(playerID string) string {
	return fmt.Sprintf("player:%s:score", playerID)
}

// PlayerActionField addresses one of a roster player's action-economy
// counters (ActionJokers, ActionRerolls or ActionExchange)
func PlayerActionField(playerID, action string) string {
	return fmt.Sprintf("player:%s:%s", playerID, action)
}
