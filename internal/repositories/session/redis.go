package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/lverdier/defiparty/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix   = "session:"
	eventChannelPrefix = "session:events:"

	// Buffered so a slow consumer does not stall the pub/sub pump
	subscriptionBuffer = 16
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrPlayerNotFound is returned when a field addresses an unknown player
	ErrPlayerNotFound = errors.New("player not found")

	// ErrCounterConflict is returned when a conditional write loses the race
	ErrCounterConflict = errors.New("turn counter conflict")

	// ErrCounterExhausted is returned when a decrement would drive an
	// action-economy counter below zero
	ErrCounterExhausted = errors.New("counter exhausted")

	// ErrUnknownField is returned for unaddressable increment fields
	ErrUnknownField = errors.New("unknown field")

	// ErrStoreUnavailable wraps transport-level failures
	ErrStoreUnavailable = errors.New("store unavailable")
)

// incrementScript mutates a single numeric field inside the session JSON
// document in one atomic script execution, publishing the new snapshot.
// Returns {1, newValue} on success and {0, currentValue} when a fail-closed
// counter would go negative.
var incrementScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
	return redis.error_reply('session not found')
end
local doc = cjson.decode(raw)
local field = ARGV[1]
local delta = tonumber(ARGV[2])
local value
if field == 'turnCounter' then
	value = (doc['turnCounter'] or 0) + delta
	doc['turnCounter'] = value
else
	local id, name = string.match(field, '^player:(.-):(%a+)$')
	if not id then
		return redis.error_reply('unknown field')
	end
	if name ~= 'score' and name ~= 'jokersLeft' and name ~= 'rerollsLeft' and name ~= 'exchangeLeft' then
		return redis.error_reply('unknown field')
	end
	local player
	for _, p in ipairs(doc['roster']) do
		if p['id'] == id then
			player = p
			break
		end
	end
	if not player then
		return redis.error_reply('player not found')
	end
	value = (player[name] or 0) + delta
	if name ~= 'score' and value < 0 then
		return {0, player[name] or 0}
	end
	player[name] = value
end
local encoded = cjson.encode(doc)
redis.call('SET', KEYS[1], encoded)
redis.call('PUBLISH', ARGV[3], encoded)
return {1, value}
`)

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// SaveSession persists a session to Redis. With ExpectedTurnCounter set the
// write runs under WATCH and commits only if the stored counter still
// matches; any concurrent modification of the key aborts the transaction.
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	doc, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := sessionKeyPrefix + input.Session.ID
	channel := eventChannelPrefix + input.Session.ID

	if input.ExpectedTurnCounter == nil {
		pipe := r.client.Pipeline()
		pipe.Set(ctx, key, doc, 0)
		pipe.Publish(ctx, channel, doc)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		var current models.Session
		if err := json.Unmarshal([]byte(raw), &current); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		if current.TurnCounter != *input.ExpectedTurnCounter {
			return ErrCounterConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, doc, 0)
			pipe.Publish(ctx, channel, doc)
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return ErrCounterConflict
	}
	return err
}

// IncrementField atomically adds a delta to a numeric session field via a
// Lua script, so no concurrent writer can observe a partial update.
func (r *redisRepository) IncrementField(ctx context.Context, input *IncrementFieldInput) (*IncrementFieldOutput, error) {
	if input == nil || input.SessionID == "" || input.Field == "" {
		return nil, errors.New("input, session ID and field cannot be empty")
	}

	key := sessionKeyPrefix + input.SessionID
	channel := eventChannelPrefix + input.SessionID

	res, err := incrementScript.Run(ctx, r.client, []string{key}, input.Field, input.Delta, channel).Result()
	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "session not found"):
			return nil, ErrSessionNotFound
		case strings.Contains(msg, "player not found"):
			return nil, ErrPlayerNotFound
		case strings.Contains(msg, "unknown field"):
			return nil, ErrUnknownField
		default:
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) != 2 {
		return nil, fmt.Errorf("unexpected script result: %v", res)
	}

	committed, _ := vals[0].(int64)
	value, _ := vals[1].(int64)

	if committed == 0 {
		return nil, ErrCounterExhausted
	}

	return &IncrementFieldOutput{NewValue: value}, nil
}

// Subscribe opens a snapshot stream for a session. The current state, if
// any, is delivered first; every subsequent write publishes a new snapshot.
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, eventChannelPrefix+input.SessionID)

	// Confirm the subscription before reading the initial state, so no
	// write can slip between the read and the stream.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	ch := make(chan *models.Session, subscriptionBuffer)

	initial, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		_ = pubsub.Close()
		return nil, err
	}
	if initial != nil {
		ch <- initial
	}

	go func() {
		defer close(ch)
		for msg := range pubsub.Channel() {
			var sess models.Session
			if err := json.Unmarshal([]byte(msg.Payload), &sess); err != nil {
				continue
			}
			select {
			case ch <- &sess:
			case <-ctx.Done():
				return
			}
		}
	}()

	return NewSubscription(ch, pubsub.Close), nil
}
