package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lverdier/defiparty/internal/models"
)

const (
	// Key prefixes for Redis
	recordKeyPrefix = "history:record:"
	indexKey        = "history:index"
)

var (
	// ErrRecordNotFound is returned when a history record is not found
	ErrRecordNotFound = errors.New("history record not found")
)

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client   *redis.Client
	capacity int
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:   cfg.RedisClient,
		capacity: capacity,
	}, nil
}

// AppendRecord stores a history record keyed by session id. SETNX makes a
// retried archival a no-op, which is what keeps the flow idempotent.
func (r *redisRepository) AppendRecord(ctx context.Context, input *AppendRecordInput) (*AppendRecordOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.New("input and record cannot be nil")
	}
	if input.Record.SessionID == "" {
		return nil, errors.New("record session ID cannot be empty")
	}

	doc, err := json.Marshal(input.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history record: %w", err)
	}

	recordKey := recordKeyPrefix + input.Record.SessionID
	appended, err := r.client.SetNX(ctx, recordKey, doc, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to store history record: %w", err)
	}

	if !appended {
		return &AppendRecordOutput{Appended: false}, nil
	}

	err = r.client.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(input.Record.PlayedAt.UnixMilli()),
		Member: input.Record.SessionID,
	}).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to index history record: %w", err)
	}

	if err := r.evictExcess(ctx); err != nil {
		return nil, err
	}

	return &AppendRecordOutput{Appended: true}, nil
}

// evictExcess trims the index to capacity, deleting the evicted records
func (r *redisRepository) evictExcess(ctx context.Context) error {
	// Oldest entries sit at the low end of the index
	evicted, err := r.client.ZRange(ctx, indexKey, 0, int64(-r.capacity-1)).Result()
	if err != nil {
		return fmt.Errorf("failed to find evictable records: %w", err)
	}

	if len(evicted) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, sessionID := range evicted {
		pipe.Del(ctx, recordKeyPrefix+sessionID)
	}
	pipe.ZRemRangeByRank(ctx, indexKey, 0, int64(-r.capacity-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to evict history records: %w", err)
	}

	return nil
}

// ListRecords returns history records newest first
func (r *redisRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	sessionIDs, err := r.client.ZRevRange(ctx, indexKey, 0, int64(r.capacity-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history index: %w", err)
	}

	records := make([]*models.HistoryRecord, 0, len(sessionIDs))
	for _, sessionID := range sessionIDs {
		record, err := r.GetRecord(ctx, &GetRecordInput{SessionID: sessionID})
		if err != nil {
			// Record deleted between index read and fetch
			if errors.Is(err, ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}

	return &ListRecordsOutput{Records: records}, nil
}

// GetRecord retrieves a record by session id
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.HistoryRecord, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, recordKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get history record: %w", err)
	}

	var record models.HistoryRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history record: %w", err)
	}

	return &record, nil
}
