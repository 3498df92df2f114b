package duo

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
	linkKeyPrefix = "duo:link:"
	linkIndexKey  = "duo:links"
)

// ErrLinkNotFound is returned when a link is not found
var ErrLinkNotFound = errors.New("duo link not found")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed duo repository
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

// SaveLink persists a link and indexes it by creation time
func (r *redisRepository) SaveLink(ctx context.Context, input *SaveLinkInput) error {
	if input == nil || input.Link == nil {
		return errors.New("input and link cannot be nil")
	}
	if input.Link.ID == "" {
		return errors.New("link ID cannot be empty")
	}

	doc, err := json.Marshal(input.Link)
	if err != nil {
		return fmt.Errorf("failed to marshal link: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, linkKeyPrefix+input.Link.ID, doc, 0)
	pipe.ZAdd(ctx, linkIndexKey, redis.Z{
		Score:  float64(input.Link.CreatedAt.UnixMilli()),
		Member: input.Link.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save link: %w", err)
	}

	return nil
}

// ListLinks returns all links in creation order
func (r *redisRepository) ListLinks(ctx context.Context, input *ListLinksInput) (*ListLinksOutput, error) {
	linkIDs, err := r.client.ZRange(ctx, linkIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list link index: %w", err)
	}

	links := make([]*models.MentorEleveLink, 0, len(linkIDs))
	for _, linkID := range linkIDs {
		link, err := r.getLink(ctx, linkID)
		if err != nil {
			if errors.Is(err, ErrLinkNotFound) {
				continue
			}
			return nil, err
		}
		links = append(links, link)
	}

	return &ListLinksOutput{Links: links}, nil
}

// ConsumeLink marks a link as consumed
func (r *redisRepository) ConsumeLink(ctx context.Context, input *ConsumeLinkInput) error {
	if input == nil || input.LinkID == "" {
		return errors.New("input and link ID cannot be empty")
	}

	link, err := r.getLink(ctx, input.LinkID)
	if err != nil {
		return err
	}

	link.IsConsumed = true
	return r.SaveLink(ctx, &SaveLinkInput{Link: link})
}

func (r *redisRepository) getLink(ctx context.Context, linkID string) (*models.MentorEleveLink, error) {
	raw, err := r.client.Get(ctx, linkKeyPrefix+linkID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	var link models.MentorEleveLink
	if err := json.Unmarshal([]byte(raw), &link); err != nil {
		return nil, fmt.Errorf("failed to unmarshal link: %w", err)
	}

	return &link, nil
}
