package duo

import (
	"github.com/redis/go-redis/v9"

	"github.com/lverdier/defiparty/internal/models"
)

// Config holds configuration for the Redis duo repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// SaveLinkInput defines the input for persisting a link
type SaveLinkInput struct {
	// Link is the Mentor/Élève pairing to store
	Link *models.MentorEleveLink
}

// ListLinksInput defines the input for listing links
type ListLinksInput struct{}

// ListLinksOutput contains all links in creation order
type ListLinksOutput struct {
	Links []*models.MentorEleveLink
}

// ConsumeLinkInput defines the input for consuming a link
type ConsumeLinkInput struct {
	// LinkID is the unique identifier for the link
	LinkID string
}
