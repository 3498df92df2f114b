package duo

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/lverdier/defiparty/internal/repositories/duo Repository

// Repository persists Mentor/Élève links. Links are durable across
// sessions; only the isConsumed flag ever changes after creation.
type Repository interface {
	// SaveLink persists a link
	SaveLink(ctx context.Context, input *SaveLinkInput) error

	// ListLinks returns all links in creation order
	ListLinks(ctx context.Context, input *ListLinksInput) (*ListLinksOutput, error)

	// ConsumeLink marks a link as consumed
	ConsumeLink(ctx context.Context, input *ConsumeLinkInput) error
}
