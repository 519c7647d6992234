package domain

import (
	"context"

	"voiceloom/internal/adapters/twitterapi"
)

// ContentSource is the outbound seam the curator fetches through
// satisfied by the twitterapi client
type ContentSource interface {
	Lookup(ctx context.Context, handle string) (twitterapi.Creator, error)
	RecentPosts(ctx context.Context, handle, cursor string) (twitterapi.Page, error)
}

// ServicePort is consumed by the training pipeline and handlers
type ServicePort interface {
	Curate(ctx context.Context, handle string, cfg Config) (Result, error)
}
