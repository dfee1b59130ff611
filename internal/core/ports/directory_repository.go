package ports

import (
	"context"

	"github.com/quetzart/directory-api/internal/core/domain"
)

// ListFilter carries the query parameters shared by the public listings.
type ListFilter struct {
	Search string // optional: case-insensitive substring match
	Offset int
	Limit  int
}

// DirectoryRepository serves the read-only public listings.
type DirectoryRepository interface {
	ListArtists(ctx context.Context, f ListFilter) ([]domain.ArtistCard, int64, error)
	ListEstablishments(ctx context.Context, f ListFilter) ([]domain.EstablishmentCard, int64, error)
	// ListArtworks covers gallery items of every role.
	ListArtworks(ctx context.Context, f ListFilter) ([]domain.ArtworkCard, int64, error)

	RandomArtists(ctx context.Context, n int) ([]domain.ArtistCard, error)
	RandomEstablishments(ctx context.Context, n int) ([]domain.EstablishmentCard, error)
	// RandomArtworks samples gallery items owned by artists only.
	RandomArtworks(ctx context.Context, n int) ([]domain.ArtworkCard, error)
}
