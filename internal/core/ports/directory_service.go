package ports

import (
	"context"

	"github.com/quetzart/directory-api/internal/core/domain"
)

// ListInput carries the raw query parameters of a public listing.
// Page and Size are clamped by the service.
type ListInput struct {
	Search string
	Page   int
	Size   int
}

// Page is a slice of listing items together with the effective paging values.
type Page[T any] struct {
	Page  int
	Size  int
	Total int64
	Items []T
}

// HomeInput holds the sample size of each home feed section.
type HomeInput struct {
	Artists        int
	Establishments int
	Artworks       int
}

// HomeFeed is the randomized aggregate shown on the landing screen.
type HomeFeed struct {
	Artists        []domain.ArtistCard
	Establishments []domain.EstablishmentCard
	Artworks       []domain.ArtworkCard
}

// DirectoryService defines the unauthenticated read operations.
type DirectoryService interface {
	ListArtists(ctx context.Context, in ListInput) (*Page[domain.ArtistCard], error)
	ListEstablishments(ctx context.Context, in ListInput) (*Page[domain.EstablishmentCard], error)
	ListArtworks(ctx context.Context, in ListInput) (*Page[domain.ArtworkCard], error)
	Home(ctx context.Context, in HomeInput) (*HomeFeed, error)
	GetArtist(ctx context.Context, userID int64) (*domain.User, error)
}
