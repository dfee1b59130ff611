package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quetzart/directory-api/internal/core/domain"
	"github.com/quetzart/directory-api/internal/core/ports"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 50

	DefaultHomeSize = 10
	MaxHomeSize     = 30
)

// Paginate clamps page to >= 1 and size to [1, MaxPageSize] and returns the
// effective values along with the row offset.
func Paginate(page, size int) (effPage, effSize, offset int) {
	effPage = max(page, 1)
	effSize = min(max(size, 1), MaxPageSize)
	return effPage, effSize, (effPage - 1) * effSize
}

// DirectoryService serves the public, read-only views of the directory.
type DirectoryService struct {
	directory ports.DirectoryRepository
	users     ports.UserRepository
	log       zerolog.Logger
}

func NewDirectoryService(directory ports.DirectoryRepository, users ports.UserRepository, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{directory: directory, users: users, log: log}
}

func (s *DirectoryService) ListArtists(ctx context.Context, in ports.ListInput) (*ports.Page[domain.ArtistCard], error) {
	page, size, offset := Paginate(in.Page, in.Size)
	items, total, err := s.directory.ListArtists(ctx, ports.ListFilter{Search: in.Search, Offset: offset, Limit: size})
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return &ports.Page[domain.ArtistCard]{Page: page, Size: size, Total: total, Items: items}, nil
}

func (s *DirectoryService) ListEstablishments(ctx context.Context, in ports.ListInput) (*ports.Page[domain.EstablishmentCard], error) {
	page, size, offset := Paginate(in.Page, in.Size)
	items, total, err := s.directory.ListEstablishments(ctx, ports.ListFilter{Search: in.Search, Offset: offset, Limit: size})
	if err != nil {
		return nil, fmt.Errorf("list establishments: %w", err)
	}
	return &ports.Page[domain.EstablishmentCard]{Page: page, Size: size, Total: total, Items: items}, nil
}

func (s *DirectoryService) ListArtworks(ctx context.Context, in ports.ListInput) (*ports.Page[domain.ArtworkCard], error) {
	page, size, offset := Paginate(in.Page, in.Size)
	items, total, err := s.directory.ListArtworks(ctx, ports.ListFilter{Search: in.Search, Offset: offset, Limit: size})
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	return &ports.Page[domain.ArtworkCard]{Page: page, Size: size, Total: total, Items: items}, nil
}

// Home samples each section independently. Sizes are expected to be already
// validated against [1, MaxHomeSize].
func (s *DirectoryService) Home(ctx context.Context, in ports.HomeInput) (*ports.HomeFeed, error) {
	artists, err := s.directory.RandomArtists(ctx, in.Artists)
	if err != nil {
		return nil, fmt.Errorf("home artists: %w", err)
	}
	establishments, err := s.directory.RandomEstablishments(ctx, in.Establishments)
	if err != nil {
		return nil, fmt.Errorf("home establishments: %w", err)
	}
	artworks, err := s.directory.RandomArtworks(ctx, in.Artworks)
	if err != nil {
		return nil, fmt.Errorf("home artworks: %w", err)
	}

	s.log.Debug().
		Int("artists", len(artists)).
		Int("establishments", len(establishments)).
		Int("artworks", len(artworks)).
		Msg("home feed sampled")

	return &ports.HomeFeed{
		Artists:        artists,
		Establishments: establishments,
		Artworks:       artworks,
	}, nil
}

// GetArtist returns an artist with profile and gallery. Users of any other
// role are reported as not found.
func (s *DirectoryService) GetArtist(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist: %w", err)
	}
	if user.Role != domain.RoleArtist || user.Profile == nil {
		return nil, domain.ErrArtistNotFound
	}
	return user, nil
}
