package ports

import (
	"context"

	"github.com/quetzart/directory-api/internal/core/domain"
)

// UpdateProfileInput is a partial profile update. Nil fields are not touched.
type UpdateProfileInput struct {
	DisplayName   *string
	Bio           *string
	ArtisticStyle *string
	Category      *string
}

// ProfileService defines the operations a user performs on their own profile.
type ProfileService interface {
	Update(ctx context.Context, user *domain.User, in UpdateProfileInput) (*domain.User, error)
	SetProfileImage(ctx context.Context, userID int64, dataURL string) (string, error)
	AddGalleryItems(ctx context.Context, userID int64, images []string) ([]string, error)
	DeleteGalleryItem(ctx context.Context, userID, itemID int64) error
}
