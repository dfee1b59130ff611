package ports

import (
	"context"

	"github.com/quetzart/directory-api/internal/core/domain"
)

// UserRepository defines persistence for users, their profile and gallery.
type UserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID loads the user with its profile and gallery (ordered by creation).
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// CreateAccount persists user, profile and gallery in a single transaction.
	// The generated ids are written back into user.
	CreateAccount(ctx context.Context, user *domain.User) error

	ProfileExists(ctx context.Context, userID int64) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, changes domain.ProfileChanges) error
	SetProfileImage(ctx context.Context, userID int64, url string) error

	AddGalleryItems(ctx context.Context, userID int64, urls []string) ([]domain.GalleryItem, error)
	// DeleteGalleryItem removes the item only when it belongs to userID.
	DeleteGalleryItem(ctx context.Context, userID, itemID int64) error
}
