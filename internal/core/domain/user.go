package domain

import "time"

// Role identifies which kind of directory entry a user owns.
type Role string

const (
	RoleArtist        Role = "artist"
	RoleEstablishment Role = "establishment"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleArtist || r == RoleEstablishment
}

// User models a registered account together with the profile and gallery it owns.
type User struct {
	ID           int64
	Role         Role
	Email        string
	PasswordHash string
	CreatedAt    time.Time

	Profile *Profile
	Gallery []GalleryItem
}

// GalleryItem is a single image in a user's gallery.
type GalleryItem struct {
	ID        int64
	UserID    int64
	ImageURL  string
	CreatedAt time.Time
}
