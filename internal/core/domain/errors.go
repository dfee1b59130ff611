package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthenticated    = errors.New("not authenticated")

	ErrUserNotFound        = errors.New("user not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrArtistNotFound      = errors.New("artist not found")

	ErrNameChangeCooldown = errors.New("display name can only be changed every 30 days")
	ErrInvalidImage       = errors.New("invalid image payload")
	ErrEmptyGallery       = errors.New("gallery_base64 must be a non-empty list")
)
