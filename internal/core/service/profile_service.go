package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quetzart/directory-api/internal/api/metrics"
	"github.com/quetzart/directory-api/internal/core/domain"
	"github.com/quetzart/directory-api/internal/core/ports"
)

// ProfileService applies changes a user makes to their own profile.
type ProfileService struct {
	users ports.UserRepository
	media ports.MediaStore
	log   zerolog.Logger
	now   func() time.Time
}

func NewProfileService(users ports.UserRepository, media ports.MediaStore, log zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, media: media, log: log, now: time.Now}
}

// Update applies a partial update and returns the refreshed user. Fields that
// do not belong to the user's role are ignored.
func (s *ProfileService) Update(ctx context.Context, user *domain.User, in ports.UpdateProfileInput) (*domain.User, error) {
	p := user.Profile
	if p == nil {
		return nil, domain.ErrProfileNotFound
	}

	now := s.now().UTC()
	var changes domain.ProfileChanges

	if in.DisplayName != nil && *in.DisplayName != p.DisplayName {
		if !p.CanChangeName(now) {
			metrics.NameChangesTotal.WithLabelValues("cooldown").Inc()
			return nil, domain.ErrNameChangeCooldown
		}
		changes.DisplayName = in.DisplayName
		changes.LastNameChangeAt = &now
	}

	switch p.Details.(type) {
	case domain.ArtistDetails:
		changes.Bio = in.Bio
		changes.ArtisticStyle = in.ArtisticStyle
	case domain.EstablishmentDetails:
		changes.Category = in.Category
	}

	if !changes.Empty() {
		if err := s.users.UpdateProfile(ctx, user.ID, changes); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		if changes.DisplayName != nil {
			metrics.NameChangesTotal.WithLabelValues("accepted").Inc()
			s.log.Info().Int64("user_id", user.ID).Msg("display name changed")
		}
	}

	return s.users.FindByID(ctx, user.ID)
}

// SetProfileImage stores the image and makes it the profile picture.
func (s *ProfileService) SetProfileImage(ctx context.Context, userID int64, dataURL string) (string, error) {
	exists, err := s.users.ProfileExists(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("set profile image: %w", err)
	}
	if !exists {
		s.log.Warn().Int64("user_id", userID).Msg("authenticated user without profile row")
		return "", domain.ErrProfileNotFound
	}

	url, err := s.media.Store(ctx, dataURL)
	if err != nil {
		return "", fmt.Errorf("set profile image: %w", err)
	}

	if err := s.users.SetProfileImage(ctx, userID, url); err != nil {
		return "", fmt.Errorf("set profile image: %w", err)
	}
	return url, nil
}

// AddGalleryItems stores every image and appends one gallery item per image.
func (s *ProfileService) AddGalleryItems(ctx context.Context, userID int64, images []string) ([]string, error) {
	if len(images) == 0 {
		return nil, domain.ErrEmptyGallery
	}

	urls := make([]string, 0, len(images))
	for i, img := range images {
		url, err := s.media.Store(ctx, img)
		if err != nil {
			return nil, fmt.Errorf("add gallery: image[%d]: %w", i, err)
		}
		urls = append(urls, url)
	}

	if _, err := s.users.AddGalleryItems(ctx, userID, urls); err != nil {
		return nil, fmt.Errorf("add gallery: %w", err)
	}

	metrics.GalleryItemsAddedTotal.Add(float64(len(urls)))
	return urls, nil
}

// DeleteGalleryItem removes one of the caller's own gallery items.
func (s *ProfileService) DeleteGalleryItem(ctx context.Context, userID, itemID int64) error {
	return s.users.DeleteGalleryItem(ctx, userID, itemID)
}
