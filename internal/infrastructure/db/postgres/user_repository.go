package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quetzart/directory-api/internal/core/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.db.WithContext(ctx).Model(&userRecord{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindByEmail returns the bare account without profile or gallery.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec userRecord
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return rec.toDomain(), nil
}

// FindByID loads the user with its profile and its gallery in creation order.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec userRecord
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Gallery", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return rec.toDomain(), nil
}

// CreateAccount writes user, profile and gallery rows in one transaction and
// copies the generated ids back into user.
func (r *UserRepository) CreateAccount(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := newUserRecord(user)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return err
		}
		if rec.Profile != nil {
			rec.Profile.UserID = rec.ID
			if err := tx.Create(rec.Profile).Error; err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
		}
		if len(rec.Gallery) > 0 {
			for i := range rec.Gallery {
				rec.Gallery[i].UserID = rec.ID
			}
			if err := tx.Create(&rec.Gallery).Error; err != nil {
				return fmt.Errorf("create gallery: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}

	user.ID = rec.ID
	if user.Profile != nil {
		user.Profile.UserID = rec.ID
		user.Profile.UpdatedAt = rec.Profile.UpdatedAt
	}
	for i := range user.Gallery {
		user.Gallery[i].ID = rec.Gallery[i].ID
		user.Gallery[i].UserID = rec.ID
		user.Gallery[i].CreatedAt = rec.Gallery[i].CreatedAt
	}
	return nil
}

func (r *UserRepository) ProfileExists(ctx context.Context, userID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.db.WithContext(ctx).Model(&profileRecord{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateProfile writes only the non-nil fields of changes.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, changes domain.ProfileChanges) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	values := profileUpdates(changes)
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&profileRecord{}).Where("user_id = ?", userID).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *UserRepository) SetProfileImage(ctx context.Context, userID int64, url string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&profileRecord{}).Where("user_id = ?", userID).Updates(map[string]any{
		"profile_image_url": url,
		"updated_at":        time.Now().UTC(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// AddGalleryItems appends one row per url with a single multi-row insert.
func (r *UserRepository) AddGalleryItems(ctx context.Context, userID int64, urls []string) ([]domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	recs := make([]galleryRecord, len(urls))
	for i, u := range urls {
		recs[i] = galleryRecord{UserID: userID, ImageURL: u, CreatedAt: now}
	}
	if err := r.db.WithContext(ctx).Create(&recs).Error; err != nil {
		return nil, err
	}

	items := make([]domain.GalleryItem, len(recs))
	for i, rec := range recs {
		items[i] = rec.toDomain()
	}
	return items, nil
}

// DeleteGalleryItem removes the item only when userID owns it. A foreign or
// missing item both yield ErrGalleryItemNotFound.
func (r *UserRepository) DeleteGalleryItem(ctx context.Context, userID, itemID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", itemID, userID).Delete(&galleryRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrGalleryItemNotFound
	}
	return nil
}

func profileUpdates(c domain.ProfileChanges) map[string]any {
	values := make(map[string]any)
	if c.DisplayName != nil {
		values["display_name"] = *c.DisplayName
	}
	if c.LastNameChangeAt != nil {
		values["last_name_change_at"] = *c.LastNameChangeAt
	}
	if c.Bio != nil {
		values["bio"] = *c.Bio
	}
	if c.ArtisticStyle != nil {
		values["artistic_style"] = *c.ArtisticStyle
	}
	if c.Category != nil {
		values["category"] = *c.Category
	}
	return values
}
