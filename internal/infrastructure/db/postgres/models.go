package postgres

import (
	"time"

	"github.com/quetzart/directory-api/internal/core/domain"
)

// userRecord owns its profile and gallery; both are removed with the user.
type userRecord struct {
	ID           int64     `gorm:"primaryKey"`
	Role         string    `gorm:"size:20;not null;index"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`

	Profile *profileRecord  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Gallery []galleryRecord `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (userRecord) TableName() string { return "users" }

// profileRecord is the single wide row behind both profile variants.
type profileRecord struct {
	UserID           int64   `gorm:"primaryKey;autoIncrement:false"`
	DisplayName      string  `gorm:"size:120;not null"`
	ProfileImageURL  *string `gorm:"size:500"`
	LastNameChangeAt *time.Time
	UpdatedAt        time.Time

	Bio           *string `gorm:"type:text"`
	ArtisticStyle *string `gorm:"size:120"`

	Category     *string `gorm:"size:120"`
	Street       *string `gorm:"size:200"`
	Number       *string `gorm:"size:50"`
	PostalCode   *string `gorm:"size:20"`
	Colony       *string `gorm:"size:120"`
	Municipality *string `gorm:"size:120"`
}

func (profileRecord) TableName() string { return "profiles" }

type galleryRecord struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"not null;index"`
	ImageURL  string    `gorm:"size:500;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (galleryRecord) TableName() string { return "profile_gallery" }

func newUserRecord(u *domain.User) *userRecord {
	rec := &userRecord{
		Role:         string(u.Role),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
	if u.Profile != nil {
		rec.Profile = newProfileRecord(u.Profile)
	}
	for _, g := range u.Gallery {
		rec.Gallery = append(rec.Gallery, galleryRecord{ImageURL: g.ImageURL, CreatedAt: g.CreatedAt})
	}
	return rec
}

func newProfileRecord(p *domain.Profile) *profileRecord {
	rec := &profileRecord{
		UserID:           p.UserID,
		DisplayName:      p.DisplayName,
		ProfileImageURL:  p.ProfileImageURL,
		LastNameChangeAt: p.LastNameChangeAt,
	}
	switch d := p.Details.(type) {
	case domain.ArtistDetails:
		rec.Bio = &d.Bio
		rec.ArtisticStyle = &d.ArtisticStyle
	case domain.EstablishmentDetails:
		rec.Category = &d.Category
		rec.Street = &d.Street
		rec.Number = &d.Number
		rec.PostalCode = &d.PostalCode
		rec.Colony = d.Colony
		rec.Municipality = d.Municipality
	}
	return rec
}

func (r *userRecord) toDomain() *domain.User {
	u := &domain.User{
		ID:           r.ID,
		Role:         domain.Role(r.Role),
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		Gallery:      make([]domain.GalleryItem, 0, len(r.Gallery)),
	}
	if r.Profile != nil {
		u.Profile = r.Profile.toDomain(u.Role)
	}
	for _, g := range r.Gallery {
		u.Gallery = append(u.Gallery, g.toDomain())
	}
	return u
}

// toDomain picks the details variant from the owner's role, not from which
// columns happen to be filled.
func (r *profileRecord) toDomain(role domain.Role) *domain.Profile {
	p := &domain.Profile{
		UserID:           r.UserID,
		DisplayName:      r.DisplayName,
		ProfileImageURL:  r.ProfileImageURL,
		LastNameChangeAt: r.LastNameChangeAt,
		UpdatedAt:        r.UpdatedAt,
	}
	switch role {
	case domain.RoleArtist:
		p.Details = domain.ArtistDetails{
			Bio:           deref(r.Bio),
			ArtisticStyle: deref(r.ArtisticStyle),
		}
	case domain.RoleEstablishment:
		p.Details = domain.EstablishmentDetails{
			Category:     deref(r.Category),
			Street:       deref(r.Street),
			Number:       deref(r.Number),
			PostalCode:   deref(r.PostalCode),
			Colony:       r.Colony,
			Municipality: r.Municipality,
		}
	}
	return p
}

func (r galleryRecord) toDomain() domain.GalleryItem {
	return domain.GalleryItem{
		ID:        r.ID,
		UserID:    r.UserID,
		ImageURL:  r.ImageURL,
		CreatedAt: r.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
