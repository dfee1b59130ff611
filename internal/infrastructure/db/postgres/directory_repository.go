package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/quetzart/directory-api/internal/core/domain"
	"github.com/quetzart/directory-api/internal/core/ports"
)

const randomOrder = "RANDOM()"

// DirectoryRepository runs the read-only listing queries over users,
// profiles and profile_gallery.
type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

type artistRow struct {
	UserID          int64
	DisplayName     string
	ProfileImageURL *string
	ArtisticStyle   *string
}

func (r artistRow) toDomain() domain.ArtistCard {
	return domain.ArtistCard{
		UserID:          r.UserID,
		DisplayName:     r.DisplayName,
		ProfileImageURL: r.ProfileImageURL,
		ArtisticStyle:   r.ArtisticStyle,
	}
}

type establishmentRow struct {
	UserID          int64
	DisplayName     string
	ProfileImageURL *string
	Category        *string
	Municipality    *string
}

func (r establishmentRow) toDomain() domain.EstablishmentCard {
	return domain.EstablishmentCard{
		UserID:          r.UserID,
		DisplayName:     r.DisplayName,
		ProfileImageURL: r.ProfileImageURL,
		Category:        r.Category,
		Municipality:    r.Municipality,
	}
}

type artworkRow struct {
	GalleryID   int64
	ImageURL    string
	UserID      int64
	DisplayName string
}

func (r artworkRow) toDomain() domain.ArtworkCard {
	return domain.ArtworkCard{
		GalleryID:   r.GalleryID,
		ImageURL:    r.ImageURL,
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
	}
}

func (r *DirectoryRepository) profilesByRole(ctx context.Context, role domain.Role) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Where("users.role = ?", string(role))
}

func (r *DirectoryRepository) artworks(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("profile_gallery").
		Joins("JOIN users ON users.id = profile_gallery.user_id").
		Joins("JOIN profiles ON profiles.user_id = users.id")
}

const (
	artistColumns        = "users.id AS user_id, profiles.display_name, profiles.profile_image_url, profiles.artistic_style"
	establishmentColumns = "users.id AS user_id, profiles.display_name, profiles.profile_image_url, profiles.category, profiles.municipality"
	artworkColumns       = "profile_gallery.id AS gallery_id, profile_gallery.image_url, users.id AS user_id, profiles.display_name"
)

func (r *DirectoryRepository) ListArtists(ctx context.Context, f ports.ListFilter) ([]domain.ArtistCard, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	base := func() *gorm.DB {
		q := r.profilesByRole(ctx, domain.RoleArtist)
		return matchAny(q, f.Search, "profiles.display_name", "profiles.artistic_style")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []artistRow
	err := base().Select(artistColumns).Order("users.id").Offset(f.Offset).Limit(f.Limit).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return mapRows(rows, artistRow.toDomain), total, nil
}

func (r *DirectoryRepository) ListEstablishments(ctx context.Context, f ports.ListFilter) ([]domain.EstablishmentCard, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	base := func() *gorm.DB {
		q := r.profilesByRole(ctx, domain.RoleEstablishment)
		return matchAny(q, f.Search, "profiles.display_name", "profiles.category", "profiles.municipality")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []establishmentRow
	err := base().Select(establishmentColumns).Order("users.id").Offset(f.Offset).Limit(f.Limit).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return mapRows(rows, establishmentRow.toDomain), total, nil
}

func (r *DirectoryRepository) ListArtworks(ctx context.Context, f ports.ListFilter) ([]domain.ArtworkCard, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	base := func() *gorm.DB {
		return matchAny(r.artworks(ctx), f.Search, "profiles.display_name")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []artworkRow
	err := base().Select(artworkColumns).Order("profile_gallery.id").Offset(f.Offset).Limit(f.Limit).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return mapRows(rows, artworkRow.toDomain), total, nil
}

func (r *DirectoryRepository) RandomArtists(ctx context.Context, n int) ([]domain.ArtistCard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []artistRow
	err := r.profilesByRole(ctx, domain.RoleArtist).Select(artistColumns).Order(randomOrder).Limit(n).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRows(rows, artistRow.toDomain), nil
}

func (r *DirectoryRepository) RandomEstablishments(ctx context.Context, n int) ([]domain.EstablishmentCard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []establishmentRow
	err := r.profilesByRole(ctx, domain.RoleEstablishment).Select(establishmentColumns).Order(randomOrder).Limit(n).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRows(rows, establishmentRow.toDomain), nil
}

// RandomArtworks only samples gallery items owned by artists.
func (r *DirectoryRepository) RandomArtworks(ctx context.Context, n int) ([]domain.ArtworkCard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []artworkRow
	err := r.artworks(ctx).
		Where("users.role = ?", string(domain.RoleArtist)).
		Select(artworkColumns).
		Order(randomOrder).
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapRows(rows, artworkRow.toDomain), nil
}

// matchAny adds a case-insensitive substring filter over columns. Blank
// search leaves the query untouched.
func matchAny(q *gorm.DB, search string, columns ...string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" {
		return q
	}
	pattern := "%" + escapeLike(search) + "%"

	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		conds[i] = c + ` ILIKE ? ESCAPE '\'`
		args[i] = pattern
	}
	return q.Where("("+strings.Join(conds, " OR ")+")", args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func mapRows[R, T any](rows []R, fn func(R) T) []T {
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = fn(r)
	}
	return out
}
