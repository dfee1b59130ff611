package service

import (
	"context"
	"fmt"
	"time"

	"github.com/quetzart/directory-api/internal/core/domain"
	"github.com/quetzart/directory-api/internal/core/ports"
)

// memUserRepo is an in-memory UserRepository. Stored users are deep-copied
// on the way in and out.
type memUserRepo struct {
	users     map[int64]*domain.User
	nextUser  int64
	nextItem  int64
	createErr error
	updates   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Profile != nil {
		p := *u.Profile
		c.Profile = &p
	}
	c.Gallery = append([]domain.GalleryItem(nil), u.Gallery...)
	return &c
}

func (r *memUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *memUserRepo) CreateAccount(ctx context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if taken, _ := r.EmailExists(ctx, user.Email); taken {
		return domain.ErrEmailTaken
	}
	r.nextUser++
	user.ID = r.nextUser
	if user.Profile != nil {
		user.Profile.UserID = user.ID
	}
	for i := range user.Gallery {
		r.nextItem++
		user.Gallery[i].ID = r.nextItem
		user.Gallery[i].UserID = user.ID
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *memUserRepo) ProfileExists(_ context.Context, userID int64) (bool, error) {
	u, ok := r.users[userID]
	return ok && u.Profile != nil, nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, userID int64, c domain.ProfileChanges) error {
	u, ok := r.users[userID]
	if !ok || u.Profile == nil {
		return domain.ErrProfileNotFound
	}
	r.updates++
	p := u.Profile
	if c.DisplayName != nil {
		p.DisplayName = *c.DisplayName
	}
	if c.LastNameChangeAt != nil {
		t := *c.LastNameChangeAt
		p.LastNameChangeAt = &t
	}
	switch d := p.Details.(type) {
	case domain.ArtistDetails:
		if c.Bio != nil {
			d.Bio = *c.Bio
		}
		if c.ArtisticStyle != nil {
			d.ArtisticStyle = *c.ArtisticStyle
		}
		p.Details = d
	case domain.EstablishmentDetails:
		if c.Category != nil {
			d.Category = *c.Category
		}
		p.Details = d
	}
	return nil
}

func (r *memUserRepo) SetProfileImage(_ context.Context, userID int64, url string) error {
	u, ok := r.users[userID]
	if !ok || u.Profile == nil {
		return domain.ErrProfileNotFound
	}
	u.Profile.ProfileImageURL = &url
	return nil
}

func (r *memUserRepo) AddGalleryItems(_ context.Context, userID int64, urls []string) ([]domain.GalleryItem, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("foreign key violation")
	}
	items := make([]domain.GalleryItem, len(urls))
	for i, url := range urls {
		r.nextItem++
		items[i] = domain.GalleryItem{ID: r.nextItem, UserID: userID, ImageURL: url, CreatedAt: time.Now()}
	}
	u.Gallery = append(u.Gallery, items...)
	return items, nil
}

func (r *memUserRepo) DeleteGalleryItem(_ context.Context, userID, itemID int64) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrGalleryItemNotFound
	}
	for i, g := range u.Gallery {
		if g.ID == itemID {
			u.Gallery = append(u.Gallery[:i], u.Gallery[i+1:]...)
			return nil
		}
	}
	return domain.ErrGalleryItemNotFound
}

// stubMedia hands out sequential urls and can be told to reject a payload.
type stubMedia struct {
	stored []string
	reject string
}

func (m *stubMedia) Store(_ context.Context, dataURL string) (string, error) {
	if dataURL == m.reject {
		return "", domain.ErrInvalidImage
	}
	m.stored = append(m.stored, dataURL)
	return fmt.Sprintf("http://media.test/%d.png", len(m.stored)), nil
}

type stubDirectory struct {
	listFilter ports.ListFilter
	artists    []domain.ArtistCard
	total      int64
	randomN    []int
}

func (d *stubDirectory) ListArtists(_ context.Context, f ports.ListFilter) ([]domain.ArtistCard, int64, error) {
	d.listFilter = f
	return d.artists, d.total, nil
}

func (d *stubDirectory) ListEstablishments(_ context.Context, f ports.ListFilter) ([]domain.EstablishmentCard, int64, error) {
	d.listFilter = f
	return nil, 0, nil
}

func (d *stubDirectory) ListArtworks(_ context.Context, f ports.ListFilter) ([]domain.ArtworkCard, int64, error) {
	d.listFilter = f
	return nil, 0, nil
}

func (d *stubDirectory) RandomArtists(_ context.Context, n int) ([]domain.ArtistCard, error) {
	d.randomN = append(d.randomN, n)
	return d.artists[:min(n, len(d.artists))], nil
}

func (d *stubDirectory) RandomEstablishments(_ context.Context, n int) ([]domain.EstablishmentCard, error) {
	d.randomN = append(d.randomN, n)
	return nil, nil
}

func (d *stubDirectory) RandomArtworks(_ context.Context, n int) ([]domain.ArtworkCard, error) {
	d.randomN = append(d.randomN, n)
	return nil, nil
}
