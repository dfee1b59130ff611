package handler

import (
	"time"

	"github.com/quetzart/directory-api/internal/core/domain"
	"github.com/quetzart/directory-api/internal/core/ports"
)

func toTokenResponse(t *ports.TokenResult) tokenResponse {
	return tokenResponse{AccessToken: t.AccessToken, TokenType: t.TokenType}
}

// toProfileResponse fills only the columns that belong to the user's role;
// the rest serialize as null.
func toProfileResponse(u *domain.User) profileResponse {
	resp := profileResponse{
		Role:    string(u.Role),
		Email:   u.Email,
		Gallery: toGalleryResponse(u.Gallery),
	}

	p := u.Profile
	if p == nil {
		return resp
	}
	resp.DisplayName = p.DisplayName
	resp.ProfileImageURL = p.ProfileImageURL
	if p.LastNameChangeAt != nil {
		ts := p.LastNameChangeAt.UTC().Format(time.RFC3339)
		resp.LastNameChangeAt = &ts
	}

	switch d := p.Details.(type) {
	case domain.ArtistDetails:
		resp.Bio = &d.Bio
		resp.ArtisticStyle = &d.ArtisticStyle
	case domain.EstablishmentDetails:
		resp.Category = &d.Category
		resp.Street = &d.Street
		resp.Number = &d.Number
		resp.PostalCode = &d.PostalCode
		resp.Colony = d.Colony
		resp.Municipality = d.Municipality
	}
	return resp
}

func toGalleryResponse(items []domain.GalleryItem) []galleryItemResponse {
	out := make([]galleryItemResponse, len(items))
	for i, g := range items {
		out[i] = galleryItemResponse{ID: g.ID, ImageURL: g.ImageURL}
	}
	return out
}

func toPublicArtistResponse(u *domain.User) publicArtistResponse {
	resp := publicArtistResponse{
		UserID:  u.ID,
		Gallery: toGalleryResponse(u.Gallery),
	}
	if p := u.Profile; p != nil {
		resp.DisplayName = p.DisplayName
		resp.ProfileImageURL = p.ProfileImageURL
		if d, ok := p.Artist(); ok {
			resp.Bio = d.Bio
			resp.ArtisticStyle = d.ArtisticStyle
		}
	}
	return resp
}

func toArtistCard(a domain.ArtistCard) artistCardResponse {
	return artistCardResponse{
		UserID:          a.UserID,
		DisplayName:     a.DisplayName,
		ProfileImageURL: a.ProfileImageURL,
		ArtisticStyle:   a.ArtisticStyle,
	}
}

func toEstablishmentCard(e domain.EstablishmentCard) establishmentCardResponse {
	return establishmentCardResponse{
		UserID:          e.UserID,
		DisplayName:     e.DisplayName,
		ProfileImageURL: e.ProfileImageURL,
		Category:        e.Category,
		Municipality:    e.Municipality,
	}
}

func toArtworkCard(a domain.ArtworkCard) artworkCardResponse {
	return artworkCardResponse{
		GalleryID:   a.GalleryID,
		ImageURL:    a.ImageURL,
		UserID:      a.UserID,
		DisplayName: a.DisplayName,
	}
}

func toHomeArtwork(a domain.ArtworkCard) homeArtworkResponse {
	return homeArtworkResponse{
		GalleryID:  a.GalleryID,
		ImageURL:   a.ImageURL,
		UserID:     a.UserID,
		ArtistName: a.DisplayName,
	}
}

func toPageResponse[D, R any](p *ports.Page[D], fn func(D) R) pageResponse[R] {
	return pageResponse[R]{
		Page:  p.Page,
		Size:  p.Size,
		Total: p.Total,
		Items: mapSlice(p.Items, fn),
	}
}

func toHomeResponse(f *ports.HomeFeed) homeResponse {
	return homeResponse{
		Artists:        mapSlice(f.Artists, toArtistCard),
		Establishments: mapSlice(f.Establishments, toEstablishmentCard),
		Artworks:       mapSlice(f.Artworks, toHomeArtwork),
	}
}

// mapSlice never returns nil so empty lists encode as [].
func mapSlice[D, R any](in []D, fn func(D) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
