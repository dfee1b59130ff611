package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/quetzart/directory-api/internal/core/domain"
	"github.com/quetzart/directory-api/internal/core/ports"
)

func testArtist() *domain.User {
	changed := time.Date(2025, 2, 3, 4, 5, 6, 0, time.FixedZone("CST", -6*3600))
	return &domain.User{
		ID:    7,
		Role:  domain.RoleArtist,
		Email: "ana@example.com",
		Profile: &domain.Profile{
			UserID:           7,
			DisplayName:      "Ana",
			LastNameChangeAt: &changed,
			Details:          domain.ArtistDetails{Bio: "Painter from Oaxaca.", ArtisticStyle: "Oil"},
		},
		Gallery: []domain.GalleryItem{{ID: 3, UserID: 7, ImageURL: "http://media/a.png"}},
	}
}

func TestProfileHandler_Me(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/profile/me", "")
	withUser(c, testArtist())

	if err := NewProfileHandler(&stubProfileService{}).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != "artist" || resp["display_name"] != "Ana" || resp["artistic_style"] != "Oil" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["last_name_change_at"] != "2025-02-03T10:05:06Z" {
		t.Fatalf("last_name_change_at = %v", resp["last_name_change_at"])
	}
	for _, k := range []string{"category", "street", "number", "postal_code", "colony", "municipality", "profile_image_url"} {
		v, ok := resp[k]
		if !ok || v != nil {
			t.Fatalf("%s should be present and null, got %v (present=%v)", k, v, ok)
		}
	}
	gallery, ok := resp["gallery"].([]any)
	if !ok || len(gallery) != 1 {
		t.Fatalf("gallery = %v", resp["gallery"])
	}
}

func TestProfileHandler_RequiresUser(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newTestContext(http.MethodGet, "/profile/me", "")
	assertHTTPStatus(t, h.Me(c), http.StatusUnauthorized)

	c, _ = newTestContext(http.MethodPost, "/profile/me/gallery", `{"gallery_base64":["x"]}`)
	assertHTTPStatus(t, h.AddGallery(c), http.StatusUnauthorized)
}

func TestProfileHandler_Update(t *testing.T) {
	user := testArtist()
	stub := &stubProfileService{
		updateFn: func(ctx context.Context, u *domain.User, in ports.UpdateProfileInput) (*domain.User, error) {
			if u.ID != 7 || in.DisplayName == nil || *in.DisplayName != "Ana María" || in.Bio != nil {
				t.Fatalf("unexpected update: %+v", in)
			}
			out := *u
			p := *u.Profile
			p.DisplayName = *in.DisplayName
			out.Profile = &p
			return &out, nil
		},
	}
	c, rec := newTestContext(http.MethodPatch, "/profile/me", `{"display_name":"Ana María"}`)
	withUser(c, user)

	if err := NewProfileHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DisplayName != "Ana María" {
		t.Fatalf("display_name = %q", resp.DisplayName)
	}
}

func TestProfileHandler_Update_Errors(t *testing.T) {
	stub := &stubProfileService{
		updateFn: func(context.Context, *domain.User, ports.UpdateProfileInput) (*domain.User, error) {
			return nil, domain.ErrNameChangeCooldown
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newTestContext(http.MethodPatch, "/profile/me", `{"display_name":"Other"}`)
	withUser(c, testArtist())
	if err := h.Update(c); !errors.Is(err, domain.ErrNameChangeCooldown) {
		t.Fatalf("expected ErrNameChangeCooldown, got %v", err)
	}

	c, _ = newTestContext(http.MethodPatch, "/profile/me", `{"display_name":"A"}`)
	withUser(c, testArtist())
	assertHTTPStatus(t, h.Update(c), http.StatusUnprocessableEntity)
}

func TestProfileHandler_SetProfileImage(t *testing.T) {
	stub := &stubProfileService{
		setImageFn: func(ctx context.Context, userID int64, dataURL string) (string, error) {
			if dataURL == "bad" {
				return "", domain.ErrInvalidImage
			}
			return "http://media/p.png", nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/profile/me/profile-image", `{"profile_image_base64":"data:image/png;base64,AAAA"}`)
	withUser(c, testArtist())
	if err := h.SetProfileImage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp profileImageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.OK || resp.ProfileImageURL != "http://media/p.png" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	c, _ = newTestContext(http.MethodPost, "/profile/me/profile-image", `{"profile_image_base64":"bad"}`)
	withUser(c, testArtist())
	if err := h.SetProfileImage(c); !errors.Is(err, domain.ErrInvalidImage) {
		t.Fatalf("expected ErrInvalidImage, got %v", err)
	}

	c, _ = newTestContext(http.MethodPost, "/profile/me/profile-image", `{}`)
	withUser(c, testArtist())
	assertHTTPStatus(t, h.SetProfileImage(c), http.StatusUnprocessableEntity)
}

func TestProfileHandler_AddGallery(t *testing.T) {
	stub := &stubProfileService{
		addGalleryFn: func(ctx context.Context, userID int64, images []string) ([]string, error) {
			return []string{"http://media/1.png", "http://media/2.png"}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/profile/me/gallery", `{"gallery_base64":["a","b"]}`)
	withUser(c, testArtist())
	if err := h.AddGallery(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp galleryAddedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.OK || len(resp.Items) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	for _, body := range []string{`{"gallery_base64":[]}`, `{}`, `{"gallery_base64":[""]}`} {
		c, _ = newTestContext(http.MethodPost, "/profile/me/gallery", body)
		withUser(c, testArtist())
		assertHTTPStatus(t, h.AddGallery(c), http.StatusUnprocessableEntity)
	}
}

func TestProfileHandler_DeleteGalleryItem(t *testing.T) {
	stub := &stubProfileService{
		deleteGalleryFn: func(ctx context.Context, userID, itemID int64) error {
			if userID != 7 {
				t.Fatalf("userID = %d", userID)
			}
			if itemID != 3 {
				return domain.ErrGalleryItemNotFound
			}
			return nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/profile/me/gallery/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	withUser(c, testArtist())
	if err := h.DeleteGalleryItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newTestContext(http.MethodDelete, "/profile/me/gallery/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	withUser(c, testArtist())
	if err := h.DeleteGalleryItem(c); !errors.Is(err, domain.ErrGalleryItemNotFound) {
		t.Fatalf("expected ErrGalleryItemNotFound, got %v", err)
	}

	c, _ = newTestContext(http.MethodDelete, "/profile/me/gallery/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withUser(c, testArtist())
	assertHTTPStatus(t, h.DeleteGalleryItem(c), http.StatusUnprocessableEntity)
}
