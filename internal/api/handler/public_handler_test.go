package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/quetzart/directory-api/internal/core/domain"
	"github.com/quetzart/directory-api/internal/core/ports"
)

func TestPublicHandler_Artists_Defaults(t *testing.T) {
	var got ports.ListInput
	stub := &stubDirectoryService{
		listArtistsFn: func(ctx context.Context, in ports.ListInput) (*ports.Page[domain.ArtistCard], error) {
			got = in
			return &ports.Page[domain.ArtistCard]{Page: in.Page, Size: in.Size}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/public/artists", "")

	if err := NewPublicHandler(stub).Artists(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != (ports.ListInput{Page: 1, Size: 20}) {
		t.Fatalf("input = %+v", got)
	}
	if body := rec.Body.String(); body != "{\"page\":1,\"size\":20,\"total\":0,\"items\":[]}\n" {
		t.Fatalf("body = %s", body)
	}
}

func TestPublicHandler_Artists_Query(t *testing.T) {
	style := "Oil"
	var got ports.ListInput
	stub := &stubDirectoryService{
		listArtistsFn: func(ctx context.Context, in ports.ListInput) (*ports.Page[domain.ArtistCard], error) {
			got = in
			return &ports.Page[domain.ArtistCard]{
				Page: 2, Size: 50, Total: 51,
				Items: []domain.ArtistCard{{UserID: 4, DisplayName: "Ana", ArtisticStyle: &style}},
			}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/public/artists?search=an&page=2&size=500", "")

	if err := NewPublicHandler(stub).Artists(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != (ports.ListInput{Search: "an", Page: 2, Size: 500}) {
		t.Fatalf("input = %+v", got)
	}

	var resp pageResponse[artistCardResponse]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Size != 50 || resp.Total != 51 || len(resp.Items) != 1 || *resp.Items[0].ArtisticStyle != "Oil" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPublicHandler_List_NonNumericPage(t *testing.T) {
	h := NewPublicHandler(&stubDirectoryService{})

	c, _ := newTestContext(http.MethodGet, "/public/establishments?page=abc", "")
	assertHTTPStatus(t, h.Establishments(c), http.StatusUnprocessableEntity)

	c, _ = newTestContext(http.MethodGet, "/public/artworks?size=x", "")
	assertHTTPStatus(t, h.Artworks(c), http.StatusUnprocessableEntity)
}

func TestPublicHandler_Home(t *testing.T) {
	var got ports.HomeInput
	stub := &stubDirectoryService{
		homeFn: func(ctx context.Context, in ports.HomeInput) (*ports.HomeFeed, error) {
			got = in
			return &ports.HomeFeed{
				Artworks: []domain.ArtworkCard{{GalleryID: 1, ImageURL: "http://media/1.png", UserID: 4, DisplayName: "Ana"}},
			}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/public/home?artworks_size=3", "")

	if err := NewPublicHandler(stub).Home(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != (ports.HomeInput{Artists: 10, Establishments: 10, Artworks: 3}) {
		t.Fatalf("input = %+v", got)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["artists"] == nil || len(resp["artists"]) != 0 {
		t.Fatalf("artists should be an empty list, got %v", resp["artists"])
	}
	if len(resp["artworks"]) != 1 || resp["artworks"][0]["artist_name"] != "Ana" {
		t.Fatalf("artworks = %v", resp["artworks"])
	}
}

func TestPublicHandler_Home_OutOfRange(t *testing.T) {
	stub := &stubDirectoryService{
		homeFn: func(context.Context, ports.HomeInput) (*ports.HomeFeed, error) {
			mustNotCall(t)
			return nil, nil
		},
	}

	for _, q := range []string{"artists_size=0", "establishments_size=31", "artworks_size=-1", "artists_size=ten"} {
		t.Run(q, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, "/public/home?"+q, "")
			assertHTTPStatus(t, NewPublicHandler(stub).Home(c), http.StatusUnprocessableEntity)
		})
	}
}

func TestPublicHandler_Artist(t *testing.T) {
	stub := &stubDirectoryService{
		getArtistFn: func(ctx context.Context, userID int64) (*domain.User, error) {
			if userID != 7 {
				return nil, domain.ErrArtistNotFound
			}
			return testArtist(), nil
		},
	}
	h := NewPublicHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/public/artist/7", "")
	c.SetParamNames("user_id")
	c.SetParamValues("7")
	if err := h.Artist(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp publicArtistResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserID != 7 || resp.ArtisticStyle != "Oil" || len(resp.Gallery) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	c, _ = newTestContext(http.MethodGet, "/public/artist/8", "")
	c.SetParamNames("user_id")
	c.SetParamValues("8")
	if err := h.Artist(c); !errors.Is(err, domain.ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	c, _ = newTestContext(http.MethodGet, "/public/artist/x", "")
	c.SetParamNames("user_id")
	c.SetParamValues("x")
	assertHTTPStatus(t, h.Artist(c), http.StatusUnprocessableEntity)
}

func TestToProfileResponse_Establishment(t *testing.T) {
	colony := "Centro"
	resp := toProfileResponse(&domain.User{
		Role: domain.RoleEstablishment,
		Profile: &domain.Profile{
			DisplayName: "La Cantina",
			Details: domain.EstablishmentDetails{
				Category: "Bar", Street: "Alcalá", Number: "100", PostalCode: "68000", Colony: &colony,
			},
		},
	})

	if resp.Bio != nil || resp.ArtisticStyle != nil {
		t.Fatalf("artist fields should be nil: %+v", resp)
	}
	if resp.Category == nil || *resp.Category != "Bar" || resp.Colony == nil || resp.Municipality != nil {
		t.Fatalf("establishment fields = %+v", resp)
	}
	if resp.Gallery == nil || len(resp.Gallery) != 0 {
		t.Fatalf("gallery should be an empty list, got %v", resp.Gallery)
	}
	if resp.LastNameChangeAt != nil {
		t.Fatalf("last_name_change_at should be nil")
	}
}
