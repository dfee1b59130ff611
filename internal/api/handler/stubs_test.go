package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quetzart/directory-api/internal/core/domain"
	"github.com/quetzart/directory-api/internal/core/ports"
)

type stubAuthService struct {
	registerArtistFn        func(ctx context.Context, in ports.RegisterArtistInput) (*ports.TokenResult, error)
	registerEstablishmentFn func(ctx context.Context, in ports.RegisterEstablishmentInput) (*ports.TokenResult, error)
	loginFn                 func(ctx context.Context, email, password string) (*ports.TokenResult, error)
}

func (s *stubAuthService) RegisterArtist(ctx context.Context, in ports.RegisterArtistInput) (*ports.TokenResult, error) {
	return s.registerArtistFn(ctx, in)
}

func (s *stubAuthService) RegisterEstablishment(ctx context.Context, in ports.RegisterEstablishmentInput) (*ports.TokenResult, error) {
	return s.registerEstablishmentFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.TokenResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ResolveSession(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUnauthenticated
}

type stubProfileService struct {
	updateFn        func(ctx context.Context, user *domain.User, in ports.UpdateProfileInput) (*domain.User, error)
	setImageFn      func(ctx context.Context, userID int64, dataURL string) (string, error)
	addGalleryFn    func(ctx context.Context, userID int64, images []string) ([]string, error)
	deleteGalleryFn func(ctx context.Context, userID, itemID int64) error
}

func (s *stubProfileService) Update(ctx context.Context, user *domain.User, in ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, user, in)
}

func (s *stubProfileService) SetProfileImage(ctx context.Context, userID int64, dataURL string) (string, error) {
	return s.setImageFn(ctx, userID, dataURL)
}

func (s *stubProfileService) AddGalleryItems(ctx context.Context, userID int64, images []string) ([]string, error) {
	return s.addGalleryFn(ctx, userID, images)
}

func (s *stubProfileService) DeleteGalleryItem(ctx context.Context, userID, itemID int64) error {
	return s.deleteGalleryFn(ctx, userID, itemID)
}

type stubDirectoryService struct {
	listArtistsFn func(ctx context.Context, in ports.ListInput) (*ports.Page[domain.ArtistCard], error)
	homeFn        func(ctx context.Context, in ports.HomeInput) (*ports.HomeFeed, error)
	getArtistFn   func(ctx context.Context, userID int64) (*domain.User, error)
}

func (s *stubDirectoryService) ListArtists(ctx context.Context, in ports.ListInput) (*ports.Page[domain.ArtistCard], error) {
	return s.listArtistsFn(ctx, in)
}

func (s *stubDirectoryService) ListEstablishments(_ context.Context, in ports.ListInput) (*ports.Page[domain.EstablishmentCard], error) {
	return &ports.Page[domain.EstablishmentCard]{Page: in.Page, Size: in.Size}, nil
}

func (s *stubDirectoryService) ListArtworks(_ context.Context, in ports.ListInput) (*ports.Page[domain.ArtworkCard], error) {
	return &ports.Page[domain.ArtworkCard]{Page: in.Page, Size: in.Size}, nil
}

func (s *stubDirectoryService) Home(ctx context.Context, in ports.HomeInput) (*ports.HomeFeed, error) {
	return s.homeFn(ctx, in)
}

func (s *stubDirectoryService) GetArtist(ctx context.Context, userID int64) (*domain.User, error) {
	return s.getArtistFn(ctx, userID)
}

// newTestContext builds an echo context with the validator installed. An
// empty body sends no Content-Type.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// withUser mimics the Auth middleware.
func withUser(c echo.Context, u *domain.User) {
	c.Set("user", u)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError with %d, got %v", want, err)
	}
	if he.Code != want {
		t.Fatalf("expected status %d, got %d (%v)", want, he.Code, he.Message)
	}
}

func mustNotCall(t *testing.T) {
	t.Helper()
	t.Fatal("service should not be called")
}
