package ports

import (
	"context"

	"github.com/quetzart/directory-api/internal/core/domain"
)

// RegisterArtistInput carries the validated artist sign-up payload.
type RegisterArtistInput struct {
	Email         string
	Password      string
	DisplayName   string
	ArtisticStyle string
	Bio           string
	ProfileImage  string   // optional inline payload
	Gallery       []string // optional inline payloads
}

// RegisterEstablishmentInput carries the validated establishment sign-up payload.
type RegisterEstablishmentInput struct {
	Email        string
	Password     string
	DisplayName  string
	Category     string
	Street       string
	Number       string
	PostalCode   string
	Colony       *string
	Municipality *string
	ProfileImage string // optional inline payload
}

// TokenResult is returned by every operation that opens a session.
type TokenResult struct {
	AccessToken string
	TokenType   string
}

type AuthService interface {
	RegisterArtist(ctx context.Context, in RegisterArtistInput) (*TokenResult, error)
	RegisterEstablishment(ctx context.Context, in RegisterEstablishmentInput) (*TokenResult, error)
	Login(ctx context.Context, email, password string) (*TokenResult, error)
	// ResolveSession decodes a bearer token and loads the user it belongs to.
	ResolveSession(ctx context.Context, token string) (*domain.User, error)
}
