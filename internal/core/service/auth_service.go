package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quetzart/directory-api/internal/api/metrics"
	"github.com/quetzart/directory-api/internal/core/domain"
	"github.com/quetzart/directory-api/internal/core/ports"
)

const tokenTypeBearer = "bearer"

// AuthService implements registration, login and session resolution.
type AuthService struct {
	users  ports.UserRepository
	media  ports.MediaStore
	tokens ports.TokenIssuer
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(users ports.UserRepository, media ports.MediaStore, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		media:  media,
		tokens: tokens,
		log:    log,
		now:    time.Now,
	}
}

// RegisterArtist creates an artist account with its profile and optional
// gallery, then opens a session for it.
func (s *AuthService) RegisterArtist(ctx context.Context, in ports.RegisterArtistInput) (*ports.TokenResult, error) {
	if err := s.ensureEmailFree(ctx, in.Email); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.storeOptional(ctx, in.ProfileImage)
	if err != nil {
		return nil, err
	}

	gallery := make([]domain.GalleryItem, 0, len(in.Gallery))
	for i, img := range in.Gallery {
		url, err := s.media.Store(ctx, img)
		if err != nil {
			return nil, fmt.Errorf("register artist: gallery[%d]: %w", i, err)
		}
		gallery = append(gallery, domain.GalleryItem{ImageURL: url})
	}

	user := &domain.User{
		Role:         domain.RoleArtist,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
		Profile: &domain.Profile{
			DisplayName:     in.DisplayName,
			ProfileImageURL: imageURL,
			Details: domain.ArtistDetails{
				Bio:           in.Bio,
				ArtisticStyle: in.ArtisticStyle,
			},
		},
		Gallery: gallery,
	}

	return s.createAndSignIn(ctx, user)
}

// RegisterEstablishment creates an establishment account with its profile,
// then opens a session for it.
func (s *AuthService) RegisterEstablishment(ctx context.Context, in ports.RegisterEstablishmentInput) (*ports.TokenResult, error) {
	if err := s.ensureEmailFree(ctx, in.Email); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.storeOptional(ctx, in.ProfileImage)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Role:         domain.RoleEstablishment,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
		Profile: &domain.Profile{
			DisplayName:     in.DisplayName,
			ProfileImageURL: imageURL,
			Details: domain.EstablishmentDetails{
				Category:     in.Category,
				Street:       in.Street,
				Number:       in.Number,
				PostalCode:   in.PostalCode,
				Colony:       in.Colony,
				Municipality: in.Municipality,
			},
		},
	}

	return s.createAndSignIn(ctx, user)
}

// Login checks the credentials and opens a session. Unknown email and wrong
// password are reported identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return s.signIn(user)
}

// ResolveSession maps a bearer token to a live user. Tokens of deleted users
// are rejected like any other invalid token.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return user, nil
}

func (s *AuthService) ensureEmailFree(ctx context.Context, email string) error {
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.ErrEmailTaken
	}
	return nil
}

func (s *AuthService) storeOptional(ctx context.Context, dataURL string) (*string, error) {
	if dataURL == "" {
		return nil, nil
	}
	url, err := s.media.Store(ctx, dataURL)
	if err != nil {
		return nil, fmt.Errorf("store profile image: %w", err)
	}
	return &url, nil
}

func (s *AuthService) createAndSignIn(ctx context.Context, user *domain.User) (*ports.TokenResult, error) {
	if err := s.users.CreateAccount(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		s.log.Error().Err(err).Str("role", string(user.Role)).Msg("failed to create account")
		return nil, fmt.Errorf("create account: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	s.log.Info().
		Int64("user_id", user.ID).
		Str("role", string(user.Role)).
		Int("gallery_items", len(user.Gallery)).
		Msg("account registered")

	return s.signIn(user)
}

func (s *AuthService) signIn(user *domain.User) (*ports.TokenResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &ports.TokenResult{AccessToken: token, TokenType: tokenTypeBearer}, nil
}
