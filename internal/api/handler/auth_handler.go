package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quetzart/directory-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterArtist creates an artist account and signs it in.
//
// @Summary      Register an artist
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerArtistRequest  true  "Artist sign-up"
// @Success      200   {object}  tokenResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register-artist [post]
func (h *AuthHandler) RegisterArtist(c echo.Context) error {
	var req registerArtistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.RegisterArtist(c.Request().Context(), ports.RegisterArtistInput{
		Email:         req.Email,
		Password:      req.Password,
		DisplayName:   req.DisplayName,
		ArtisticStyle: req.ArtisticStyle,
		Bio:           req.Bio,
		ProfileImage:  req.ProfileImage,
		Gallery:       req.Gallery,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTokenResponse(token))
}

// RegisterEstablishment creates an establishment account and signs it in.
//
// @Summary      Register an establishment
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerEstablishmentRequest  true  "Establishment sign-up"
// @Success      200   {object}  tokenResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register-establishment [post]
func (h *AuthHandler) RegisterEstablishment(c echo.Context) error {
	var req registerEstablishmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.RegisterEstablishment(c.Request().Context(), ports.RegisterEstablishmentInput{
		Email:        req.Email,
		Password:     req.Password,
		DisplayName:  req.DisplayName,
		Category:     req.Category,
		Street:       req.Street,
		Number:       req.Number,
		PostalCode:   req.PostalCode,
		Colony:       req.Colony,
		Municipality: req.Municipality,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTokenResponse(token))
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTokenResponse(token))
}
