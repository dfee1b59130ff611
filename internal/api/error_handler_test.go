package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quetzart/directory-api/internal/core/domain"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{"cooldown", fmt.Errorf("update: %w", domain.ErrNameChangeCooldown), http.StatusConflict, domain.ErrNameChangeCooldown.Error()},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, "not authenticated"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "not authenticated"},
		{"profile missing", domain.ErrProfileNotFound, http.StatusNotFound, "profile not found"},
		{"gallery item missing", domain.ErrGalleryItemNotFound, http.StatusNotFound, "gallery item not found"},
		{"artist missing", domain.ErrArtistNotFound, http.StatusNotFound, "artist not found"},
		{"bad image", fmt.Errorf("gallery[0]: %w: bad base64", domain.ErrInvalidImage), http.StatusUnprocessableEntity, "invalid image payload"},
		{"empty gallery", domain.ErrEmptyGallery, http.StatusUnprocessableEntity, domain.ErrEmptyGallery.Error()},
		{"echo error", echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload"), http.StatusUnprocessableEntity, "invalid payload"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("status = %d, want %d", rec.Code, tt.code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tt.message {
				t.Errorf("error = %q, want %q", body.Error, tt.message)
			}
		})
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusNoContent)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("committed response was modified: %d %q", rec.Code, rec.Body.String())
	}
}
