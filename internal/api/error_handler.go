package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quetzart/directory-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors and reports them to Sentry without leaking
//     details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Int("status", he.Code).Msg("http error")
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidImage):
		return http.StatusUnprocessableEntity, domain.ErrInvalidImage.Error()
	case errors.Is(err, domain.ErrEmptyGallery):
		return http.StatusUnprocessableEntity, domain.ErrEmptyGallery.Error()

	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, domain.ErrEmailTaken.Error()
	case errors.Is(err, domain.ErrNameChangeCooldown):
		return http.StatusConflict, domain.ErrNameChangeCooldown.Error()

	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, domain.ErrUnauthenticated.Error()

	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, domain.ErrUserNotFound.Error()
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, domain.ErrProfileNotFound.Error()
	case errors.Is(err, domain.ErrGalleryItemNotFound):
		return http.StatusNotFound, domain.ErrGalleryItemNotFound.Error()
	case errors.Is(err, domain.ErrArtistNotFound):
		return http.StatusNotFound, domain.ErrArtistNotFound.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
	captureException(err, c)

	return http.StatusInternalServerError, "internal server error"
}

// captureException prefers the request-scoped hub set by the sentry
// middleware. It is a no-op when Sentry was never initialised.
func captureException(err error, c echo.Context) {
	hub := sentryecho.GetHubFromContext(c)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(c.Request())
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("route", c.Path())
		hub.CaptureException(err)
	})
}
