package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quetzart/directory-api/internal/api/middleware"
	"github.com/quetzart/directory-api/internal/core/domain"
)

// currentUser returns the user resolved by the Auth middleware. A missing
// user means the route was mounted without it; fail closed with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return user, nil
}

// bindAndValidate decodes the request into req and runs the struct
// validator. Both failures are reported as 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
