package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quetzart/directory-api/internal/core/ports"
	"github.com/quetzart/directory-api/internal/core/service"
)

// PublicHandler serves the unauthenticated /public routes.
type PublicHandler struct {
	service ports.DirectoryService
}

func NewPublicHandler(service ports.DirectoryService) *PublicHandler {
	return &PublicHandler{service: service}
}

// bindList reads search/page/size. Absent values take the defaults; present
// values are clamped by the service.
func bindList(c echo.Context) (ports.ListInput, error) {
	q := listQuery{Page: service.DefaultPage, Size: service.DefaultPageSize}
	if err := c.Bind(&q); err != nil {
		return ports.ListInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, "page and size must be integers")
	}
	return ports.ListInput{Search: q.Search, Page: q.Page, Size: q.Size}, nil
}

// Artists lists artists.
//
// @Summary      List artists
// @Tags         public
// @Produce      json
// @Param        search  query     string  false  "Matches display name or artistic style"
// @Param        page    query     int     false  "Page (>= 1)"          default(1)
// @Param        size    query     int     false  "Page size (1 to 50)"  default(20)
// @Success      200     {object}  pageResponse[artistCardResponse]
// @Router       /public/artists [get]
func (h *PublicHandler) Artists(c echo.Context) error {
	in, err := bindList(c)
	if err != nil {
		return err
	}

	page, err := h.service.ListArtists(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toArtistCard))
}

// Establishments lists establishments.
//
// @Summary      List establishments
// @Tags         public
// @Produce      json
// @Param        search  query     string  false  "Matches display name, category or municipality"
// @Param        page    query     int     false  "Page (>= 1)"          default(1)
// @Param        size    query     int     false  "Page size (1 to 50)"  default(20)
// @Success      200     {object}  pageResponse[establishmentCardResponse]
// @Router       /public/establishments [get]
func (h *PublicHandler) Establishments(c echo.Context) error {
	in, err := bindList(c)
	if err != nil {
		return err
	}

	page, err := h.service.ListEstablishments(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toEstablishmentCard))
}

// Artworks lists gallery items of every user.
//
// @Summary      List artworks
// @Tags         public
// @Produce      json
// @Param        search  query     string  false  "Matches the owner's display name"
// @Param        page    query     int     false  "Page (>= 1)"          default(1)
// @Param        size    query     int     false  "Page size (1 to 50)"  default(20)
// @Success      200     {object}  pageResponse[artworkCardResponse]
// @Router       /public/artworks [get]
func (h *PublicHandler) Artworks(c echo.Context) error {
	in, err := bindList(c)
	if err != nil {
		return err
	}

	page, err := h.service.ListArtworks(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toArtworkCard))
}

// Home returns random samples for the landing screen.
//
// @Summary      Home feed
// @Tags         public
// @Produce      json
// @Param        artists_size         query     int  false  "1 to 30"  default(10)
// @Param        establishments_size  query     int  false  "1 to 30"  default(10)
// @Param        artworks_size        query     int  false  "1 to 30"  default(10)
// @Success      200                  {object}  homeResponse
// @Failure      422                  {object}  errorResponse
// @Router       /public/home [get]
func (h *PublicHandler) Home(c echo.Context) error {
	q := homeQuery{
		Artists:        service.DefaultHomeSize,
		Establishments: service.DefaultHomeSize,
		Artworks:       service.DefaultHomeSize,
	}
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	feed, err := h.service.Home(c.Request().Context(), ports.HomeInput{
		Artists:        q.Artists,
		Establishments: q.Establishments,
		Artworks:       q.Artworks,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHomeResponse(feed))
}

// Artist returns one artist's public profile and gallery.
//
// @Summary      Public artist
// @Tags         public
// @Produce      json
// @Param        user_id  path      int  true  "Artist user id"
// @Success      200      {object}  publicArtistResponse
// @Failure      404      {object}  errorResponse
// @Router       /public/artist/{user_id} [get]
func (h *PublicHandler) Artist(c echo.Context) error {
	var userID int64
	if err := echo.PathParamsBinder(c).MustInt64("user_id", &userID).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "user_id must be an integer")
	}

	user, err := h.service.GetArtist(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPublicArtistResponse(user))
}
