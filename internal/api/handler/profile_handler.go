package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quetzart/directory-api/internal/core/ports"
)

// ProfileHandler serves the authenticated /profile/me routes.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Me returns the caller's full profile.
//
// @Summary      Current profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// Update applies a partial update to the caller's profile.
//
// @Summary      Update profile
// @Description  Fields that do not apply to the caller's role are ignored. The display name can change once every 30 days.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  profileResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /profile/me [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), user, ports.UpdateProfileInput{
		DisplayName:   req.DisplayName,
		Bio:           req.Bio,
		ArtisticStyle: req.ArtisticStyle,
		Category:      req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(updated))
}

// SetProfileImage replaces the caller's profile picture.
//
// @Summary      Set profile image
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileImageRequest  true  "Inline image payload"
// @Success      200   {object}  profileImageResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /profile/me/profile-image [post]
func (h *ProfileHandler) SetProfileImage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req profileImageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	url, err := h.service.SetProfileImage(c.Request().Context(), user.ID, req.ProfileImage)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileImageResponse{OK: true, ProfileImageURL: url})
}

// AddGallery appends images to the caller's gallery.
//
// @Summary      Add gallery images
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      galleryRequest  true  "Inline image payloads"
// @Success      200   {object}  galleryAddedResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /profile/me/gallery [post]
func (h *ProfileHandler) AddGallery(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req galleryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	urls, err := h.service.AddGalleryItems(c.Request().Context(), user.ID, req.Gallery)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, galleryAddedResponse{OK: true, Items: urls})
}

// DeleteGalleryItem removes one of the caller's gallery items.
//
// @Summary      Delete gallery item
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Gallery item id"
// @Success      200  {object}  okResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile/me/gallery/{id} [delete]
func (h *ProfileHandler) DeleteGalleryItem(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "id must be an integer")
	}

	if err := h.service.DeleteGalleryItem(c.Request().Context(), user.ID, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okResponse{OK: true})
}
