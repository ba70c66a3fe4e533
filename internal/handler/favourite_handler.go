package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"selli/internal/auth"
	"selli/internal/service"
)

// FavouriteHandler handles the favourites list endpoints. All three
// require an authenticated caller.
type FavouriteHandler struct {
	favouriteService service.FavouriteService
}

// NewFavouriteHandler creates a new favourite handler.
func NewFavouriteHandler(favouriteService service.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{favouriteService: favouriteService}
}

// List godoc
// @Summary List the caller's favourites
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AdSummary
// @Failure 401 {object} errors.HTTPError
// @Router /favourites [get]
func (h *FavouriteHandler) List(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	favourites, err := h.favouriteService.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favourites)
}

// Add godoc
// @Summary Add an ad to the caller's favourites
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ad ID"
// @Success 200 {array} model.AdSummary
// @Failure 400 {object} errors.HTTPError
// @Failure 401 {object} errors.HTTPError
// @Failure 404 {object} errors.HTTPError
// @Router /favourites/{id} [post]
func (h *FavouriteHandler) Add(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	favourites, err := h.favouriteService.Add(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favourites)
}

// Remove godoc
// @Summary Remove an ad from the caller's favourites
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ad ID"
// @Success 200 {array} model.AdSummary
// @Failure 400 {object} errors.HTTPError
// @Failure 401 {object} errors.HTTPError
// @Failure 404 {object} errors.HTTPError
// @Router /favourites/{id} [delete]
func (h *FavouriteHandler) Remove(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	favourites, err := h.favouriteService.Remove(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favourites)
}
