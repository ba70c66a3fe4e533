package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"selli/internal/auth"
	apperrors "selli/internal/errors"
	"selli/internal/service"
	"selli/internal/upload"
	"selli/internal/validation"
)

// AdHandler handles the ad endpoints.
type AdHandler struct {
	adService service.AdService
	images    upload.ImageStore
	uploadDir string
}

// NewAdHandler creates a new ad handler.
func NewAdHandler(adService service.AdService, images upload.ImageStore, uploadDir string) *AdHandler {
	return &AdHandler{adService: adService, images: images, uploadDir: uploadDir}
}

// Create godoc
// @Summary Create an ad
// @Tags ads
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Ad
// @Failure 400 {object} errors.HTTPError
// @Failure 401 {object} errors.HTTPError
// @Failure 500 {object} errors.HTTPError
// @Router /ads [post]
func (h *AdHandler) Create(c echo.Context) error {
	owner, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}

	fields, err := collectFields(c)
	if err != nil {
		return err
	}
	// Multipart submissions carry every value as a string; parse the
	// numeric and boolean fields before validating.
	fields = validation.Coerce(fields, []string{"price", "category"}, []string{"isUsed"})

	errs := validation.ValidateAd(fields).Errors
	img := optionalImage(c)
	if msg := img.check(); msg != "" {
		errs["image"] = msg
	}
	if len(errs) > 0 {
		return apperrors.NewValidation("Invalid ad data", errs)
	}

	price, _ := fields["price"].(float64)
	category, _ := fields["category"].(float64)
	input := service.AdInput{
		Title:       fields["title"].(string),
		Description: fields["description"].(string),
		Category:    int(category),
		IsUsed:      fields["isUsed"].(bool),
		Price:       price,
		Location:    fields["location"].(string),
	}
	if phone, ok := fieldString(fields, "phone"); ok {
		input.Phone = &phone
	}

	ctx := c.Request().Context()
	if img != nil {
		// Upload failure aborts the whole creation; no ad is persisted
		// without its requested image.
		url, uploadErr := img.store(ctx, h.uploadDir, h.images)
		if uploadErr != nil {
			return uploadErr
		}
		input.Image = url
	}

	ad, err := h.adService.Create(ctx, owner, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ad)
}

// Show godoc
// @Summary Show one ad, incrementing its view counter
// @Tags ads
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} model.AdWithOwner
// @Failure 400 {object} errors.HTTPError
// @Failure 404 {object} errors.HTTPError
// @Router /ads/{id} [get]
func (h *AdHandler) Show(c echo.Context) error {
	ad, err := h.adService.Show(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ad)
}

// Remove godoc
// @Summary Delete an ad (owner only)
// @Tags ads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ad ID"
// @Success 200 {object} model.Ad
// @Failure 400 {object} errors.HTTPError
// @Failure 401 {object} errors.HTTPError
// @Failure 404 {object} errors.HTTPError
// @Router /ads/{id} [delete]
func (h *AdHandler) Remove(c echo.Context) error {
	caller, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	ad, err := h.adService.Remove(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ad)
}

// Last godoc
// @Summary List the latest 25 ads
// @Tags ads
// @Produce json
// @Success 200 {array} model.AdSummary
// @Router /ads/last [get]
func (h *AdHandler) Last(c echo.Context) error {
	ads, err := h.adService.Last(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ads)
}

// ByCategory godoc
// @Summary List ads in a category
// @Tags ads
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} model.AdSummary
// @Failure 400 {object} errors.HTTPError
// @Router /ads/category/{id} [get]
func (h *AdHandler) ByCategory(c echo.Context) error {
	ads, err := h.adService.ByCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ads)
}

// ByOwner godoc
// @Summary List a user's ads
// @Tags ads
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} model.AdSummary
// @Failure 400 {object} errors.HTTPError
// @Failure 404 {object} errors.HTTPError
// @Router /ads/user/{id} [get]
func (h *AdHandler) ByOwner(c echo.Context) error {
	ads, err := h.adService.ByOwner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ads)
}

// Search godoc
// @Summary Search ads
// @Tags ads
// @Produce json
// @Param title query string false "Title substring"
// @Param location query string false "Location substring"
// @Param category query int false "Category ID"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Success 200 {array} model.AdSummary
// @Failure 400 {object} errors.HTTPError
// @Router /ads [get]
func (h *AdHandler) Search(c echo.Context) error {
	params := service.SearchParams{
		Title:    c.QueryParam("title"),
		Location: c.QueryParam("location"),
		Category: c.QueryParam("category"),
		MinPrice: c.QueryParam("minPrice"),
		MaxPrice: c.QueryParam("maxPrice"),
	}
	ads, err := h.adService.Search(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ads)
}
