package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"selli/internal/auth"
	apperrors "selli/internal/errors"
	"selli/internal/service"
	"selli/internal/upload"
	"selli/internal/validation"
)

// UserHandler handles the user lifecycle endpoints.
type UserHandler struct {
	userService service.UserService
	tokenStore  auth.TokenStoreInterface
	images      upload.ImageStore
	uploadDir   string
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, tokenStore auth.TokenStoreInterface, images upload.ImageStore, uploadDir string) *UserHandler {
	return &UserHandler{
		userService: userService,
		tokenStore:  tokenStore,
		images:      images,
		uploadDir:   uploadDir,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} model.User
// @Failure 400 {object} errors.HTTPError
// @Failure 500 {object} errors.HTTPError
// @Router /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	fields, err := collectFields(c)
	if err != nil {
		return err
	}
	if res := validation.ValidateRegister(fields); !res.IsValid {
		return apperrors.NewValidation("Invalid register data", res.Errors)
	}

	input := service.RegisterInput{
		FirstName: fields["firstName"].(string),
		LastName:  fields["lastName"].(string),
		Email:     fields["email"].(string),
		Password:  fields["password"].(string),
	}
	if phone, ok := fieldString(fields, "phone"); ok {
		input.Phone = &phone
	}

	user, err := h.userService.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary Obtain a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.HTTPError
// @Failure 404 {object} errors.HTTPError
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	fields, err := collectFields(c)
	if err != nil {
		return err
	}
	if res := validation.ValidateLogin(fields); !res.IsValid {
		return apperrors.NewValidation("Invalid login data", res.Errors)
	}

	token, err := h.userService.Login(c.Request().Context(), fields["email"].(string), fields["password"].(string))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// Update godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 400 {object} errors.HTTPError
// @Failure 401 {object} errors.HTTPError
// @Router /users [patch]
func (h *UserHandler) Update(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}

	fields, err := collectFields(c)
	if err != nil {
		return err
	}
	errs := validation.ValidateUpdateUser(fields).Errors

	img := optionalImage(c)
	if msg := img.check(); msg != "" {
		errs["image"] = msg
	}
	if len(errs) > 0 {
		return apperrors.NewValidation("Invalid update data", errs)
	}

	input := service.UpdateProfileInput{}
	if v, ok := fieldString(fields, "firstName"); ok {
		input.FirstName = v
	}
	if v, ok := fieldString(fields, "lastName"); ok {
		input.LastName = v
	}
	// An explicit empty phone clears the field; omission leaves it alone.
	if raw, present := fields["phone"]; present {
		if s, ok := raw.(string); ok {
			if _, nonBlank := fieldString(fields, "phone"); s == "" || nonBlank {
				input.Phone = &s
			}
		}
	}

	ctx := c.Request().Context()
	if img != nil {
		url, uploadErr := img.store(ctx, h.uploadDir, h.images)
		if uploadErr != nil {
			return uploadErr
		}
		input.Image = url
	}

	updated, err := h.userService.UpdateProfile(ctx, user.ID, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete the caller's account and every ad it owns
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.HTTPError
// @Router /users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	removed, err := h.userService.DeleteAccount(ctx, user.ID)
	if err != nil {
		return err
	}

	// The account is gone; kill the presented token for its remaining life.
	if claims, ok := auth.CurrentClaims(c); ok && claims.ExpiresAt != nil {
		_ = h.tokenStore.RevokeToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	}
	return c.JSON(http.StatusOK, removed)
}
