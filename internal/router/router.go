package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"selli/internal/auth"
	"selli/internal/config"
	apperrors "selli/internal/errors"
	"selli/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	users auth.UserFinder,
	userHandler *handler.UserHandler,
	adHandler *handler.AdHandler,
	favouriteHandler *handler.FavouriteHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/users/register", userHandler.Register)
	e.POST("/users/login", userHandler.Login)
	e.GET("/ads", adHandler.Search)
	e.GET("/ads/last", adHandler.Last)
	e.GET("/ads/category/:id", adHandler.ByCategory)
	e.GET("/ads/user/:id", adHandler.ByOwner)
	e.GET("/ads/:id", adHandler.Show)

	// Routes behind the bearer-token gate. echo-jwt verifies signature and
	// expiry; ResolveUser then rejects revoked tokens and tokens whose user
	// no longer exists.
	requireAuth := []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(cfg.JWTSecret),
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return apperrors.NewUnauthorized("Invalid JWT")
			},
		}),
		auth.ResolveUser(tokenStore, users),
	}

	e.PATCH("/users", userHandler.Update, requireAuth...)
	e.DELETE("/users", userHandler.Delete, requireAuth...)
	e.POST("/ads", adHandler.Create, requireAuth...)
	e.DELETE("/ads/:id", adHandler.Remove, requireAuth...)
	e.GET("/favourites", favouriteHandler.List, requireAuth...)
	e.POST("/favourites/:id", favouriteHandler.Add, requireAuth...)
	e.DELETE("/favourites/:id", favouriteHandler.Remove, requireAuth...)
}

// errorHandler shapes every failure, including the unmatched-route 404
// fallback, into the taxonomy's JSON body. Unexpected errors become a
// generic 500 with the detail kept server-side.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *apperrors.HTTPError
	switch e := err.(type) {
	case *apperrors.HTTPError:
		httpErr = e
	case *echo.HTTPError:
		httpErr = fromEchoError(e)
	default:
		httpErr = apperrors.MapErrorToHTTP(err)
	}

	if httpErr.Status == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	if jsonErr := c.JSON(httpErr.Status, httpErr); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}

func fromEchoError(e *echo.HTTPError) *apperrors.HTTPError {
	message, ok := e.Message.(string)
	if !ok {
		message = http.StatusText(e.Code)
	}
	switch e.Code {
	case http.StatusNotFound:
		return apperrors.NewNotFound(message)
	case http.StatusMethodNotAllowed:
		// The surface has no 405: an unrouted method on a known path reads
		// the same as an unmatched route.
		return apperrors.NewNotFound("Not Found")
	case http.StatusUnauthorized:
		return apperrors.NewUnauthorized(message)
	case http.StatusBadRequest:
		return apperrors.NewBadRequest(message)
	default:
		return apperrors.NewApplication()
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
