package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskhub/internal/apperrors"
	"taskhub/internal/auth"
	"taskhub/internal/config"
	"taskhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	listHandler *handler.ListHandler,
	taskHandler *handler.TaskHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = httpErrorHandler

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes: every list/task endpoint and the identity check go
	// through the bearer-token gate. Missing and invalid tokens are both
	// 401; only the message text differs.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: jwtService.Secret(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return apperrors.Authentication("Missing Authorization header")
			}
			return apperrors.Authentication("Invalid or expired token")
		},
	}))

	secured.GET("/auth/me", authHandler.Me)

	secured.GET("/lists", listHandler.Lists)
	secured.POST("/lists", listHandler.CreateList)
	secured.DELETE("/lists/:id", listHandler.DeleteList)

	secured.GET("/tasks", taskHandler.Tasks)
	secured.POST("/tasks", taskHandler.CreateTask)
	secured.PATCH("/tasks/:id", taskHandler.UpdateTask)
	secured.DELETE("/tasks/:id", taskHandler.DeleteTask)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator; failures render as 400s.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperrors.Validation(err.Error())
	}
	return nil
}

// httpErrorHandler renders every failure as {"error": message}. Unknown
// routes yield 404 "Not found"; unexpected failures are logged and
// collapsed to 500 "Server error" so nothing internal leaks.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "Server error"

	appErr := apperrors.FromError(err)
	var httpErr *echo.HTTPError
	switch {
	case appErr != nil:
		status = appErr.HTTPStatus()
		msg = appErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		switch {
		case status == http.StatusNotFound:
			msg = "Not found"
		case status >= http.StatusInternalServerError:
			c.Logger().Error(err)
		default:
			if m, ok := httpErr.Message.(string); ok && m != "" {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		}
	default:
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, echo.Map{"error": msg})
}
