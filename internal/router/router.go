package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	apierrors "exertrack/internal/errors"
	"exertrack/internal/handler"
)

// Register wires middleware and routes.
func Register(
	e *echo.Echo,
	userHandler *handler.UserHandler,
	exerciseHandler *handler.ExerciseHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = apierrors.HTTPErrorHandler

	e.File("/", "public/index.html")

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.CreateUser)
	api.POST("/users/:id/exercises", exerciseHandler.CreateExercise)
	api.GET("/users/:id/logs", exerciseHandler.GetLogs)

	e.RouteNotFound("/*", fallback)
}

// fallback answers any unmatched path. The exercises path with an empty id
// segment gets a 400 about the id, everything else a plain 404.
func fallback(c echo.Context) error {
	if c.Request().URL.Path == "/api/users//exercises" {
		return apierrors.New(http.StatusBadRequest, "Invalid user id format")
	}
	return apierrors.New(http.StatusNotFound, "Path not found")
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
