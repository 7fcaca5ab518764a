package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "exertrack/internal/errors"
	"exertrack/internal/model"
	"exertrack/internal/service"
)

// UserHandler bundles the user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// createUserRequest is the create-user payload. Form-encoded and JSON bodies
// are both accepted.
type createUserRequest struct {
	Username string `form:"username" json:"username" validate:"required,min=3"`
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} map[string]interface{}
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return apierrors.New(http.StatusInternalServerError, "Error retrieving users")
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username (min 3 characters)"
// @Success 201 {object} model.User
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.New(http.StatusBadRequest, "Invalid username: must be a string of at least 3 characters")
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.New(http.StatusBadRequest, "Invalid username: must be a string of at least 3 characters")
	}

	user, err := h.svc.Create(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, apierrors.ErrDuplicateUsername) {
			return apierrors.New(http.StatusBadRequest, "User already exists")
		}
		return apierrors.New(http.StatusInternalServerError, "Server error")
	}
	return c.JSON(http.StatusCreated, user)
}
