package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apierrors "exertrack/internal/errors"
	"exertrack/internal/model"
	"exertrack/internal/service"
	"exertrack/internal/validate"
)

// defaultLogLimit caps log queries when no limit parameter is given.
const defaultLogLimit = 20

// ExerciseHandler bundles the exercise HTTP handlers.
type ExerciseHandler struct {
	svc service.ExerciseService
}

// NewExerciseHandler creates a handler layer.
func NewExerciseHandler(svc service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{svc: svc}
}

// durationValue binds from JSON numbers, JSON strings, and form values
// alike; the handler parses it as an integer afterwards.
type durationValue string

func (d *durationValue) UnmarshalJSON(data []byte) error {
	*d = durationValue(strings.Trim(string(data), `"`))
	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler for form binding.
func (d *durationValue) UnmarshalParam(param string) error {
	*d = durationValue(param)
	return nil
}

type createExerciseRequest struct {
	Description string        `form:"description" json:"description"`
	Duration    durationValue `form:"duration" json:"duration"`
	Date        string        `form:"date" json:"date"`
}

// exerciseResponse renders a created exercise with its date in canonical
// form.
type exerciseResponse struct {
	ID          primitive.ObjectID `json:"_id"`
	UserID      primitive.ObjectID `json:"userId"`
	Description string             `json:"description"`
	Duration    int                `json:"duration"`
	Date        string             `json:"date"`
}

type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logsResponse struct {
	Username string             `json:"username"`
	Count    int                `json:"count"`
	ID       primitive.ObjectID `json:"_id"`
	Log      []logEntry         `json:"log"`
}

// CreateExercise godoc
// @Summary Add an exercise to a user's log
// @Tags exercises
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path string true "User id (24 hex characters)"
// @Param description formData string true "Exercise description"
// @Param duration formData int true "Duration in minutes"
// @Param date formData string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} exerciseResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /users/{id}/exercises [post]
func (h *ExerciseHandler) CreateExercise(c echo.Context) error {
	if !validate.ValidID(c.Param("id")) {
		return apierrors.New(http.StatusBadRequest, "Invalid user id format")
	}
	userID, _ := primitive.ObjectIDFromHex(c.Param("id"))

	var req createExerciseRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.New(http.StatusBadRequest, "Description and duration are required")
	}
	duration, err := strconv.Atoi(string(req.Duration))
	if req.Description == "" || err != nil || duration == 0 {
		return apierrors.New(http.StatusBadRequest, "Description and duration are required")
	}

	date := validate.DayOf(time.Now())
	if req.Date != "" {
		if !validate.ValidCalendarDate(req.Date) {
			return apierrors.New(http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		}
		date, _ = validate.ParseDate(req.Date)
	}

	exercise, err := h.svc.Create(c.Request().Context(), userID, req.Description, duration, date)
	if err != nil {
		if errors.Is(err, apierrors.ErrUserNotFound) {
			return apierrors.New(http.StatusNotFound, "User not found")
		}
		return apierrors.New(http.StatusInternalServerError, "Server error")
	}

	// Creation answers 200 here, unlike the 201 on user creation. The
	// asymmetry is part of the published interface.
	return c.JSON(http.StatusOK, exerciseResponse{
		ID:          exercise.ID,
		UserID:      exercise.UserID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        validate.FormatDate(exercise.Date),
	})
}

// GetLogs godoc
// @Summary Get a user's exercise log
// @Tags exercises
// @Produce json
// @Param id path string true "User id (24 hex characters)"
// @Param from query string false "Earliest date (inclusive)"
// @Param to query string false "Latest date (inclusive)"
// @Param limit query int false "Maximum entries (default 20)"
// @Success 200 {object} logsResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /users/{id}/logs [get]
func (h *ExerciseHandler) GetLogs(c echo.Context) error {
	if !validate.ValidID(c.Param("id")) {
		return apierrors.New(http.StatusBadRequest, "Invalid user id format")
	}
	userID, _ := primitive.ObjectIDFromHex(c.Param("id"))

	var from, to *time.Time
	if v := c.QueryParam("from"); v != "" {
		t, err := validate.ParseDate(v)
		if err != nil {
			return apierrors.New(http.StatusBadRequest, "Invalid 'from' date")
		}
		from = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := validate.ParseDate(v)
		if err != nil {
			return apierrors.New(http.StatusBadRequest, "Invalid 'to' date")
		}
		to = &t
	}

	limit := int64(defaultLogLimit)
	if v := c.QueryParam("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return apierrors.New(http.StatusBadRequest, "Invalid limit")
		}
		// limit=0 means exactly one entry, not "no limit"
		if parsed == 0 {
			parsed = 1
		}
		limit = parsed
	}

	user, exercises, err := h.svc.Logs(c.Request().Context(), userID, from, to, limit)
	if err != nil {
		if errors.Is(err, apierrors.ErrUserNotFound) {
			return apierrors.New(http.StatusNotFound, "User not found")
		}
		return apierrors.New(http.StatusInternalServerError, "Server error")
	}

	if len(exercises) == 0 {
		if from != nil || to != nil {
			return apierrors.New(http.StatusNotFound, "No exercises found for the specified dates")
		}
		return apierrors.New(http.StatusNotFound, "Exercises not found for this user")
	}

	return c.JSON(http.StatusOK, buildLogsResponse(user, exercises))
}

func buildLogsResponse(user *model.User, exercises []model.Exercise) logsResponse {
	log := make([]logEntry, 0, len(exercises))
	for _, ex := range exercises {
		log = append(log, logEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        validate.FormatDate(ex.Date),
		})
	}
	return logsResponse{
		Username: user.Username,
		Count:    len(log),
		ID:       user.ID,
		Log:      log,
	}
}
