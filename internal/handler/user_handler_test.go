package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apierrors "exertrack/internal/errors"
	"exertrack/internal/model"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type testValidator struct {
	v *validator.Validate
}

func (t *testValidator) Validate(i interface{}) error {
	return t.v.Struct(i)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

func formRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// apiStatus extracts the status from a returned API error.
func apiStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	var apiErr *apierrors.Error
	assert.ErrorAs(t, err, &apiErr)
	return apiErr.Status, apiErr.Message
}

func TestListUsers(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)
	e := newEcho()

	users := []model.User{{ID: primitive.NewObjectID(), Username: "Amy"}}
	svc.On("List", mock.Anything).Return(users, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users", nil), rec)

	assert.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.User
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, users, got)
}

func TestListUsersEmptyStoreRendersArray(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)
	e := newEcho()

	// a nil slice from the service must still render as [], not null
	svc.On("List", mock.Anything).Return(nil, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users", nil), rec)

	assert.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListUsersStorageFailure(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)
	e := newEcho()

	svc.On("List", mock.Anything).Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users", nil), rec)

	status, message := apiStatus(t, h.ListUsers(c))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Error retrieving users", message)
}

func TestCreateUser(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)
	e := newEcho()

	created := &model.User{ID: primitive.NewObjectID(), Username: "Amy"}
	svc.On("Create", mock.Anything, "amy").Return(created, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/api/users", "username=amy"), rec)

	assert.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Amy", got["username"])
	assert.Equal(t, created.ID.Hex(), got["_id"])
}

func TestCreateUserTooShort(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/api/users", "username=ab"), rec)

	status, _ := apiStatus(t, h.CreateUser(c))
	assert.Equal(t, http.StatusBadRequest, status)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUserMissingUsername(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/api/users", ""), rec)

	status, _ := apiStatus(t, h.CreateUser(c))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreateUserDuplicate(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)
	e := newEcho()

	svc.On("Create", mock.Anything, "john").Return(nil, apierrors.ErrDuplicateUsername)

	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/api/users", "username=john"), rec)

	status, message := apiStatus(t, h.CreateUser(c))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User already exists", message)
}

func TestCreateUserStorageFailure(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)
	e := newEcho()

	svc.On("Create", mock.Anything, "john").Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/api/users", "username=john"), rec)

	status, message := apiStatus(t, h.CreateUser(c))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server error", message)
}
