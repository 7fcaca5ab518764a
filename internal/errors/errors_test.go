package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runErrorHandler(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	HTTPErrorHandler(err, c)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHTTPErrorHandlerAPIError(t *testing.T) {
	code, body := runErrorHandler(t, New(http.StatusNotFound, "User not found"))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(http.StatusNotFound), body["status"])
	assert.Equal(t, "User not found", body["message"])
}

func TestHTTPErrorHandlerUnknownError(t *testing.T) {
	code, body := runErrorHandler(t, fmt.Errorf("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Something went wrong", body["message"])
}

func TestHTTPErrorHandlerEchoError(t *testing.T) {
	code, body := runErrorHandler(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "Method Not Allowed", body["message"])
}

func TestErrorImplementsError(t *testing.T) {
	err := New(http.StatusBadRequest, "Invalid limit")
	assert.Equal(t, "Invalid limit", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.Status)
}
