package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookbuddy/internal/domain/storage"
	"bookbuddy/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func registerRequest(t *testing.T, app *application, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/authentication/user", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	app.registerUserHandler(rr, req)
	return rr
}

func TestRegisterUserSuccess(t *testing.T) {
	mockUsers := new(MockUserStore)
	mockUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *users.User) bool {
		return u.Email == "alex@example.com" && u.Role == users.RoleUser
	})).Return(nil)

	app := newTestApplication(&storage.Container{Users: mockUsers})

	rr := registerRequest(t, app, map[string]any{
		"first_name": "Alex",
		"last_name":  "Doe",
		"email":      "alex@example.com",
		"password":   "secret123",
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	mockUsers.AssertExpectations(t)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	mockUsers := new(MockUserStore)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(users.ErrDuplicateEmail)

	app := newTestApplication(&storage.Container{Users: mockUsers})

	rr := registerRequest(t, app, map[string]any{
		"first_name": "Alex",
		"last_name":  "Doe",
		"email":      "alex@example.com",
		"password":   "secret123",
	})

	assert.Equal(t, http.StatusConflict, rr.Code)
	mockUsers.AssertExpectations(t)
}

func TestRegisterUserInvalidPayload(t *testing.T) {
	app := newTestApplication(&storage.Container{})

	rr := registerRequest(t, app, map[string]any{
		"first_name": "Alex",
		"email":      "not-an-email",
		"password":   "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
