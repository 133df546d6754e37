package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	usecase "user-directory-service/internal/usecase/user"
	apperrors "user-directory-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// MockUserUsecase is a mock implementation of user.UserUsecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*usecase.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.User), args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]usecase.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.User), args.Error(1)
}

func setupTest(t *testing.T) (*gin.Engine, *UserHandler, *MockUserUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockUserUsecase)
	handler := NewUserHandler(mockUsecase, zaptest.NewLogger(t))

	r := gin.New()
	return r, handler, mockUsecase
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.POST("/api/users", handler.CreateUser)

		mockUsecase.On("CreateUser", mock.Anything, usecase.CreateUserRequest{Name: "Ada"}).
			Return(&usecase.User{ID: 1, Name: "Ada"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"name": "Ada"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id": 1, "name": "Ada"}`, w.Body.String())
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Empty Name Is Present", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.POST("/api/users", handler.CreateUser)

		mockUsecase.On("CreateUser", mock.Anything, usecase.CreateUserRequest{Name: ""}).
			Return(&usecase.User{ID: 7, Name: ""}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"name": ""}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id": 7, "name": ""}`, w.Body.String())
	})

	badRequests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "Missing Body", body: "", message: "bad request"},
		{name: "Invalid JSON", body: "invalid json", message: "not valid JSON"},
		{name: "Missing Name", body: `{}`, message: "name is required"},
		{name: "Null Name", body: `{"name": null}`, message: "name is required"},
		{name: "Other Fields Only", body: `{"username": "Ada"}`, message: "name is required"},
		{name: "Numeric Name", body: `{"name": 42}`, message: "name - must be string"},
		{name: "Array Body", body: `["Ada"]`, message: "bad request"},
	}
	for _, tc := range badRequests {
		t.Run(tc.name, func(t *testing.T) {
			r, handler, mockUsecase := setupTest(t)
			r.POST("/api/users", handler.CreateUser)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, "validation_error", resp.Error)
			assert.Contains(t, resp.Message, tc.message)
			mockUsecase.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		})
	}

	t.Run("Store Error", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.POST("/api/users", handler.CreateUser)

		mockUsecase.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewStoreError("create user", errors.New("pq: value too long for type")))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"name": "Ada"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "internal_error", resp.Error)
		assert.NotContains(t, w.Body.String(), "pq:")
	})
}

func TestListUsers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/api/users", handler.ListUsers)

		mockUsecase.On("ListUsers", mock.Anything).Return([]usecase.User{
			{ID: 1, Name: "Ada"},
			{ID: 2, Name: "Grace"},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.ElementsMatch(t, []UserResponse{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Grace"}}, resp)
	})

	t.Run("Empty", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/api/users", handler.ListUsers)

		mockUsecase.On("ListUsers", mock.Anything).Return([]usecase.User{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Store Error", func(t *testing.T) {
		r, handler, mockUsecase := setupTest(t)
		r.GET("/api/users", handler.ListUsers)

		mockUsecase.On("ListUsers", mock.Anything).
			Return(nil, apperrors.NewStoreError("list users", errors.New("connection refused")))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal_error", decodeError(t, w).Error)
	})
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
