package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"user-directory-service/internal/usecase/user"
	apperrors "user-directory-service/pkg/errors"
	"user-directory-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.UserUsecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.UserUsecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// CreateUserRequest represents the HTTP request body for creating a user.
// Name is a pointer so that a present empty string is told apart from a missing field.
type CreateUserRequest struct {
	Name *string `json:"name" binding:"required"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.WithContext(ctx, h.log)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badReq := bindError(err)
		log.Warn("invalid create user request", zap.Error(err))
		writeError(c, badReq)
		return
	}

	resp, err := h.uc.CreateUser(ctx, user.CreateUserRequest{Name: *req.Name})
	if err != nil {
		log.Error("create user failed", zap.Error(err))
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		ID:   resp.ID,
		Name: resp.Name,
	})
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.uc.ListUsers(ctx)
	if err != nil {
		logger.WithContext(ctx, h.log).Error("list users failed", zap.Error(err))
		writeError(c, err)
		return
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = UserResponse{
			ID:   u.ID,
			Name: u.Name,
		}
	}

	c.JSON(http.StatusOK, out)
}

// bindError turns a binding failure into a BadRequestError with a client-safe message
func bindError(err error) *apperrors.BadRequestError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			field := strings.ToLower(e.Field())
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", field))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", field))
			}
		}
		return apperrors.NewBadRequestError("", strings.Join(messages, ", "))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewBadRequestError(typeErr.Field, fmt.Sprintf("must be %s", typeErr.Type.Kind()))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperrors.NewBadRequestError("", "body is not valid JSON")
	}

	return apperrors.NewBadRequestError("", "request body must be a JSON object with a name field")
}
