package user

import "context"

// UserUsecase defines the interface for user business logic operations.
type UserUsecase interface {
	CreateUser(ctx context.Context, in CreateUserRequest) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}
