package user

import (
	"context"

	"go.uber.org/zap"

	domain "user-directory-service/internal/domain/user"
	"user-directory-service/pkg/logger"
)

// Repository defines the interface for user data access operations.
// Implementations report failures as *errors.StoreError.
type Repository interface {
	Create(ctx context.Context, name string) (*domain.User, error) // Insert one user, returning the assigned id
	List(ctx context.Context) ([]domain.User, error)               // Read every user in store order
}

// Usecase implements the business logic for user directory operations.
// It holds no state of its own; the store is the only source of truth.
type Usecase struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

var _ UserUsecase = (*Usecase)(nil)

// New creates a new instance of Usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: log}
}

// CreateUser stores a new user. Two calls with the same name create two users.
func (uc *Usecase) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	log := logger.WithContext(ctx, uc.log)
	log.Info("creating user", zap.Int("name_len", len(in.Name)))

	u, err := uc.repo.Create(ctx, in.Name)
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &User{ID: u.ID, Name: u.Name}, nil
}

// ListUsers returns every stored user. The order is whatever the store returns.
func (uc *Usecase) ListUsers(ctx context.Context) ([]User, error) {
	log := logger.WithContext(ctx, uc.log)

	domainUsers, err := uc.repo.List(ctx)
	if err != nil {
		log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:   du.ID,
			Name: du.Name,
		}
	}

	log.Debug("listed users", zap.Int("count", len(users)))
	return users, nil
}
