package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"user-directory-service/internal/domain/user"
	apperrors "user-directory-service/pkg/errors"
)

// UserRepoPG is the persistence gateway for users, backed by PostgreSQL through GORM.
// The *gorm.DB is shared by every request; its pool does the synchronization.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
// The table is created outside this service.
type UserSchema struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"` // Store-assigned surrogate key
	Name string `gorm:"type:text;not null"`       // User's name (required)
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// Create inserts one user row and returns the assigned id with the stored name.
func (r *UserRepoPG) Create(ctx context.Context, name string) (*user.User, error) {
	model := UserSchema{Name: name}

	// RETURNING id, name: the response reflects the stored row
	returning := clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "name"}}}
	if err := r.db.WithContext(ctx).Clauses(returning).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.Int("name_len", len(name)))
		return nil, apperrors.NewStoreError("create user", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return &user.User{
		ID:   model.ID,
		Name: model.Name,
	}, nil
}

// List reads the whole users table. No ordering is requested, so callers
// must not rely on the order of the result.
func (r *UserRepoPG) List(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, apperrors.NewStoreError("list users", err)
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = user.User{
			ID:   model.ID,
			Name: model.Name,
		}
	}

	return users, nil
}
