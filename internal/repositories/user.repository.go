package repositories

import (
	"context"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetAll(ctx context.Context) ([]*User, error)
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUser(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

func (r *userRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.SQLWithContext(ctx)
}

// Create inserts without checking for an existing email; duplicate
// allowlist entries are permitted.
func (r *userRepository) Create(ctx context.Context, user *User) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(user).Error; err != nil {
		return log.Err("failed to create user", err, "user", user)
	}

	return nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]*User, error) {
	log := r.log.Function("GetAll")

	var users []*User
	if err := r.getDB(ctx).Find(&users).Error; err != nil {
		return nil, log.Err("failed to get all users", err)
	}

	return users, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	if err := r.getDB(ctx).Delete(&User{}, "id = ?", id).Error; err != nil {
		return log.Err("failed to delete user", err, "id", id)
	}

	return nil
}

// ExistsByEmail is the whole authorization check: at least one row with
// that exact email means authorized.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := r.log.Function("ExistsByEmail")

	var count int64
	if err := r.getDB(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, log.Err("failed to check email presence", err, "email", email)
	}

	return count > 0, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	log := r.log.Function("Count")

	var count int64
	if err := r.getDB(ctx).Model(&User{}).Count(&count).Error; err != nil {
		return 0, log.Err("failed to count users", err)
	}

	return count, nil
}
