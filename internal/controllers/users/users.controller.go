package userController

import (
	"context"
	"server/internal/apperrors"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
)

type Notifier interface {
	Broadcast(eventType string, data any)
}

type UserController struct {
	userRepo repositories.UserRepository
	notifier Notifier
	log      logger.Logger
}

func New(userRepo repositories.UserRepository, notifier Notifier) *UserController {
	return &UserController{
		userRepo: userRepo,
		notifier: notifier,
		log:      logger.New("UserController"),
	}
}

// AddUser inserts a placeholder allowlist entry. No duplicate check: two
// invites for the same email produce two rows.
func (c *UserController) AddUser(ctx context.Context, req *AddUserRequest) (*User, error) {
	log := c.log.Function("AddUser")

	if err := req.Validate(); err != nil {
		return nil, err
	}

	user := NewInvitee(*req.Email)
	if err := c.userRepo.Create(ctx, user); err != nil {
		return nil, &apperrors.StoreError{Op: "add user", Err: err}
	}

	log.Info("added user", "id", user.ID, "email", user.Email)
	c.notifier.Broadcast("user_added", user)

	return user, nil
}

func (c *UserController) ListUsers(ctx context.Context) ([]*User, error) {
	users, err := c.userRepo.GetAll(ctx)
	if err != nil {
		return nil, &apperrors.StoreError{Op: "list users", Err: err}
	}

	return users, nil
}

// DeleteUser succeeds whether or not the id exists.
func (c *UserController) DeleteUser(ctx context.Context, id string) error {
	log := c.log.Function("DeleteUser")

	if err := c.userRepo.Delete(ctx, id); err != nil {
		return &apperrors.StoreError{Op: "delete user", Err: err}
	}

	log.Info("deleted user", "id", id)
	c.notifier.Broadcast("user_deleted", map[string]any{"id": id})

	return nil
}

// VerifyEmail is a presence check against the allowlist, nothing more. A
// miss is an ordinary false, not an error.
func (c *UserController) VerifyEmail(ctx context.Context, req *VerifyEmailRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, err
	}

	authorized, err := c.userRepo.ExistsByEmail(ctx, *req.Email)
	if err != nil {
		return false, &apperrors.StoreError{Op: "verify email", Err: err}
	}

	return authorized, nil
}
