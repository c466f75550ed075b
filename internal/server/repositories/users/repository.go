// Package users provides persistence for user identity records.
package users

import (
	"context"

	"github.com/writehub/auth/internal/server/models"
)

// Repository is the narrow persistence contract the service layer needs
// for user records. Implementations must report a duplicate email as
// common.ErrorEmailExists and a missing row as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateUsername(ctx context.Context, id, username string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
