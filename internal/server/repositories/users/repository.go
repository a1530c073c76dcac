package users

import (
	"context"

	"github.com/mentormatch/mentorauth/internal/server/models"
)

// Repository is the data-access contract for user records. Uniqueness of
// email and username is enforced by the storage layer, not re-checked here.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID string) error
}
