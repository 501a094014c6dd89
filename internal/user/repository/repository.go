package repository

import (
	"context"

	"github.com/bhardwajRahul/defguard/internal/user/domain"
)

// Repository defines persistence for users.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetGroups returns the names of all groups the user belongs to.
	GetGroups(ctx context.Context, userID int64) ([]string, error)
}
