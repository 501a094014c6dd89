package repository

import (
	"context"

	"github.com/bhardwajRahul/defguard/internal/location/domain"
)

// Repository defines persistence for VPN locations.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	// GetAllowedGroups returns the group names allowed to access the
	// location. An empty result means the location is open to everyone.
	GetAllowedGroups(ctx context.Context, locationID int64) ([]string, error)
}
