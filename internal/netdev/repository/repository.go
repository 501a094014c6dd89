package repository

import (
	"context"

	"github.com/bhardwajRahul/defguard/internal/netdev/domain"
)

// Tx is a transaction handle returned by Begin. The caller decides the
// commit point so that side effects (gateway events, notifications) can be
// deferred until after the row change is durable.
type Tx interface {
	Commit() error
	Rollback() error
}

// Repository defines persistence for network device configurations.
type Repository interface {
	Get(ctx context.Context, deviceID, locationID int64) (*domain.NetworkDevice, error)
	Begin(ctx context.Context) (Tx, error)
	// GetForUpdate reads the row inside tx with a row lock so concurrent
	// authorizations of the same device serialize.
	GetForUpdate(ctx context.Context, tx Tx, deviceID, locationID int64) (*domain.NetworkDevice, error)
	Update(ctx context.Context, tx Tx, nd *domain.NetworkDevice) error
}
