package repository

import (
	"context"

	"github.com/bhardwajRahul/defguard/internal/device/domain"
)

// Repository defines persistence for WireGuard devices.
type Repository interface {
	GetByPublicKey(ctx context.Context, publicKey string) (*domain.Device, error)
}
