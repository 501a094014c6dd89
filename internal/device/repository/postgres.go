package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bhardwajRahul/defguard/internal/device/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a device repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByPublicKey returns the device with the given WireGuard public key,
// or nil if no device matches.
func (r *PostgresRepository) GetByPublicKey(ctx context.Context, publicKey string) (*domain.Device, error) {
	const q = `SELECT id, user_id, name, public_key, created_at
		FROM devices WHERE public_key = $1`
	var d domain.Device
	err := r.db.QueryRowContext(ctx, q, publicKey).Scan(
		&d.ID, &d.UserID, &d.Name, &d.PublicKey, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
