package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bhardwajRahul/defguard/internal/location/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a location repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the location for id, or nil if not found.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	const q = `SELECT id, name, address FROM locations WHERE id = $1`
	var l domain.Location
	err := r.db.QueryRowContext(ctx, q, id).Scan(&l.ID, &l.Name, &l.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// GetAllowedGroups returns the group names allowed to access the location.
func (r *PostgresRepository) GetAllowedGroups(ctx context.Context, locationID int64) ([]string, error) {
	const q = `SELECT g.name FROM groups g
		JOIN location_allowed_groups lag ON lag.group_id = g.id
		WHERE lag.location_id = $1 ORDER BY g.name`
	rows, err := r.db.QueryContext(ctx, q, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var groups []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		groups = append(groups, name)
	}
	return groups, rows.Err()
}
