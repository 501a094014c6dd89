package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bhardwajRahul/defguard/internal/user/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a user repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `SELECT id, username, email, is_active, totp_enabled,
		COALESCE(totp_secret, ''), email_mfa_enabled, COALESCE(email_mfa_secret, '')
		FROM users WHERE id = $1`
	var u domain.User
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.IsActive,
		&u.TOTPEnabled, &u.TOTPSecret, &u.EmailMFAEnabled, &u.EmailMFASecret,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetGroups returns the names of all groups the user belongs to.
// Returns an empty slice when the user has no groups.
func (r *PostgresRepository) GetGroups(ctx context.Context, userID int64) ([]string, error) {
	const q = `SELECT g.name FROM groups g
		JOIN user_groups ug ON ug.group_id = g.id
		WHERE ug.user_id = $1 ORDER BY g.name`
	rows, err := r.db.QueryContext(ctx, q, userID)
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
