package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/bhardwajRahul/defguard/internal/activity"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an activity log repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one activity log row.
func (r *PostgresRepository) Create(ctx context.Context, event *activity.Event) error {
	var metadata []byte
	if len(event.Metadata) > 0 {
		var err error
		metadata, err = json.Marshal(event.Metadata)
		if err != nil {
			return err
		}
	}
	const q = `INSERT INTO activity_log
		(id, timestamp, user_id, username, ip, device, module, event, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, q,
		event.ID, event.Context.Timestamp, event.Context.UserID,
		event.Context.Username, event.Context.IP, event.Context.Device,
		event.Module, event.Kind, metadata,
	)
	return err
}
