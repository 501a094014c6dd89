package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bhardwajRahul/defguard/internal/netdev/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a network device repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `device_id, location_id, wireguard_ips,
	COALESCE(preshared_key, ''), is_authorized, authorized_at`

func scanNetworkDevice(row *sql.Row) (*domain.NetworkDevice, error) {
	var nd domain.NetworkDevice
	var ips string
	err := row.Scan(
		&nd.DeviceID, &nd.LocationID, &ips,
		&nd.PresharedKey, &nd.IsAuthorized, &nd.AuthorizedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	nd.WireguardIPs = splitIPs(ips)
	return &nd, nil
}

// Get returns the network device config for the device/location pair,
// or nil if the device is not configured for the location.
func (r *PostgresRepository) Get(ctx context.Context, deviceID, locationID int64) (*domain.NetworkDevice, error) {
	q := fmt.Sprintf(`SELECT %s FROM wireguard_network_devices
		WHERE device_id = $1 AND location_id = $2`, selectColumns)
	return scanNetworkDevice(r.db.QueryRowContext(ctx, q, deviceID, locationID))
}

// Begin starts a database transaction. The returned Tx must be committed or
// rolled back by the caller.
func (r *PostgresRepository) Begin(ctx context.Context) (Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// GetForUpdate reads the row inside tx with FOR UPDATE so concurrent
// authorizations of the same device/location pair serialize on the row lock.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, tx Tx, deviceID, locationID int64) (*domain.NetworkDevice, error) {
	sqlTx, ok := tx.(*sql.Tx)
	if !ok {
		return nil, fmt.Errorf("unexpected transaction type %T", tx)
	}
	q := fmt.Sprintf(`SELECT %s FROM wireguard_network_devices
		WHERE device_id = $1 AND location_id = $2 FOR UPDATE`, selectColumns)
	return scanNetworkDevice(sqlTx.QueryRowContext(ctx, q, deviceID, locationID))
}

// Update writes the mutable fields of nd inside tx.
func (r *PostgresRepository) Update(ctx context.Context, tx Tx, nd *domain.NetworkDevice) error {
	sqlTx, ok := tx.(*sql.Tx)
	if !ok {
		return fmt.Errorf("unexpected transaction type %T", tx)
	}
	const q = `UPDATE wireguard_network_devices
		SET wireguard_ips = $3, preshared_key = NULLIF($4, ''),
			is_authorized = $5, authorized_at = $6
		WHERE device_id = $1 AND location_id = $2`
	res, err := sqlTx.ExecContext(ctx, q,
		nd.DeviceID, nd.LocationID, joinIPs(nd.WireguardIPs),
		nd.PresharedKey, nd.IsAuthorized, nd.AuthorizedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("network device %d/%d not found", nd.DeviceID, nd.LocationID)
	}
	return nil
}

func splitIPs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func joinIPs(ips []string) string {
	return strings.Join(ips, ",")
}
