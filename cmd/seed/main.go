// seed inserts development sample data for local testing: one user with
// TOTP and email MFA enabled, one group-restricted and one open location,
// and a device configured for both.
// Idempotent: skips inserts if the dev user already exists.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/bhardwajRahul/defguard/internal/config"
	"github.com/bhardwajRahul/defguard/internal/db"
)

const (
	devUsername  = "dev"
	devEmail     = "dev@example.com"
	devGroup     = "vpn-users"
	devPublicKey = "aGVsbG8td2lyZWd1YXJkLWRldi1wdWJrZXktMDAwMDE="
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, conn); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func seed(ctx context.Context, conn *sql.DB) error {
	var existing int64
	err := conn.QueryRowContext(ctx, `SELECT id FROM users WHERE username = $1`, devUsername).Scan(&existing)
	if err == nil {
		log.Printf("seed: user %q already exists, nothing to do", devUsername)
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	totpKey, err := totp.Generate(totp.GenerateOpts{Issuer: "defguard", AccountName: devEmail})
	if err != nil {
		return fmt.Errorf("generate totp secret: %w", err)
	}
	emailKey, err := totp.Generate(totp.GenerateOpts{Issuer: "defguard", AccountName: devEmail})
	if err != nil {
		return fmt.Errorf("generate email secret: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var userID int64
	err = tx.QueryRowContext(ctx, `INSERT INTO users
		(username, email, is_active, totp_enabled, totp_secret, email_mfa_enabled, email_mfa_secret)
		VALUES ($1, $2, TRUE, TRUE, $3, TRUE, $4) RETURNING id`,
		devUsername, devEmail, totpKey.Secret(), emailKey.Secret()).Scan(&userID)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	var groupID int64
	err = tx.QueryRowContext(ctx, `INSERT INTO groups (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id`, devGroup).Scan(&groupID)
	if err != nil {
		return fmt.Errorf("insert group: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO user_groups (user_id, group_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, userID, groupID); err != nil {
		return fmt.Errorf("insert user group: %w", err)
	}

	var openLocationID, restrictedLocationID int64
	err = tx.QueryRowContext(ctx, `INSERT INTO locations (name, address)
		VALUES ('office', 'vpn-office.example.com:51820') RETURNING id`).Scan(&openLocationID)
	if err != nil {
		return fmt.Errorf("insert open location: %w", err)
	}
	err = tx.QueryRowContext(ctx, `INSERT INTO locations (name, address)
		VALUES ('datacenter', 'vpn-dc.example.com:51820') RETURNING id`).Scan(&restrictedLocationID)
	if err != nil {
		return fmt.Errorf("insert restricted location: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO location_allowed_groups (location_id, group_id)
		VALUES ($1, $2)`, restrictedLocationID, groupID); err != nil {
		return fmt.Errorf("insert allowed group: %w", err)
	}

	var deviceID int64
	err = tx.QueryRowContext(ctx, `INSERT INTO devices (user_id, name, public_key)
		VALUES ($1, 'dev laptop', $2) RETURNING id`, userID, devPublicKey).Scan(&deviceID)
	if err != nil {
		return fmt.Errorf("insert device: %w", err)
	}
	for i, locationID := range []int64{openLocationID, restrictedLocationID} {
		if _, err := tx.ExecContext(ctx, `INSERT INTO wireguard_network_devices
			(device_id, location_id, wireguard_ips) VALUES ($1, $2, $3)`,
			deviceID, locationID, fmt.Sprintf("10.%d.0.10", 6+i)); err != nil {
			return fmt.Errorf("insert network device: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("seed: created user %q (TOTP secret %s), device %q, locations %d and %d",
		devUsername, totpKey.Secret(), devPublicKey, openLocationID, restrictedLocationID)
	return nil
}
