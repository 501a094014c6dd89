// Package domain holds the WireGuard device model.
package domain

import "time"

// Device is a WireGuard client device registered by a user. The public key
// identifies the device across the desktop-client login flow.
type Device struct {
	ID        int64
	UserID    int64
	Name      string
	PublicKey string
	CreatedAt time.Time
}
