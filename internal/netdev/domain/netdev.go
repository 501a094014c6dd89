// Package domain holds the per-location WireGuard network device config.
package domain

import "time"

// NetworkDevice is the configuration of one device within one VPN location.
// A device only gains traffic access to a location after it has been
// authorized through a completed MFA login.
type NetworkDevice struct {
	DeviceID     int64
	LocationID   int64
	WireguardIPs []string
	PresharedKey string
	IsAuthorized bool
	AuthorizedAt *time.Time
}

// Authorize marks the device as authorized for its location with the given
// preshared key. Idempotent for repeated logins; the key and timestamp are
// refreshed each time.
func (n *NetworkDevice) Authorize(presharedKey string, at time.Time) {
	n.PresharedKey = presharedKey
	n.IsAuthorized = true
	t := at.UTC()
	n.AuthorizedAt = &t
}
