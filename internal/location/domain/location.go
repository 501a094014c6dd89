// Package domain holds the VPN location model.
package domain

// Location is a VPN network a desktop client can connect to.
type Location struct {
	ID      int64
	Name    string
	Address string
}
