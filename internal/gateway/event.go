// Package gateway carries peer configuration updates from the core to the
// location gateways.
package gateway

// TopicPeerUpdates is the pub/sub topic gateways subscribe to.
const TopicPeerUpdates = "gateway.peer.updates"

// PeerUpdate tells the gateways of one location to apply new WireGuard
// peer configuration for a device.
type PeerUpdate struct {
	LocationID   int64    `json:"location_id"`
	DeviceID     int64    `json:"device_id"`
	PublicKey    string   `json:"public_key"`
	PresharedKey string   `json:"preshared_key"`
	WireguardIPs []string `json:"wireguard_ips"`
}
