// Package wireguard wraps key generation for WireGuard peers.
package wireguard

import "golang.zx2c4.com/wireguard/wgctrl/wgtypes"

// GeneratePresharedKey returns a fresh WireGuard preshared key in its
// standard base64 encoding.
func GeneratePresharedKey() (string, error) {
	key, err := wgtypes.GenerateKey()
	if err != nil {
		return "", err
	}
	return key.String(), nil
}
