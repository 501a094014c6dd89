// Package proxyv1 defines the desktop-client MFA service surface exposed
// to the proxy. Messages travel as JSON over gRPC (see the server's codec
// registration); clients select the codec with the "json" content subtype.
package proxyv1

// StartLoginRequest begins an MFA login for a device at a location.
type StartLoginRequest struct {
	PublicKey  string `json:"pubkey"`
	LocationID int64  `json:"location_id"`
	Method     string `json:"method"`
}

// StartLoginResponse carries the token the client must present to finish
// the login.
type StartLoginResponse struct {
	Token string `json:"token"`
}

// FinishLoginRequest completes an MFA login with a one-time code.
type FinishLoginRequest struct {
	Token string `json:"token"`
	Code  string `json:"code"`
}

// FinishLoginResponse carries the preshared key for the device's tunnel to
// the location.
type FinishLoginResponse struct {
	PresharedKey string `json:"preshared_key"`
}
