// Package domain holds the user model used by the desktop-client login flow.
package domain

import "errors"

// ErrInconsistentMFAState is returned when a user claims an enabled MFA method
// with no secret provisioned for it.
var ErrInconsistentMFAState = errors.New("inconsistent MFA state")

// User is a read-mostly snapshot of an account. Captured into a login session
// at start time; later changes to the underlying record are not reflected.
type User struct {
	ID              int64
	Username        string
	Email           string
	IsActive        bool
	TOTPEnabled     bool
	TOTPSecret      string
	EmailMFAEnabled bool
	EmailMFASecret  string
}

// VerifyMFAState checks that enabled second-factor methods have their secrets
// provisioned. A mismatch means broken provisioning, not a user error.
func (u *User) VerifyMFAState() error {
	if u.TOTPEnabled && u.TOTPSecret == "" {
		return ErrInconsistentMFAState
	}
	if u.EmailMFAEnabled && u.EmailMFASecret == "" {
		return ErrInconsistentMFAState
	}
	return nil
}

// MFAEnabled reports whether any second-factor method is enabled.
func (u *User) MFAEnabled() bool {
	return u.TOTPEnabled || u.EmailMFAEnabled
}
