// Package mfa implements the second-factor methods accepted during
// desktop-client logins.
package mfa

import (
	"errors"

	"github.com/bhardwajRahul/defguard/internal/user/domain"
)

// ErrUnknownMethod is returned when a client names a method outside the
// supported set.
var ErrUnknownMethod = errors.New("unknown MFA method")

// Method is one of the supported second-factor methods. The set is closed:
// every method resolves a shared secret from the user and verifies a
// one-time code against it.
type Method int

const (
	MethodTOTP Method = iota + 1
	MethodEmail
)

// ParseMethod maps the wire name of a method to its Method value.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "totp":
		return MethodTOTP, nil
	case "email":
		return MethodEmail, nil
	default:
		return 0, ErrUnknownMethod
	}
}

func (m Method) String() string {
	switch m {
	case MethodTOTP:
		return "totp"
	case MethodEmail:
		return "email"
	default:
		return "unknown"
	}
}

// EnabledFor reports whether the user has this method enabled.
func (m Method) EnabledFor(u *domain.User) bool {
	switch m {
	case MethodTOTP:
		return u.TOTPEnabled
	case MethodEmail:
		return u.EmailMFAEnabled
	default:
		return false
	}
}

// secretFor returns the user's shared secret for the method, or "" when
// none is provisioned.
func (m Method) secretFor(u *domain.User) string {
	switch m {
	case MethodTOTP:
		return u.TOTPSecret
	case MethodEmail:
		return u.EmailMFASecret
	default:
		return ""
	}
}
