package mfa

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/bhardwajRahul/defguard/internal/user/domain"
)

// Email codes rotate slower than TOTP codes because they are delivered
// out of band and have to survive mail latency.
const emailCodePeriodSeconds = 300

var emailCodeOpts = totp.ValidateOpts{
	Period:    emailCodePeriodSeconds,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// Verify checks a one-time code submitted by the user at time now.
func (m Method) Verify(u *domain.User, code string, now time.Time) bool {
	return m.VerifyCode(m.secretFor(u), code, now)
}

// VerifyCode checks a one-time code for the method against a shared
// secret at time now. Returns false for empty secrets, malformed codes,
// and codes outside the validity window.
func (m Method) VerifyCode(secret, code string, now time.Time) bool {
	if secret == "" || code == "" {
		return false
	}
	switch m {
	case MethodTOTP:
		return totp.Validate(code, secret)
	case MethodEmail:
		ok, err := totp.ValidateCustom(code, secret, now.UTC(), emailCodeOpts)
		return err == nil && ok
	default:
		return false
	}
}

// GenerateEmailCode derives the current email one-time code from the
// user's email MFA secret. The mail worker sends this to the user; no
// server-side code store is kept.
func GenerateEmailCode(secret string, now time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, now.UTC(), emailCodeOpts)
}
