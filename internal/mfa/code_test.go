package mfa

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/bhardwajRahul/defguard/internal/user/domain"
)

func testSecret(t *testing.T) string {
	t.Helper()
	key, err := totp.Generate(totp.GenerateOpts{Issuer: "defguard", AccountName: "tester"})
	if err != nil {
		t.Fatalf("totp.Generate: %v", err)
	}
	return key.Secret()
}

func TestVerifyCodeTOTP(t *testing.T) {
	secret := testSecret(t)
	code, err := totp.GenerateCode(secret, time.Now())
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	if !MethodTOTP.VerifyCode(secret, code, time.Now()) {
		t.Error("valid TOTP code rejected")
	}
	if MethodTOTP.VerifyCode(secret, "000000", time.Now()) {
		t.Error("wrong TOTP code accepted")
	}
}

func TestVerifyCodeEmail(t *testing.T) {
	secret := testSecret(t)
	now := time.Now()
	code, err := GenerateEmailCode(secret, now)
	if err != nil {
		t.Fatalf("GenerateEmailCode: %v", err)
	}
	if !MethodEmail.VerifyCode(secret, code, now) {
		t.Error("valid email code rejected")
	}
	if MethodEmail.VerifyCode(secret, "000000", now) {
		t.Error("wrong email code accepted")
	}
}

func TestVerifyCodeEmailSurvivesMailLatency(t *testing.T) {
	secret := testSecret(t)
	now := time.Now()
	code, err := GenerateEmailCode(secret, now)
	if err != nil {
		t.Fatalf("GenerateEmailCode: %v", err)
	}
	// One skew period of delay between sending and entering the code.
	if !MethodEmail.VerifyCode(secret, code, now.Add(emailCodePeriodSeconds*time.Second)) {
		t.Error("email code rejected within skew window")
	}
}

func TestVerifyCodeEmptyInputs(t *testing.T) {
	secret := testSecret(t)
	if MethodTOTP.VerifyCode("", "123456", time.Now()) {
		t.Error("empty secret accepted")
	}
	if MethodTOTP.VerifyCode(secret, "", time.Now()) {
		t.Error("empty code accepted")
	}
}

func TestVerifyUsesPerMethodSecret(t *testing.T) {
	totpSecret := testSecret(t)
	emailSecret := testSecret(t)
	u := &domain.User{
		TOTPEnabled: true, TOTPSecret: totpSecret,
		EmailMFAEnabled: true, EmailMFASecret: emailSecret,
	}
	now := time.Now()
	emailCode, err := GenerateEmailCode(emailSecret, now)
	if err != nil {
		t.Fatalf("GenerateEmailCode: %v", err)
	}
	if !MethodEmail.Verify(u, emailCode, now) {
		t.Error("email code rejected for email method")
	}
	if MethodTOTP.Verify(u, emailCode, now) {
		t.Error("email code accepted for TOTP method")
	}
}
