package mfa

import (
	"testing"

	"github.com/bhardwajRahul/defguard/internal/user/domain"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    Method
		wantErr bool
	}{
		{"totp", MethodTOTP, false},
		{"email", MethodEmail, false},
		{"", 0, true},
		{"TOTP", 0, true},
		{"webauthn", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMethod(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMethodString(t *testing.T) {
	if got := MethodTOTP.String(); got != "totp" {
		t.Errorf("MethodTOTP.String() = %q", got)
	}
	if got := MethodEmail.String(); got != "email" {
		t.Errorf("MethodEmail.String() = %q", got)
	}
	if got := Method(0).String(); got != "unknown" {
		t.Errorf("Method(0).String() = %q", got)
	}
}

func TestEnabledFor(t *testing.T) {
	u := &domain.User{TOTPEnabled: true}
	if !MethodTOTP.EnabledFor(u) {
		t.Error("MethodTOTP.EnabledFor = false for TOTP user")
	}
	if MethodEmail.EnabledFor(u) {
		t.Error("MethodEmail.EnabledFor = true for TOTP-only user")
	}
}
