package domain

import "testing"

func TestVerifyMFAState(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{"no mfa", User{}, false},
		{"totp ok", User{TOTPEnabled: true, TOTPSecret: "JBSWY3DP"}, false},
		{"totp missing secret", User{TOTPEnabled: true}, true},
		{"email ok", User{EmailMFAEnabled: true, EmailMFASecret: "JBSWY3DP"}, false},
		{"email missing secret", User{EmailMFAEnabled: true}, true},
		{"both ok", User{TOTPEnabled: true, TOTPSecret: "a", EmailMFAEnabled: true, EmailMFASecret: "b"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.VerifyMFAState()
			if (err != nil) != tt.wantErr {
				t.Errorf("VerifyMFAState() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMFAEnabled(t *testing.T) {
	if (&User{}).MFAEnabled() {
		t.Error("MFAEnabled() = true for user with no methods")
	}
	if !(&User{TOTPEnabled: true}).MFAEnabled() {
		t.Error("MFAEnabled() = false for user with TOTP")
	}
	if !(&User{EmailMFAEnabled: true}).MFAEnabled() {
		t.Error("MFAEnabled() = false for user with email MFA")
	}
}
