package security

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testKeyPEMs(t *testing.T) (privPEM, pubPEM string) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("MarshalPKCS8PrivateKey: %v", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("MarshalPKIXPublicKey: %v", err)
	}
	privPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}))
	pubPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))
	return privPEM, pubPEM
}

func TestLoadPEM_Inline(t *testing.T) {
	privPEM, _ := testKeyPEMs(t)
	pemBytes, err := LoadPEM(privPEM)
	if err != nil {
		t.Fatalf("LoadPEM: %v", err)
	}
	if !strings.Contains(string(pemBytes), "-----BEGIN") {
		t.Error("LoadPEM did not return PEM content")
	}
}

func TestLoadPEM_Empty(t *testing.T) {
	if _, err := LoadPEM("   "); err != ErrInvalidKey {
		t.Errorf("LoadPEM empty: want ErrInvalidKey, got %v", err)
	}
}

func TestLoadPEM_FilePath(t *testing.T) {
	privPEM, _ := testKeyPEMs(t)
	path := filepath.Join(t.TempDir(), "key.pem")
	if err := os.WriteFile(path, []byte(privPEM), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	pemBytes, err := LoadPEM(path)
	if err != nil {
		t.Fatalf("LoadPEM: %v", err)
	}
	if string(pemBytes) != privPEM {
		t.Error("LoadPEM file content mismatch")
	}
}

func TestParsePrivateKey(t *testing.T) {
	privPEM, _ := testKeyPEMs(t)
	signer, err := ParsePrivateKey(privPEM)
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	if _, ok := signer.Public().(*ecdsa.PublicKey); !ok {
		t.Errorf("public key type = %T, want *ecdsa.PublicKey", signer.Public())
	}
}

func TestParsePublicKey(t *testing.T) {
	_, pubPEM := testKeyPEMs(t)
	pub, err := ParsePublicKey(pubPEM)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if _, ok := pub.(*ecdsa.PublicKey); !ok {
		t.Errorf("public key type = %T, want *ecdsa.PublicKey", pub)
	}
}

func TestParsePrivateKey_Garbage(t *testing.T) {
	if _, err := ParsePrivateKey("-----BEGIN GARBAGE-----\nabc\n-----END GARBAGE-----"); err == nil {
		t.Error("ParsePrivateKey should reject non-key PEM")
	}
}
