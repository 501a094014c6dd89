package security

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, expired, or minted for another purpose.
var ErrInvalidToken = errors.New("invalid token")

// PurposeDesktopClientMFA is the purpose claim on desktop-client login tokens.
// Tokens minted for other flows that share the signing key carry a different
// purpose and are rejected here.
const PurposeDesktopClientMFA = "desktop-client-mfa"

// LoginClaims holds JWT claims for the desktop-client login token. Subject is
// the device public key; no other secrets are embedded.
type LoginClaims struct {
	jwt.RegisteredClaims
	Purpose string `json:"purpose"`
}

// TokenProvider issues and verifies login tokens using RS256 or ES256 (private/public key).
type TokenProvider struct {
	privateKey crypto.Signer
	publicKey  crypto.PublicKey
	issuer     string
}

// NewTokenProvider returns a TokenProvider that signs with the given private key (RS256 or ES256).
// issuer is set on claims and validated on verify.
func NewTokenProvider(privateKey crypto.Signer, publicKey crypto.PublicKey, issuer string) *TokenProvider {
	return &TokenProvider{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
	}
}

// IssueLogin issues a login token bound to the device public key with the given TTL.
// Returns the signed token string and its expiration time.
func (p *TokenProvider) IssueLogin(pubkey string, ttl time.Duration) (token string, expiresAt time.Time, err error) {
	now := time.Now().UTC()
	expiresAt = now.Add(ttl)
	claims := LoginClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   pubkey,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Purpose: PurposeDesktopClientMFA,
	}
	token, err = p.sign(claims)
	return token, expiresAt, err
}

func (p *TokenProvider) sign(claims jwt.Claims) (string, error) {
	var method jwt.SigningMethod
	switch p.privateKey.Public().(type) {
	case *rsa.PublicKey:
		method = jwt.SigningMethodRS256
	case *ecdsa.PublicKey:
		method = jwt.SigningMethodES256
	default:
		return "", ErrInvalidToken
	}
	t := jwt.NewWithClaims(method, claims)
	return t.SignedString(p.privateKey)
}

// VerifyLogin parses and validates a login token (signature, exp, iss, purpose).
// Returns the device public key the token was bound to. Fails closed: any
// tamper, expiry, missing exp, or purpose mismatch yields ErrInvalidToken.
func (p *TokenProvider) VerifyLogin(tokenString string) (pubkey string, err error) {
	parser := jwt.NewParser(
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(p.issuer),
	)
	token, err := parser.ParseWithClaims(tokenString, &LoginClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
			return p.publicKey, nil
		}
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); ok {
			return p.publicKey, nil
		}
		return nil, ErrInvalidToken
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*LoginClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Purpose != PurposeDesktopClientMFA {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
