package utils // package utils provides helper functions for token creation and hashing

import (
	"errors" // sentinel error for failed verification
	"time"   // expiry computation

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is returned by VerifyAccessToken for every failure mode:
// malformed input, wrong signing algorithm, bad signature, or an expired
// token. Callers get one unified error kind and must not try to
// distinguish "expired" from "tampered".
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the serialized JWT string; Exp stores the UTC
// expiration time. Access tokens are carried in the Authorization header
// when calling protected endpoints.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// Claims is the decoded identity carried by a verified access token.
// The auth middleware attaches these values to the request context so
// handlers can read who is calling without re-parsing the token.
type Claims struct {
	UserID   uint64 // subject: the user's primary key
	Role     string // admin or standard
	Username string
}

// NewAccessToken builds and signs an HS256 JWT for a user. The JWT carries
// sub (user ID), role, username, exp and iat. ttlMin controls the lifetime
// in minutes; the service configures it to 60 so tokens expire exactly one
// hour after issuance.
func NewAccessToken(secret string, userID uint64, role, username string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":      userID,
		"role":     role,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken parses and validates a raw token string and returns the
// identity claims it carries. Signature and expiry are both checked by the
// parse step; any failure collapses into ErrInvalidToken. The function is
// pure: it performs no I/O and depends only on the secret passed in.
func VerifyAccessToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything other than HMAC. Without this
		// check a client could present a token with a forged algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, ok := mc["sub"].(float64) // JSON numbers decode as float64
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	role, ok := mc["role"].(string)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	username, _ := mc["username"].(string)
	return Claims{UserID: uint64(sub), Role: role, Username: username}, nil
}
