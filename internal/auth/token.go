package auth

import (
	"strings"
	"time"

	"arheb/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens signs and verifies the bearer tokens issued after OTP
// verification. Identity is the phone number; nothing else is encoded.
type Tokens struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokens(secret string) Tokens {
	return Tokens{Secret: []byte(secret), TTL: 7 * 24 * time.Hour}
}

func (t Tokens) Sign(phoneNumber string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"phoneNumber": phoneNumber,
		"exp":         time.Now().Add(t.TTL).Unix(),
	})
	return token.SignedString(t.Secret)
}

// Verify validates a bearer credential and returns the phone identity.
// A "Bearer " prefix is stripped before parsing.
func (t Tokens) Verify(credential string) (string, error) {
	clean := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(credential), "Bearer "))
	if clean == "" {
		return "", domain.AuthenticationError{Msg: "token is required"}
	}

	parsed, err := jwt.Parse(clean, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.AuthenticationError{Msg: "unexpected signing method"}
		}
		return t.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.AuthenticationError{Msg: "invalid token", Err: err}
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.AuthenticationError{Msg: "invalid token claims"}
	}
	phone, _ := claims["phoneNumber"].(string)
	if phone == "" {
		return "", domain.AuthenticationError{Msg: "token has no identity"}
	}
	return phone, nil
}
