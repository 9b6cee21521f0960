package auth

import (
	"testing"
	"time"

	"arheb/internal/domain"
)

func TestTokensRoundTrip(t *testing.T) {
	tk := NewTokens("test-secret")

	signed, err := tk.Sign("+201001112233")
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	phone, err := tk.Verify("Bearer " + signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if phone != "+201001112233" {
		t.Fatalf("wrong identity: got %q", phone)
	}

	// raw token without prefix must also verify
	if _, err := tk.Verify(signed); err != nil {
		t.Fatalf("Verify without prefix returned error: %v", err)
	}
}

func TestTokensRejectsGarbage(t *testing.T) {
	tk := NewTokens("test-secret")

	for _, cred := range []string{"", "Bearer ", "Bearer not-a-jwt", "x.y.z"} {
		_, err := tk.Verify(cred)
		if err == nil {
			t.Fatalf("Verify(%q) should fail", cred)
		}
		if !domain.IsAuthentication(err) {
			t.Fatalf("Verify(%q) error is not AuthenticationError: %v", cred, err)
		}
	}
}

func TestTokensRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokens("secret-a").Sign("+100")
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}
	if _, err := NewTokens("secret-b").Verify(signed); err == nil {
		t.Fatalf("token signed with another secret should fail verification")
	}
}

func TestTokensRejectsExpired(t *testing.T) {
	tk := Tokens{Secret: []byte("test-secret"), TTL: -time.Minute}
	signed, err := tk.Sign("+100")
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}
	if _, err := tk.Verify(signed); err == nil {
		t.Fatalf("expired token should fail verification")
	}
}
