package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lower-case scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"empty", "", "", true},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Fatalf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseSessionClaims_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	claims, err := ParseSessionClaims(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Errorf("expected subject user-42, got %s", claims.Subject)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Errorf("expected expiry %v, got %v", exp, claims.ExpiresAt)
	}
}

func TestParseSessionClaims_NoExpiry(t *testing.T) {
	token := signTestToken(t, jwt.RegisteredClaims{Subject: "user-1"})

	claims, err := ParseSessionClaims(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !claims.ExpiresAt.IsZero() {
		t.Errorf("expected zero expiry, got %v", claims.ExpiresAt)
	}
}

func TestParseSessionClaims_EmptySubject(t *testing.T) {
	token := signTestToken(t, jwt.RegisteredClaims{Issuer: "auth"})

	if _, err := ParseSessionClaims(token); err == nil {
		t.Fatal("expected error for empty subject, got nil")
	}
}

func TestParseSessionClaims_Malformed(t *testing.T) {
	if _, err := ParseSessionClaims("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
