package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID uuid.UUID, expiresAt time.Time, secret string) string {
	t.Helper()

	claims := &JWTClaims{
		UserID:   userID.String(),
		Username: "alice",
		Email:    "alice@example.com",
		Role:     "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestValidateTokenRoundtrip(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, userID, time.Now().Add(time.Hour), testSecret)

	user, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if user.ID != userID {
		t.Errorf("ID = %v, want %v", user.ID, userID)
	}
	if user.Username != "alice" || user.Email != "alice@example.com" || user.Role != "user" {
		t.Errorf("claims = %+v, unexpected values", user)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token := signToken(t, uuid.New(), time.Now().Add(time.Hour), "other-secret")

	if _, err := ValidateToken(token, testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token := signToken(t, uuid.New(), time.Now().Add(-time.Hour), testSecret)

	if _, err := ValidateToken(token, testSecret); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want %v", err, ErrExpiredToken)
	}
}

func TestValidateTokenEmpty(t *testing.T) {
	if _, err := ValidateToken("", testSecret); !errors.Is(err, ErrMissingToken) {
		t.Errorf("ValidateToken() error = %v, want %v", err, ErrMissingToken)
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"well-formed", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"missing scheme", "abc.def.ghi", ""},
		{"wrong scheme", "Basic abc", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTokenFromHeader(tt.header); got != tt.want {
				t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
