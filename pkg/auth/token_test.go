package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/washdesk/washdesk-backend/pkg/config"
	"github.com/washdesk/washdesk-backend/pkg/enums"
)

func signTestToken(t *testing.T, cfg config.AuthConfig, claims AccessTokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func TestParseAccessToken(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "secret", JWTIssuer: "washdesk"}
	userID := uuid.New()

	signed := signTestToken(t, cfg, AccessTokenClaims{
		UserID: userID,
		Role:   enums.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "washdesk",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ParseAccessToken(cfg, signed)
	if err != nil {
		t.Fatalf("ParseAccessToken returned error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("unexpected user id %s", claims.UserID)
	}
	if claims.Role != enums.RoleAdmin {
		t.Fatalf("unexpected role %s", claims.Role)
	}
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "secret", JWTIssuer: "washdesk"}
	signed := signTestToken(t, cfg, AccessTokenClaims{
		UserID: uuid.New(),
		Role:   enums.RoleStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected issuer mismatch to fail")
	}
}

func TestParseAccessTokenRejectsUnknownRole(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "secret", JWTIssuer: "washdesk"}
	signed := signTestToken(t, cfg, AccessTokenClaims{
		UserID: uuid.New(),
		Role:   enums.Role("manager"),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "washdesk",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected unknown role to fail")
	}
}
