package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ScopeDevice marks tokens issued to an anonymous device.
const ScopeDevice = "device"

// MinSecretLength is the shortest HS256 secret accepted.
const MinSecretLength = 32

var ErrInvalidToken = errors.New("invalid token")

// JWTManager issues and validates device tokens.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
// A zero ttl issues tokens without expiry.
func NewJWTManager(secret string, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

type deviceClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// GenerateDeviceToken creates a signed HS256 JWT with the device ID as subject.
// The returned time is the expiry, zero when tokens do not expire.
func (m *JWTManager) GenerateDeviceToken(deviceID uuid.UUID) (string, time.Time, error) {
	now := m.now()
	claims := deviceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  deviceID.String(),
			Issuer:   m.issuer,
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.NewString(),
		},
		Scope: ScopeDevice,
	}
	var exp time.Time
	if m.ttl > 0 {
		exp = now.Add(m.ttl)
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// ValidateDeviceToken parses and validates a device token and returns the
// device ID. All failures wrap ErrInvalidToken.
func (m *JWTManager) ValidateDeviceToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &deviceClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*deviceClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}
	if claims.Scope != ScopeDevice {
		return uuid.Nil, fmt.Errorf("%w: scope %q", ErrInvalidToken, claims.Scope)
	}

	deviceID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	return deviceID, nil
}
