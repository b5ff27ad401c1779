package utils

import (
	"errors"
	"fmt"
	"time"

	"FoodiePal-Backend/src/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager ออกและตรวจสอบ JWT ที่เซ็นด้วย HS256
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the validity window of issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// GenerateJWT signs the identity claim. The registered claims iat, exp and
// jti are always set by the manager and override identity keys of the same name.
func (m *TokenManager) GenerateJWT(identity map[string]interface{}) (string, jwt.MapClaims, error) {
	now := m.now()
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(m.ttl).Unix()
	claims["jti"] = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// ParseJWT ตรวจ signature และวันหมดอายุ แล้วคืน claims
func (m *TokenManager) ParseJWT(tokenStr string) (jwt.MapClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("empty token string: %w", models.ErrUnauthorized)
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %v: %w", err, models.ErrUnauthorized)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token claims: %w", models.ErrUnauthorized)
	}
	return claims, nil
}

// TokenID returns the jti claim and the time left before expiry.
func TokenID(claims jwt.MapClaims) (string, time.Duration, error) {
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return "", 0, errors.New("token has no jti claim")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", 0, errors.New("token has no exp claim")
	}
	return jti, time.Until(exp.Time), nil
}

// TokenCookie is the cookie that carries the signed token.
const TokenCookie = "token"
