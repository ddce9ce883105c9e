package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"liyu1981.xyz/smart-home-service/pkg/common"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	accessTokenLifetime  = time.Hour
	refreshTokenLifetime = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated user and the token kind. Refresh tokens
// get a uuid ID so logout can blacklist them individually.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func secret() []byte {
	if s := os.Getenv(common.EnvKeyHomeJwtSecret); s != "" {
		return []byte(s)
	}
	return []byte("dev-only-secret")
}

// TokenPair is what login and refresh hand back to the client.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func GenerateTokenPair(userID uint, username string) (*TokenPair, error) {
	access, err := generateToken(userID, username, TokenTypeAccess, accessTokenLifetime)
	if err != nil {
		return nil, err
	}
	refresh, err := generateToken(userID, username, TokenTypeRefresh, refreshTokenLifetime)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func generateToken(userID uint, username string, tokenType string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// ValidateToken parses a token string and checks its signature, expiry and
// kind.
func ValidateToken(tokenString string, tokenType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != tokenType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
