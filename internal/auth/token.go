package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims bind a token to one auth_sessions row. A parsed token is
// only honored while that row still exists, so deleting rows is how
// sign-out (local or global) revokes browsers.
type SessionClaims struct {
	UserID    uint
	SessionID uint
}

// GenerateToken signs a session token valid until exp.
func GenerateToken(c SessionClaims, secret string, exp time.Time) (string, error) {
	claims := jwt.MapClaims{
		"uid": c.UserID,
		"sid": c.SessionID,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry and extracts the claims.
func ParseToken(tokenStr, secret string) (SessionClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return SessionClaims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidToken
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return SessionClaims{}, ErrInvalidToken
	}
	sid, ok := claims["sid"].(float64)
	if !ok {
		return SessionClaims{}, ErrInvalidToken
	}

	return SessionClaims{UserID: uint(uid), SessionID: uint(sid)}, nil
}
