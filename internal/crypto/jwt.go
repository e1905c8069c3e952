package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/veritable/veritable-go/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the access-token payload: principal id, role and the identifier
// the principal logged in with (email for users, username for admins).
type Claims struct {
	jwt.RegisteredClaims
	PrincipalID int64  `json:"id"`
	Role        string `json:"role"`
	Email       string `json:"email,omitempty"`
	Username    string `json:"username,omitempty"`
}

// Name returns the identifier stored for the principal's role.
func (c *Claims) Name() string {
	if c.Role == model.RoleAdmin {
		return c.Username
	}
	return c.Email
}

// GenerateToken creates a signed HS256 token for the given principal. The name
// is stored under "username" for admins and "email" for users.
func GenerateToken(id int64, role, name, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "veritable",
			Audience:  jwt.ClaimStrings{"veritable-app"},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		PrincipalID: id,
		Role:        role,
	}
	if role == model.RoleAdmin {
		claims.Username = name
	} else {
		claims.Email = name
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a token string, returning the claims if valid.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("veritable"), jwt.WithAudience("veritable-app"))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
