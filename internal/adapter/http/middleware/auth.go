package middleware

import (
	"errors"
	"net/http"
	"strings"

	"bidright/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const contextUserIDKey = "user_id"

var (
	errUnauthorized      = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errInvalidAuthHeader = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization header format", http.StatusUnauthorized)
	errInvalidToken      = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)

	ErrInvalidToken = errors.New("invalid token")
)

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(secret string) gin.HandlerFunc {
	return auth(secret, false)
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through. A bad token on a public route is ignored.
func OptionalAuth(secret string) gin.HandlerFunc {
	return auth(secret, true)
}

func auth(secret string, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if optional {
				c.Next()
				return
			}
			abort(c, errUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			if optional {
				c.Next()
				return
			}
			abort(c, errInvalidAuthHeader)
			return
		}

		userID, err := ParseToken(parts[1], secret)
		if err != nil {
			if optional {
				c.Next()
				return
			}
			abort(c, errInvalidToken)
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// ParseToken validates an HS256 token and returns its subject.
func ParseToken(tokenString, secret string) (string, error) {
	if secret == "" {
		return "", ErrInvalidToken
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// UserID returns the authenticated caller, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.StatusOrDefault(), appErr.ToHTTPError())
}
