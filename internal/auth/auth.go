// Package auth verifies bearer tokens issued by the external identity
// provider and exposes the authenticated user ID to handlers.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	httperr "github.com/JosephJoshua/posad/internal/core/errors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "posad.user_id"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid bearer token")
	errMissingSub   = errors.New("token has no subject")
)

// Authenticator validates HS256 JWTs. The subject claim is the user ID.
type Authenticator struct {
	secret []byte
	issuer string
}

// NewAuthenticator panics on an empty secret.
func NewAuthenticator(secret, issuer string) *Authenticator {
	if secret == "" {
		panic("auth: secret must not be empty")
	}
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

// Middleware rejects requests without a valid bearer token and stores the
// token subject for UserID.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := a.verify(c.GetHeader("Authorization"))
		if err != nil {
			slog.Warn("[Auth] Rejected request", "path", c.FullPath(), "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.ErrorResponse{
				ErrorType: httperr.HttpUnauthorizedError,
				Message:   "authentication required",
			})
			return
		}

		c.Set(userIDKey, uid)
		c.Next()
	}
}

func (a *Authenticator) verify(header string) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return "", errMissingToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", errMissingSub
	}
	return claims.Subject, nil
}

// UserID returns the authenticated user ID set by Middleware.
func UserID(c *gin.Context) (string, bool) {
	uid := c.GetString(userIDKey)
	return uid, uid != ""
}

// SetUserID stores uid as the authenticated user. Used by tests and by
// trusted internal callers.
func SetUserID(c *gin.Context, uid string) {
	c.Set(userIDKey, uid)
}
