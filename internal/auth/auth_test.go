package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newRouter(a *Authenticator) *gin.Engine {
	r := gin.New()
	r.GET("/me", a.Middleware(), func(c *gin.Context) {
		uid, _ := UserID(c)
		c.String(http.StatusOK, uid)
	})
	return r
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	valid := jwt.RegisteredClaims{
		Subject:   "uid-1",
		Issuer:    "posad-idp",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noSubject := valid
	noSubject.Subject = ""
	otherIssuer := valid
	otherIssuer.Issuer = "someone-else"

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + signToken(t, testSecret, valid), wantStatus: http.StatusOK, wantBody: "uid-1"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signToken(t, "other", valid), wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + signToken(t, testSecret, expired), wantStatus: http.StatusUnauthorized},
		{name: "no subject", header: "Bearer " + signToken(t, testSecret, noSubject), wantStatus: http.StatusUnauthorized},
		{name: "issuer mismatch", header: "Bearer " + signToken(t, testSecret, otherIssuer), wantStatus: http.StatusUnauthorized},
	}

	r := newRouter(NewAuthenticator(testSecret, "posad-idp"))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			require.Equal(t, tc.wantStatus, resp.Code)
			if tc.wantBody != "" {
				require.Equal(t, tc.wantBody, resp.Body.String())
			}
		})
	}
}

func TestMiddleware_RejectsNoneAlgorithm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "uid-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	newRouter(NewAuthenticator(testSecret, "")).ServeHTTP(resp, req)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestNewAuthenticator_PanicsOnEmptySecret(t *testing.T) {
	require.Panics(t, func() { NewAuthenticator("", "") })
}
