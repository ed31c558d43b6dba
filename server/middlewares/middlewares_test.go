package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func newAuthedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	os.Setenv("JWT_SECRET", "test-secret")
	Setup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWT())
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sub": c.Request.Header.Get("sub")})
	})
	return router
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTValidToken(t *testing.T) {
	router := newAuthedRouter(t)
	token := signToken(t, "test-secret", jwt.MapClaims{"sub": "user-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami?token="+token, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "user-1")
}

func TestJWTBearerHeader(t *testing.T) {
	router := newAuthedRouter(t)
	token := signToken(t, "test-secret", jwt.MapClaims{"sub": "user-2"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "user-2")
}

func TestJWTMissingToken(t *testing.T) {
	router := newAuthedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTWrongSignature(t *testing.T) {
	router := newAuthedRouter(t)
	token := signToken(t, "some-other-secret", jwt.MapClaims{"sub": "user-3"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami?token="+token, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMissingSubject(t *testing.T) {
	router := newAuthedRouter(t)
	token := signToken(t, "test-secret", jwt.MapClaims{"aud": "unibond"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami?token="+token, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// A client supplied sub header must never survive into the request; only
// the token's subject is trusted.
func TestJWTOverwritesSpoofedSubHeader(t *testing.T) {
	router := newAuthedRouter(t)
	token := signToken(t, "test-secret", jwt.MapClaims{"sub": "real-user"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami?token="+token, nil)
	req.Header.Set("sub", "spoofed-user")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "real-user")
	require.NotContains(t, w.Body.String(), "spoofed-user")
}
