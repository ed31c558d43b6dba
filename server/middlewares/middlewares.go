package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/SandeepaDilakshana/UniBond/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

var (
	// jwtSecret signs and verifies session tokens issued by the auth
	// provider. Before any middleware runs, make sure Setup was called.
	jwtSecret []byte
)

// Setup initializes all package scoped variables that are needed to perform
// middleware functionalities. This function must be called before any
// middleware is used.
func Setup() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Abort directly if the signing secret isn't configured, which is
		// crucial for server side authorization.
		log.Fatal("JWT_SECRET must be set to validate session tokens")
	}
	jwtSecret = []byte(secret)
}

// JWT fetches the session token from the "token" query param or a bearer
// Authorization header, validates it, and stores the token's subject (the
// user id) in the request header field "sub". It rejects the request on
// token not provided or token invalid (wrong signature or expired).
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			auth := c.GetHeader("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				tokenString = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  "empty jwt token",
			})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  "invalid jwt token",
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		sub, _ := claims["sub"].(string)
		if !ok || sub == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  "jwt token missing subject",
			})
			c.Abort()
			return
		}

		// Successfully validated the jwt token, expose the subject (the
		// user's id) to handlers through the header field "sub".
		c.Request.Header.Del("token")
		c.Request.Header.Set("sub", sub)

		c.Next()
	}
}
