package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// BearerAuth guards a route group with a bearer token.
//
// When TOKEN_SECRET is set, requests need an Authorization header with
// a valid, unexpired HS256 token signed with that secret. When it is
// unset, the middleware does nothing so that local setups work without
// configuration.
func BearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret, ok := os.LookupEnv("TOKEN_SECRET")
		if !ok || secret == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "a bearer token is required to use this API",
			})
			return
		}

		_, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "the bearer token is invalid or expired",
			})
			return
		}

		c.Next()
	}
}
