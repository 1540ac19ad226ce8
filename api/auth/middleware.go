// Package auth guards protected routes with bearer tokens.
package auth

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextClientClaims is the key used to store token claims in the Gin context.
	ContextClientClaims = "clientClaims"
)

// Authoriz rejects requests without a valid bearer token issued by ts.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		claims, err := ts.Decode(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextClientClaims, claims)
		c.Next()
	}
}

// Client returns the client claim of an authorized request, if any.
func Client(c *gin.Context) string {
	claims, ok := c.Get(ContextClientClaims)
	if !ok {
		return ""
	}
	m, ok := claims.(map[string]any)
	if !ok {
		return ""
	}
	name, _ := m["client"].(string)
	return name
}
