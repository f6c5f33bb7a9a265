package middleware

import (
	"context"
	"net/http"
	"strings"

	"homeconnect/utils"

	"github.com/gin-gonic/gin"
)

// Auth modes.
const (
	AuthModeNone     = "none"
	AuthModeJWT      = "jwt"
	AuthModeFirebase = "firebase"
)

// AuthMiddleware enforces caller identity according to the configured mode.
// Mode "none" is a passthrough for deployments where identity is enforced
// upstream. On success the caller id is stored in the gin context as
// "callerID".
func AuthMiddleware(mode string) gin.HandlerFunc {
	switch mode {
	case AuthModeJWT:
		return jwtAuth()
	case AuthModeFirebase:
		return firebaseAuth()
	default:
		return func(c *gin.Context) { c.Next() }
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "authentication required",
	})
}

func jwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthenticated(c)
			return
		}
		callerID, err := utils.ExtractIDFromToken(token)
		if err != nil || callerID == "" {
			abortUnauthenticated(c)
			return
		}
		c.Set("callerID", callerID)
		c.Next()
	}
}

func firebaseAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" || utils.FirebaseAuthClient == nil {
			abortUnauthenticated(c)
			return
		}
		decoded, err := utils.FirebaseAuthClient.VerifyIDToken(context.Background(), token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		c.Set("callerID", decoded.UID)
		c.Next()
	}
}
