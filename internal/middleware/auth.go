package middleware

import (
	"net/http"
	"strings"

	"errorswag/internal/services"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the context key holding the decoded token payload.
const CurrentUserKey = "currentUser"

// Auth decodes the bearer token and stores its payload in the context.
// The token is accepted from the X-Access-Token, Authorization or Token
// headers, or a :token route param (used by the email verification link).
func Auth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Access-Token")
		if token == "" {
			token = c.GetHeader("Authorization")
		}
		if token == "" {
			token = c.GetHeader("Token")
		}
		if token == "" {
			token = c.Param("token")
		}
		token = strings.TrimPrefix(token, "Bearer ")

		if token == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid access token"})
			return
		}

		payload, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set(CurrentUserKey, payload)
		c.Next()
	}
}

// CurrentUser returns the authenticated identity, or nil outside an Auth
// chain.
func CurrentUser(c *gin.Context) *services.TokenPayload {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	payload, _ := v.(*services.TokenPayload)
	return payload
}
