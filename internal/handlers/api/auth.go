package api

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
)

const adminKey = "admin"

// authenticate marks the request as admin when it carries the admin bearer
// token. It never rejects; the rotation service enforces the flag.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(adminKey, s.isAdmin(c.GetHeader("Authorization")))
		c.Next()
	}
}

func (s *Server) isAdmin(header string) bool {
	if s.adminToken == "" {
		return false
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(s.adminToken)) == 1
}

func admin(c *gin.Context) bool {
	return c.GetBool(adminKey)
}
