package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"splitnest/pkg"
)

// UserIDHeader carries the authenticated member identity. Token validation
// happens upstream (API gateway); by the time a request reaches this
// service the header is trusted.
const UserIDHeader = "X-User-ID"

const contextUserIDKey = "user_id"

var errMissingIdentity = pkg.NewDomainErrorSimple("MISSING_IDENTITY", "Missing user identity", http.StatusUnauthorized)

// Identity requires the user identity header on every request and stashes
// it in the gin context for handlers.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}
		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the identity set by Identity.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}
