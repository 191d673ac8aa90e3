package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// userIDKey holds the authenticated citizen's account id.
const userIDKey = contextKey("userID")

// adminIDKey holds the authenticated administrator's account id.
const adminIDKey = contextKey("adminID")

// roleKey holds the authenticated principal's role claim.
const roleKey = contextKey("role")

// GetUserIDFromContext retrieves the authenticated citizen's id from the Gin
// context. It returns the id and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	return idFromContext(c, userIDKey)
}

// GetAdminIDFromContext retrieves the authenticated administrator's id from
// the Gin context.
func GetAdminIDFromContext(c *gin.Context) (int64, bool) {
	return idFromContext(c, adminIDKey)
}

func idFromContext(c *gin.Context, key contextKey) (int64, bool) {
	val := c.Request.Context().Value(key)
	if val == nil {
		return 0, false
	}
	switch v := val.(type) {
	case int64:
		return v, true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
