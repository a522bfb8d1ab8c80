package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxOwnerUID = "owner_uid"
)

// OwnerUID extracts the authenticated owner id from the Gin context.
// This is set by middleware.RequireUser.
func OwnerUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxOwnerUID))
}
