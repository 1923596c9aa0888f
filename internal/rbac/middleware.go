package rbac

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/auth"
)

// RequireStore enforces the multi-store invariant: store_id must exist in context.
// This does not validate membership; that belongs to the authorization layer once persistence exists.
func RequireStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := auth.StoreID(c.Request.Context())
		if err != nil || sid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "store_id required"})
			return
		}
		c.Next()
	}
}

// RequireAnyRole allows access if the caller has any of the provided roles.
// Rules:
// - super_admin bypasses all checks
// - store isolation is enforced via RequireStore (use it in the chain)
func RequireAnyRole(allowed ...string) gin.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, err := auth.Role(c.Request.Context())
		if err != nil || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "role required"})
			return
		}

		// super_admin bypasses all
		if IsSuperAdmin(role) {
			c.Next()
			return
		}

		if _, ok := allowedSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
