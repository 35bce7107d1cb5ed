package middlewares

import (
	"strconv"
	"strings"

	"scoup/configs"
	"scoup/pkg/resp"
	"scoup/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller's user id. The token comes from the
// Authorization header or, for WebSocket upgrades, the token query param.
// With TrustUserHeader a gateway-set userId header is accepted as well.
func AuthMiddleware(cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := bearerToken(c); tokenStr != "" {
			claims, err := utils.ParseToken(tokenStr, cfg.JWTSecret)
			if err != nil {
				resp.Unauthorized(c, "invalid token")
				c.Abort()
				return
			}
			utils.SetCurrentUserID(c, claims.UserID)
			c.Next()
			return
		}

		if cfg.TrustUserHeader {
			if h := c.GetHeader("userId"); h != "" {
				id, err := strconv.ParseUint(strings.TrimSpace(h), 10, 64)
				if err != nil || id == 0 {
					resp.Unauthorized(c, "invalid userId header")
					c.Abort()
					return
				}
				utils.SetCurrentUserID(c, uint(id))
				c.Next()
				return
			}
		}

		resp.Unauthorized(c, "missing or invalid token")
		c.Abort()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return c.Query("token")
}
