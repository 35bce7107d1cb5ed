package utils

import "github.com/gin-gonic/gin"

const userIDKey = "userId"

func SetCurrentUserID(c *gin.Context, id uint) {
	c.Set(userIDKey, id)
}

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(userIDKey)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}
