package middleware

import (
	"Pulseboard/internal/pkg/consts"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware 读取会话 Cookie，不存在或格式不对时分配新的会话 ID
func SessionMiddleware(cookieName string, maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
		}

		// 每次请求都续期 Cookie
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, sessionID, maxAge, "/", "", false, true)

		c.Set(consts.SessionIDKey, sessionID)
		c.Next()
	}
}
