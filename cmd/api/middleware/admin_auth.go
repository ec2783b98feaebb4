package middleware

import (
	"github.com/gin-gonic/gin"

	"blog-admin/cmd/api/auth"
	"blog-admin/config"
)

const (
	ContextKeySubject = "admin_sub"
	ContextKeyRole    = "role"
)

// AdminAuthMiddleware 는 요청 헤더의 JWT를 검증하고, role이 'admin'인지 확인합니다.
func AdminAuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		subject, role, err := jwtManager.Parse(token)
		if err != nil {
			config.WarnWithFields("token parse error", config.Fields{"error": err.Error(), "path": c.Request.URL.Path})
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if role != auth.RoleAdmin {
			config.WarnWithFields("access denied", config.Fields{"sub": subject, "role": role})
			auth.AbortWithForbidden(c)
			return
		}

		c.Set(ContextKeySubject, subject)
		c.Set(ContextKeyRole, role)

		c.Next()
	}
}
