package middleware

import (
	"net/http"
	"strings"

	"minimall/pkg/context"
	"minimall/pkg/jwt"
	"minimall/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxKind, claims.Kind)
		c.Set(context.CtxPrivilege, claims.Privilege)

		c.Next()
	}
}

// CustomerOnly 顾客侧接口，管理员 token 不可用
func CustomerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(context.CtxKind) != jwt.KindCustomer {
			response.Abort(c, http.StatusForbidden, "仅顾客可访问")
			return
		}
		c.Next()
	}
}

// RequirePrivilege 管理员接口门槛，发货 50、目录维护 100
func RequirePrivilege(min int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(context.CtxKind) != jwt.KindAdmin {
			response.Abort(c, http.StatusForbidden, "仅管理员可访问")
			return
		}
		if c.GetInt(context.CtxPrivilege) < min {
			response.Abort(c, http.StatusForbidden, "权限不足")
			return
		}
		c.Next()
	}
}
