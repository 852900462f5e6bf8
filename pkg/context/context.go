package context

import (
	"errors"
	"net/http"

	"minimall/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID    = "user_id"
	CtxKind      = "kind"
	CtxPrivilege = "privilege"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return "", errors.New("user_id 不存在")
	}

	uid, ok := v.(string)
	if !ok {
		return "", errors.New("user_id 类型错误")
	}

	return uid, nil
}

func GetPrivilege(c *gin.Context) int {
	return c.GetInt(CtxPrivilege)
}
