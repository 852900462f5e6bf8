package handler

import (
	"net/http"

	"minimall/config"
	"minimall/middleware"
	"minimall/pkg/context"
	"minimall/pkg/response"
	"minimall/service"
	"minimall/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/v1/auth")
	auth.POST("/register", context.Wrap(h.Register)) // 顾客注册
	auth.POST("/login", context.Wrap(h.Login))

	admin := r.Group("/v1/admin/auth")
	admin.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)), middleware.RequirePrivilege(100))
	admin.POST("/register", context.Wrap(h.RegisterAdmin))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.AuthService.RegisterCustomer(c.Request.Context(), &req)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, gin.H{"id": customer.ID})
	return nil
}

func (h *Auth) RegisterAdmin(c *gin.Context) error {
	var req types.AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	admin, err := h.AuthService.RegisterAdmin(c.Request.Context(), context.GetPrivilege(c), &req)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, gin.H{"id": admin.ID})
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	token, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, token)
	return nil
}
