package handler

import (
	"net/http"

	"minimall/config"
	"minimall/middleware"
	"minimall/pkg/context"
	"minimall/pkg/response"
	"minimall/service"

	"github.com/gin-gonic/gin"
)

// Fulfillment 发货管理员接口，认领后发货，privilege 50 起
type Fulfillment struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (h *Fulfillment) RegisterRouter(r gin.IRouter) {
	admin := r.Group("/v1/admin/orders")
	admin.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)), middleware.RequirePrivilege(50))
	admin.GET("/unclaimed", context.Wrap(h.Unclaimed))
	admin.GET("/mine", context.Wrap(h.Mine))
	admin.POST("/:id/claim", context.Wrap(h.Claim))
	admin.POST("/:id/ship", context.Wrap(h.Ship))
}

func (h *Fulfillment) Unclaimed(c *gin.Context) error {
	items, err := h.OrderService.ListUnclaimed(c.Request.Context())
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Fulfillment) Mine(c *gin.Context) error {
	adminID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	items, err := h.OrderService.ListClaimed(c.Request.Context(), adminID)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Fulfillment) Claim(c *gin.Context) error {
	adminID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.OrderService.Claim(c.Request.Context(), orderID, adminID); err != nil {
		return wrapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Fulfillment) Ship(c *gin.Context) error {
	adminID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.OrderService.Ship(c.Request.Context(), orderID, adminID); err != nil {
		return wrapErr(err)
	}
	middleware.CountOrderTransition("shipped")
	response.Success(c, nil)
	return nil
}
