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

// Order 顾客侧订单接口
type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	orders := r.Group("/v1/orders")
	orders.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)), middleware.CustomerOnly())
	orders.POST("", context.Wrap(h.Create))
	orders.GET("", context.Wrap(h.List))
	orders.POST("/:id/pay", context.Wrap(h.Pay))
	orders.POST("/:id/sign", context.Wrap(h.Sign))
	orders.POST("/:id/appraise", context.Wrap(h.Appraise))
	orders.DELETE("/:id", context.Wrap(h.Cancel))
}

func (h *Order) Create(c *gin.Context) error {
	customerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	order, err := h.OrderService.CreateOrder(c.Request.Context(), customerID, &req)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, gin.H{"id": order.ID, "order_sn": order.OrderSn, "cost": order.Cost})
	return nil
}

func (h *Order) List(c *gin.Context) error {
	customerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	cursor, pageSize := parseCursor(c)

	resp, err := h.OrderService.ListByCustomer(c.Request.Context(), customerID, cursor, pageSize)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Order) Pay(c *gin.Context) error {
	customerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.OrderService.Pay(c.Request.Context(), orderID, customerID)
	if err != nil {
		return wrapErr(err)
	}
	middleware.CountOrderTransition("paid")
	response.Success(c, gin.H{"id": order.ID, "status": order.Status, "pay_time": order.PayTime})
	return nil
}

func (h *Order) Sign(c *gin.Context) error {
	customerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.OrderService.Sign(c.Request.Context(), orderID, customerID); err != nil {
		return wrapErr(err)
	}
	middleware.CountOrderTransition("signed")
	response.Success(c, nil)
	return nil
}

func (h *Order) Appraise(c *gin.Context) error {
	customerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req types.AppraiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.OrderService.Appraise(c.Request.Context(), orderID, customerID, req.Score, req.Content); err != nil {
		return wrapErr(err)
	}
	middleware.CountOrderTransition("completed")
	response.Success(c, nil)
	return nil
}

func (h *Order) Cancel(c *gin.Context) error {
	customerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.OrderService.Cancel(c.Request.Context(), orderID, customerID); err != nil {
		return wrapErr(err)
	}
	response.Success(c, nil)
	return nil
}
