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

type Address struct {
	Config         *config.Config
	AddressService service.IAddressService
}

func (h *Address) RegisterRouter(r gin.IRouter) {
	addr := r.Group("/v1/addresses")
	addr.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)), middleware.CustomerOnly())
	addr.POST("", context.Wrap(h.Add))
	addr.GET("", context.Wrap(h.List))
	addr.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Address) Add(c *gin.Context) error {
	customerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	address, err := h.AddressService.Add(c.Request.Context(), customerID, req.Addr)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, address)
	return nil
}

func (h *Address) List(c *gin.Context) error {
	customerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	items, err := h.AddressService.List(c.Request.Context(), customerID)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Address) Delete(c *gin.Context) error {
	customerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	addressID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.AddressService.Delete(c.Request.Context(), customerID, addressID); err != nil {
		return wrapErr(err)
	}
	response.Success(c, nil)
	return nil
}
