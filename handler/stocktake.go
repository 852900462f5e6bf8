package handler

import (
	"net/http"
	"strconv"

	"minimall/config"
	"minimall/middleware"
	"minimall/pkg/context"
	"minimall/pkg/response"
	"minimall/service"
	"minimall/types"

	"github.com/gin-gonic/gin"
)

// Stocktake 库存盘点接口，发货管理员即可提交
type Stocktake struct {
	Config           *config.Config
	StocktakeService service.IStocktakeService
}

func (h *Stocktake) RegisterRouter(r gin.IRouter) {
	admin := r.Group("/v1/admin/stocktakes")
	admin.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)), middleware.RequirePrivilege(50))
	admin.POST("", context.Wrap(h.Submit))
	admin.GET("", context.Wrap(h.List))
}

func (h *Stocktake) Submit(c *gin.Context) error {
	adminID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.SubmitStocktakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	item, err := h.StocktakeService.Submit(c.Request.Context(), adminID, &req)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, item)
	return nil
}

func (h *Stocktake) List(c *gin.Context) error {
	goodsID, err := strconv.ParseUint(c.Query("goods_id"), 10, 64)
	if err != nil || goodsID == 0 {
		return response.NewError(http.StatusBadRequest, "goods_id 参数错误")
	}

	items, err := h.StocktakeService.ListByGoods(c.Request.Context(), goodsID)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, items)
	return nil
}
