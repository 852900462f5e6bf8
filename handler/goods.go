package handler

import (
	"net/http"
	"strconv"

	"minimall/pkg/context"
	"minimall/pkg/response"
	"minimall/service"

	"github.com/gin-gonic/gin"
)

// Goods 面向顾客的目录浏览接口，全部免登录
type Goods struct {
	GoodsService service.IGoodsService
}

func (h *Goods) RegisterRouter(r gin.IRouter) {
	goods := r.Group("/v1/goods")
	goods.GET("/categories", context.Wrap(h.Categories))
	goods.GET("/brands", context.Wrap(h.Brands))
	goods.GET("/cate/:id", context.Wrap(h.ListByCate))
	goods.GET("/brand/:id", context.Wrap(h.ListByBrand))
	goods.GET("/rank", context.Wrap(h.Rank))
	goods.GET("/:id", context.Wrap(h.Detail))
	goods.GET("/:id/appraisals", context.Wrap(h.Appraisals))
}

func parseUintParam(c *gin.Context, name string) (uint64, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 参数错误")
	}
	return v, nil
}

func parseCursor(c *gin.Context) (cursor uint64, pageSize int) {
	cursor, _ = strconv.ParseUint(c.Query("cursor"), 10, 64)
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return cursor, pageSize
}

func (h *Goods) Categories(c *gin.Context) error {
	items, err := h.GoodsService.Categories(c.Request.Context())
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Goods) Brands(c *gin.Context) error {
	items, err := h.GoodsService.Brands(c.Request.Context())
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Goods) ListByCate(c *gin.Context) error {
	cateID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	cursor, pageSize := parseCursor(c)

	resp, err := h.GoodsService.ListByCate(c.Request.Context(), cateID, cursor, pageSize)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Goods) ListByBrand(c *gin.Context) error {
	brandID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	cursor, pageSize := parseCursor(c)

	resp, err := h.GoodsService.ListByBrand(c.Request.Context(), brandID, cursor, pageSize)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Goods) Detail(c *gin.Context) error {
	goodsID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.GoodsService.Detail(c.Request.Context(), goodsID)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, detail)
	return nil
}

func (h *Goods) Rank(c *gin.Context) error {
	n, _ := strconv.ParseInt(c.DefaultQuery("n", "10"), 10, 64)
	items, err := h.GoodsService.Rank(c.Request.Context(), n)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, items)
	return nil
}

func (h *Goods) Appraisals(c *gin.Context) error {
	goodsID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.GoodsService.Appraisals(c.Request.Context(), goodsID)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, items)
	return nil
}
