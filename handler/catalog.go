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

// Catalog 目录维护接口，privilege 100 专用
type Catalog struct {
	Config         *config.Config
	CatalogService service.ICatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	admin := r.Group("/v1/admin")
	admin.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)), middleware.RequirePrivilege(100))
	admin.POST("/categories", context.Wrap(h.CreateCategory))
	admin.POST("/brands", context.Wrap(h.CreateBrand))

	goods := admin.Group("/goods")
	goods.POST("", context.Wrap(h.CreateGoods)) // multipart，封面图随表单一起传
	goods.PUT("/:id", context.Wrap(h.EditGoods))
	goods.DELETE("/:id", context.Wrap(h.DeleteGoods))
	goods.POST("/:id/cover", context.Wrap(h.ReplaceCover))
	goods.POST("/:id/images", context.Wrap(h.AddImage))
	goods.DELETE("/:id/images/:image_id", context.Wrap(h.DeleteImage))
}

func (h *Catalog) CreateCategory(c *gin.Context) error {
	var req types.CreateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	cate, err := h.CatalogService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, cate)
	return nil
}

func (h *Catalog) CreateBrand(c *gin.Context) error {
	var req types.CreateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	brand, err := h.CatalogService.CreateBrand(c.Request.Context(), req.Name)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, brand)
	return nil
}

func (h *Catalog) CreateGoods(c *gin.Context) error {
	var req types.CreateGoodsRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	// 封面图可选，不传则用空封面
	cover, err := c.FormFile("cover")
	if err != nil {
		cover = nil
	}

	goods, err := h.CatalogService.CreateGoods(c.Request.Context(), &req, cover)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, goods)
	return nil
}

func (h *Catalog) EditGoods(c *gin.Context) error {
	goodsID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req types.EditGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.CatalogService.EditGoods(c.Request.Context(), goodsID, &req); err != nil {
		return wrapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Catalog) DeleteGoods(c *gin.Context) error {
	goodsID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.CatalogService.DeleteGoods(c.Request.Context(), goodsID); err != nil {
		return wrapErr(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Catalog) ReplaceCover(c *gin.Context) error {
	goodsID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	cover, err := c.FormFile("cover")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少 cover 文件")
	}

	key, err := h.CatalogService.ReplaceCover(c.Request.Context(), goodsID, cover)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, gin.H{"cover_key": key})
	return nil
}

func (h *Catalog) AddImage(c *gin.Context) error {
	goodsID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	file, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少 image 文件")
	}

	img, err := h.CatalogService.AddImage(c.Request.Context(), goodsID, file)
	if err != nil {
		return wrapErr(err)
	}
	response.Success(c, img)
	return nil
}

func (h *Catalog) DeleteImage(c *gin.Context) error {
	goodsID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	imageID, err := parseUintParam(c, "image_id")
	if err != nil {
		return err
	}

	if err := h.CatalogService.DeleteImage(c.Request.Context(), goodsID, imageID); err != nil {
		return wrapErr(err)
	}
	response.Success(c, nil)
	return nil
}
