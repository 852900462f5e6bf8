package service

import (
	"context"
	"errors"
	"math"
	"mime/multipart"

	"minimall/dao"
	"minimall/dao/cache"
	"minimall/models"
	"minimall/pkg/log"
	"minimall/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNameExists     = errors.New("该名称已存在")
	ErrCateNotFound   = errors.New("类别不存在")
	ErrBrandNotFound  = errors.New("品牌不存在")
	ErrTooManyImages  = errors.New("展示图数量已达上限")
	ErrImageNotFound  = errors.New("图片不存在")
	ErrStockUnderflow = errors.New("实物库存不足，无法下调库存")
)

const maxGalleryImages = 8

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	CreateBrand(ctx context.Context, name string) (*models.Brand, error)
	CreateGoods(ctx context.Context, req *types.CreateGoodsRequest, cover *multipart.FileHeader) (*models.Goods, error)
	EditGoods(ctx context.Context, goodsID uint64, req *types.EditGoodsRequest) error
	DeleteGoods(ctx context.Context, goodsID uint64) error
	ReplaceCover(ctx context.Context, goodsID uint64, cover *multipart.FileHeader) (string, error)
	AddImage(ctx context.Context, goodsID uint64, file *multipart.FileHeader) (*models.Image, error)
	DeleteImage(ctx context.Context, goodsID, imageID uint64) error
}

// CatalogService 目录维护，privilege 100 的管理员专用
type CatalogService struct {
	Db          *gorm.DB
	CategoryDAO *dao.Category
	BrandDAO    *dao.Brand
	GoodsDAO    *dao.Goods
	ImageDAO    *dao.Image
	Cache       *cache.GoodsCache
	Oss         IOssService
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	exist, err := s.CategoryDAO.IsNameExist(ctx, name)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, ErrNameExists
	}
	cate := &models.Category{Name: name}
	if err := s.CategoryDAO.Create(ctx, cate); err != nil {
		return nil, err
	}
	return cate, nil
}

func (s *CatalogService) CreateBrand(ctx context.Context, name string) (*models.Brand, error) {
	exist, err := s.BrandDAO.IsNameExist(ctx, name)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, ErrNameExists
	}
	brand := &models.Brand{Name: name}
	if err := s.BrandDAO.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// yuanToCents 金额入库统一为分，避免浮点参与后续运算
func yuanToCents(yuan float64) uint32 {
	return uint32(math.Round(yuan * 100))
}

func (s *CatalogService) CreateGoods(ctx context.Context, req *types.CreateGoodsRequest, cover *multipart.FileHeader) (*models.Goods, error) {
	if _, err := s.CategoryDAO.FindByID(ctx, req.CateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCateNotFound
		}
		return nil, err
	}
	if _, err := s.BrandDAO.FindByID(ctx, req.BrandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}

	var coverKey string
	if cover != nil {
		key, err := s.Oss.UploadImage(ctx, cover, "goods/cover")
		if err != nil {
			return nil, err
		}
		coverKey = key
	}

	goods := &models.Goods{
		Name:          req.Name,
		CateID:        req.CateID,
		BrandID:       req.BrandID,
		PurchasePrice: yuanToCents(req.PurchasePrice),
		SalePrice:     yuanToCents(req.SalePrice),
		Stock:         req.Stock,
		RealStock:     req.Stock, // 上架时两个计数器一致
		Description:   req.Description,
		CoverKey:      coverKey,
	}
	if err := s.GoodsDAO.Create(ctx, goods); err != nil {
		return nil, err
	}
	return goods, nil
}

// EditGoods 修改商品。库存按差额同步调整 real_stock，保持
// 已支付未发货的数量缺口不变。
func (s *CatalogService) EditGoods(ctx context.Context, goodsID uint64, req *types.EditGoodsRequest) error {
	err := s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		goodsDAO := dao.NewGoods(tx)
		goods, err := goodsDAO.FindByIDForUpdate(ctx, goodsID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoodsNotFound
			}
			return err
		}

		delta := int64(req.Stock) - int64(goods.Stock)
		newRealStock := int64(goods.RealStock) + delta
		if newRealStock < 0 {
			return ErrStockUnderflow
		}

		return goodsDAO.UpdateFields(ctx, goodsID, map[string]interface{}{
			"name":           req.Name,
			"purchase_price": yuanToCents(req.PurchasePrice),
			"sale_price":     yuanToCents(req.SalePrice),
			"stock":          req.Stock,
			"real_stock":     newRealStock,
			"description":    req.Description,
		})
	})
	if err != nil {
		return err
	}

	if err := s.Cache.DelDetail(ctx, goodsID); err != nil {
		log.L.Warn("invalidate goods cache failed", zap.Uint64("goods_id", goodsID), zap.Error(err))
	}
	return nil
}

// DeleteGoods 下架商品并级联清理展示图。历史订单保留悬空的
// goods_id，后续支付与评价按已下架处理。
func (s *CatalogService) DeleteGoods(ctx context.Context, goodsID uint64) error {
	goods, err := s.GoodsDAO.FindByID(ctx, goodsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGoodsNotFound
		}
		return err
	}

	images, err := s.ImageDAO.ListByGoods(ctx, goodsID)
	if err != nil {
		return err
	}

	err = s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := dao.NewImage(tx).DeleteByGoods(ctx, goodsID); err != nil {
			return err
		}
		return dao.NewGoods(tx).DeleteByID(ctx, goodsID)
	})
	if err != nil {
		return err
	}

	// OSS 与缓存清理尽力而为，失败不影响下架结果
	if goods.CoverKey != "" {
		_ = s.Oss.Delete(ctx, goods.CoverKey)
	}
	for _, img := range images {
		_ = s.Oss.Delete(ctx, img.OssKey)
	}
	if err := s.Cache.DelDetail(ctx, goodsID); err != nil {
		log.L.Warn("invalidate goods cache failed", zap.Uint64("goods_id", goodsID), zap.Error(err))
	}
	if err := s.Cache.RemoveFromRank(ctx, goodsID); err != nil {
		log.L.Warn("remove goods from rank failed", zap.Uint64("goods_id", goodsID), zap.Error(err))
	}
	return nil
}

func (s *CatalogService) ReplaceCover(ctx context.Context, goodsID uint64, cover *multipart.FileHeader) (string, error) {
	goods, err := s.GoodsDAO.FindByID(ctx, goodsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrGoodsNotFound
		}
		return "", err
	}

	key, err := s.Oss.UploadImage(ctx, cover, "goods/cover")
	if err != nil {
		return "", err
	}
	if err := s.GoodsDAO.UpdateFields(ctx, goodsID, map[string]interface{}{"cover_key": key}); err != nil {
		return "", err
	}

	if goods.CoverKey != "" {
		_ = s.Oss.Delete(ctx, goods.CoverKey)
	}
	if err := s.Cache.DelDetail(ctx, goodsID); err != nil {
		log.L.Warn("invalidate goods cache failed", zap.Uint64("goods_id", goodsID), zap.Error(err))
	}
	return key, nil
}

func (s *CatalogService) AddImage(ctx context.Context, goodsID uint64, file *multipart.FileHeader) (*models.Image, error) {
	if _, err := s.GoodsDAO.FindByID(ctx, goodsID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoodsNotFound
		}
		return nil, err
	}

	images, err := s.ImageDAO.ListByGoods(ctx, goodsID)
	if err != nil {
		return nil, err
	}
	if len(images) >= maxGalleryImages {
		return nil, ErrTooManyImages
	}

	key, err := s.Oss.UploadImage(ctx, file, "goods/gallery")
	if err != nil {
		return nil, err
	}
	img := &models.Image{GoodsID: goodsID, OssKey: key}
	if err := s.ImageDAO.Create(ctx, img); err != nil {
		_ = s.Oss.Delete(ctx, key)
		return nil, err
	}

	if err := s.Cache.DelDetail(ctx, goodsID); err != nil {
		log.L.Warn("invalidate goods cache failed", zap.Uint64("goods_id", goodsID), zap.Error(err))
	}
	return img, nil
}

func (s *CatalogService) DeleteImage(ctx context.Context, goodsID, imageID uint64) error {
	img, err := s.ImageDAO.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	if img.GoodsID != goodsID {
		return ErrImageNotFound
	}

	if err := s.ImageDAO.DeleteByID(ctx, imageID); err != nil {
		return err
	}

	_ = s.Oss.Delete(ctx, img.OssKey)
	if err := s.Cache.DelDetail(ctx, goodsID); err != nil {
		log.L.Warn("invalidate goods cache failed", zap.Uint64("goods_id", goodsID), zap.Error(err))
	}
	return nil
}
