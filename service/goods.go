package service

import (
	"context"
	"errors"
	"strconv"

	"minimall/dao"
	"minimall/dao/cache"
	"minimall/models"
	"minimall/pkg/log"
	"minimall/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IGoodsService = (*GoodsService)(nil)

type IGoodsService interface {
	Categories(ctx context.Context) ([]*models.Category, error)
	Brands(ctx context.Context) ([]*models.Brand, error)
	ListByCate(ctx context.Context, cateID uint64, cursor uint64, pageSize int) (*types.ListGoodsResponse, error)
	ListByBrand(ctx context.Context, brandID uint64, cursor uint64, pageSize int) (*types.ListGoodsResponse, error)
	Detail(ctx context.Context, goodsID uint64) (*types.GoodsDetail, error)
	Rank(ctx context.Context, n int64) ([]*types.RankItem, error)
	Appraisals(ctx context.Context, goodsID uint64) ([]*models.Appraisal, error)
}

// GoodsService 面向顾客的目录浏览
type GoodsService struct {
	CategoryDAO  *dao.Category
	BrandDAO     *dao.Brand
	GoodsDAO     *dao.Goods
	ImageDAO     *dao.Image
	AppraisalDAO *dao.Appraisal
	Cache        *cache.GoodsCache
}

func (s *GoodsService) Categories(ctx context.Context) ([]*models.Category, error) {
	return s.CategoryDAO.ListAll(ctx)
}

func (s *GoodsService) Brands(ctx context.Context) ([]*models.Brand, error) {
	return s.BrandDAO.ListAll(ctx)
}

func (s *GoodsService) ListByCate(ctx context.Context, cateID uint64, cursor uint64, pageSize int) (*types.ListGoodsResponse, error) {
	if _, err := s.CategoryDAO.FindByID(ctx, cateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCateNotFound
		}
		return nil, err
	}
	return s.list(ctx, func(limit int) ([]*models.Goods, error) {
		return s.GoodsDAO.ListByCate(ctx, cateID, cursor, limit)
	}, pageSize)
}

func (s *GoodsService) ListByBrand(ctx context.Context, brandID uint64, cursor uint64, pageSize int) (*types.ListGoodsResponse, error) {
	if _, err := s.BrandDAO.FindByID(ctx, brandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return s.list(ctx, func(limit int) ([]*models.Goods, error) {
		return s.GoodsDAO.ListByBrand(ctx, brandID, cursor, limit)
	}, pageSize)
}

// list 游标分页通用逻辑，多查一条判断 hasMore
func (s *GoodsService) list(ctx context.Context, query func(limit int) ([]*models.Goods, error), pageSize int) (*types.ListGoodsResponse, error) {
	if pageSize <= 0 || pageSize > 20 {
		pageSize = 10
	}

	goods, err := query(pageSize + 1)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(goods) > pageSize {
		hasMore = true
		goods = goods[:pageSize]
	}

	resp := &types.ListGoodsResponse{
		Items:   make([]*types.GoodsListItem, 0, len(goods)),
		HasMore: hasMore,
	}
	for _, g := range goods {
		resp.Items = append(resp.Items, &types.GoodsListItem{
			ID:        g.ID,
			Name:      g.Name,
			SalePrice: g.SalePrice,
			Stock:     g.Stock,
			SalesNum:  g.SalesNum,
			CoverKey:  g.CoverKey,
		})
	}
	if len(goods) > 0 {
		resp.NextCursor = goods[len(goods)-1].ID
	}
	return resp, nil
}

// Detail 商品详情，整页结构走 redis 缓存
func (s *GoodsService) Detail(ctx context.Context, goodsID uint64) (*types.GoodsDetail, error) {
	cached, err := s.Cache.GetDetail(ctx, goodsID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		// 缓存故障降级直查数据库
		log.L.Warn("goods cache read failed", zap.Uint64("goods_id", goodsID), zap.Error(err))
	}

	goods, err := s.GoodsDAO.FindByID(ctx, goodsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoodsNotFound
		}
		return nil, err
	}

	detail := &types.GoodsDetail{
		ID:          goods.ID,
		Name:        goods.Name,
		CateID:      goods.CateID,
		BrandID:     goods.BrandID,
		SalePrice:   goods.SalePrice,
		Stock:       goods.Stock,
		SalesNum:    goods.SalesNum,
		Description: goods.Description,
		CoverKey:    goods.CoverKey,
		ImageKeys:   []string{},
	}

	if cate, err := s.CategoryDAO.FindByID(ctx, goods.CateID); err == nil {
		detail.CateName = cate.Name
	}
	if brand, err := s.BrandDAO.FindByID(ctx, goods.BrandID); err == nil {
		detail.BrandName = brand.Name
	}
	if images, err := s.ImageDAO.ListByGoods(ctx, goods.ID); err == nil {
		for _, img := range images {
			detail.ImageKeys = append(detail.ImageKeys, img.OssKey)
		}
	}

	_ = s.Cache.SetDetail(ctx, goodsID, detail)
	return detail, nil
}

func (s *GoodsService) Rank(ctx context.Context, n int64) ([]*types.RankItem, error) {
	if n <= 0 || n > 50 {
		n = 10
	}
	zs, err := s.Cache.TopSales(ctx, n)
	if err != nil {
		return nil, err
	}
	items := make([]*types.RankItem, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		items = append(items, &types.RankItem{GoodsID: id, SalesNum: z.Score})
	}
	return items, nil
}

func (s *GoodsService) Appraisals(ctx context.Context, goodsID uint64) ([]*models.Appraisal, error) {
	return s.AppraisalDAO.ListByGoods(ctx, goodsID, 50)
}
