package service

import (
	"context"
	"encoding/json"
	"errors"

	"minimall/dao"
	"minimall/models"
	"minimall/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IStocktakeService = (*StocktakeService)(nil)

type IStocktakeService interface {
	Submit(ctx context.Context, adminID string, req *types.SubmitStocktakeRequest) (*types.StocktakeItem, error)
	ListByGoods(ctx context.Context, goodsID uint64) ([]*types.StocktakeItem, error)
}

// StocktakeService 库存盘点。记录只追加，不回写商品计数器，
// 差异由目录管理员通过改库存处理。
type StocktakeService struct {
	Db           *gorm.DB
	StocktakeDAO *dao.Stocktake
}

func (s *StocktakeService) Submit(ctx context.Context, adminID string, req *types.SubmitStocktakeRequest) (*types.StocktakeItem, error) {
	var record *models.Stocktake
	err := s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		goods, err := dao.NewGoods(tx).FindByIDForUpdate(ctx, req.GoodsID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoodsNotFound
			}
			return err
		}

		snapshot, err := json.Marshal(map[string]uint32{
			"stock":      goods.Stock,
			"real_stock": goods.RealStock,
			"sales_num":  goods.SalesNum,
		})
		if err != nil {
			return err
		}

		record = &models.Stocktake{
			GoodsID:   req.GoodsID,
			AdminID:   adminID,
			Counted:   req.Counted,
			RealStock: goods.RealStock,
			Diff:      int64(req.Counted) - int64(goods.RealStock),
			Snapshot:  datatypes.JSON(snapshot),
		}
		return dao.NewStocktake(tx).Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return toStocktakeItem(record), nil
}

func (s *StocktakeService) ListByGoods(ctx context.Context, goodsID uint64) ([]*types.StocktakeItem, error) {
	records, err := s.StocktakeDAO.ListByGoods(ctx, goodsID, 50)
	if err != nil {
		return nil, err
	}
	items := make([]*types.StocktakeItem, 0, len(records))
	for _, r := range records {
		items = append(items, toStocktakeItem(r))
	}
	return items, nil
}

func toStocktakeItem(m *models.Stocktake) *types.StocktakeItem {
	return &types.StocktakeItem{
		ID:        m.ID,
		GoodsID:   m.GoodsID,
		AdminID:   m.AdminID,
		Counted:   m.Counted,
		RealStock: m.RealStock,
		Diff:      m.Diff,
	}
}
