package dao

import (
	"context"

	"minimall/models"

	"gorm.io/gorm"
)

type Stocktake struct {
	Repo[models.Stocktake]
}

func NewStocktake(db *gorm.DB) *Stocktake {
	return &Stocktake{Repo: NewRepo[models.Stocktake](db)}
}

func (s *Stocktake) ListByGoods(ctx context.Context, goodsID uint64, limit int) ([]*models.Stocktake, error) {
	var items []*models.Stocktake
	err := s.Db.WithContext(ctx).Where("goods_id = ?", goodsID).
		Order("id desc").Limit(limit).Find(&items).Error
	return items, err
}
