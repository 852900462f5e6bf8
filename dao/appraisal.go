package dao

import (
	"context"

	"minimall/models"

	"gorm.io/gorm"
)

type Appraisal struct {
	Repo[models.Appraisal]
}

func NewAppraisal(db *gorm.DB) *Appraisal {
	return &Appraisal{Repo: NewRepo[models.Appraisal](db)}
}

func (a *Appraisal) ListByGoods(ctx context.Context, goodsID uint64, limit int) ([]*models.Appraisal, error) {
	var items []*models.Appraisal
	err := a.Db.WithContext(ctx).Where("goods_id = ?", goodsID).
		Order("id desc").Limit(limit).Find(&items).Error
	return items, err
}
