package dao

import (
	"context"

	"minimall/models"

	"gorm.io/gorm"
)

type Image struct {
	Repo[models.Image]
}

func NewImage(db *gorm.DB) *Image {
	return &Image{Repo: NewRepo[models.Image](db)}
}

func (i *Image) ListByGoods(ctx context.Context, goodsID uint64) ([]*models.Image, error) {
	var items []*models.Image
	err := i.Db.WithContext(ctx).Where("goods_id = ?", goodsID).Order("id asc").Find(&items).Error
	return items, err
}

func (i *Image) DeleteByGoods(ctx context.Context, goodsID uint64) error {
	return i.Db.WithContext(ctx).Where("goods_id = ?", goodsID).Delete(&models.Image{}).Error
}
