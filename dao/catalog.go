package dao

import (
	"context"

	"minimall/models"

	"gorm.io/gorm"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{Repo: NewRepo[models.Category](db)}
}

func (c *Category) ListAll(ctx context.Context) ([]*models.Category, error) {
	var items []*models.Category
	err := c.Db.WithContext(ctx).Order("id asc").Find(&items).Error
	return items, err
}

func (c *Category) IsNameExist(ctx context.Context, name string) (bool, error) {
	var count int64
	err := c.Db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

type Brand struct {
	Repo[models.Brand]
}

func NewBrand(db *gorm.DB) *Brand {
	return &Brand{Repo: NewRepo[models.Brand](db)}
}

func (b *Brand) ListAll(ctx context.Context) ([]*models.Brand, error) {
	var items []*models.Brand
	err := b.Db.WithContext(ctx).Order("id asc").Find(&items).Error
	return items, err
}

func (b *Brand) IsNameExist(ctx context.Context, name string) (bool, error) {
	var count int64
	err := b.Db.WithContext(ctx).Model(&models.Brand{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
