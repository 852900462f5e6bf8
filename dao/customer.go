package dao

import (
	"context"

	"minimall/models"

	"gorm.io/gorm"
)

type Customer struct {
	Repo[models.Customer]
}

func NewCustomer(db *gorm.DB) *Customer {
	return &Customer{Repo: NewRepo[models.Customer](db)}
}

func (c *Customer) IsIDExist(ctx context.Context, id string) bool {
	var count int64
	c.Db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Count(&count)
	return count > 0
}
