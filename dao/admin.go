package dao

import (
	"context"

	"minimall/models"

	"gorm.io/gorm"
)

type Admin struct {
	Repo[models.Admin]
}

func NewAdmin(db *gorm.DB) *Admin {
	return &Admin{Repo: NewRepo[models.Admin](db)}
}

func (a *Admin) IsIDExist(ctx context.Context, id string) bool {
	var count int64
	a.Db.WithContext(ctx).Model(&models.Admin{}).Where("id = ?", id).Count(&count)
	return count > 0
}
