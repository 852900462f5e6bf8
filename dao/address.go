package dao

import (
	"context"

	"minimall/models"

	"gorm.io/gorm"
)

type Address struct {
	Repo[models.Address]
}

func NewAddress(db *gorm.DB) *Address {
	return &Address{Repo: NewRepo[models.Address](db)}
}

// FindOwned 按主键查收货地址并校验归属
func (a *Address) FindOwned(ctx context.Context, id uint64, customerID string) (*models.Address, error) {
	var m models.Address
	err := a.Db.WithContext(ctx).Where("id = ? AND customer_id = ?", id, customerID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (a *Address) ListByCustomer(ctx context.Context, customerID string) ([]*models.Address, error) {
	var items []*models.Address
	err := a.Db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id desc").Find(&items).Error
	return items, err
}

func (a *Address) DeleteOwned(ctx context.Context, id uint64, customerID string) (bool, error) {
	result := a.Db.WithContext(ctx).Where("id = ? AND customer_id = ?", id, customerID).Delete(&models.Address{})
	return result.RowsAffected > 0, result.Error
}
