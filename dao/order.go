package dao

import (
	"context"

	"minimall/models"

	"gorm.io/gorm"
)

// OrderStore 订单生命周期依赖的存储契约。
//
// Atomic 打开一个事务边界，回调内拿到的 store 绑定同一事务；
// GoodsByIDForUpdate 的行锁从读取持续到事务提交或回滚，从不越过
// Atomic 的边界。
type OrderStore interface {
	Atomic(ctx context.Context, fn func(tx OrderStore) error) error

	GoodsByID(ctx context.Context, id uint64) (*models.Goods, error)
	GoodsByIDForUpdate(ctx context.Context, id uint64) (*models.Goods, error)
	AddGoodsCounters(ctx context.Context, id uint64, stock, realStock, sales int64) error

	OrderByID(ctx context.Context, id uint64) (*models.Order, error)
	CreateOrder(ctx context.Context, o *models.Order) error
	AdvanceOrder(ctx context.Context, id uint64, from, to models.OrderStatus, set map[string]interface{}) (bool, error)
	ClaimOrder(ctx context.Context, id uint64, adminID string) (bool, error)
	DeleteOrder(ctx context.Context, id uint64) error

	AddressOwned(ctx context.Context, id uint64, customerID string) (*models.Address, error)
	CreateAppraisal(ctx context.Context, a *models.Appraisal) error
}

type Order struct {
	Repo[models.Order]
	goods   *Goods
	address *Address
}

var _ OrderStore = (*Order)(nil)

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo:    NewRepo[models.Order](db),
		goods:   NewGoods(db),
		address: NewAddress(db),
	}
}

func (o *Order) Atomic(ctx context.Context, fn func(tx OrderStore) error) error {
	return o.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewOrder(tx))
	})
}

func (o *Order) GoodsByID(ctx context.Context, id uint64) (*models.Goods, error) {
	return o.goods.FindByID(ctx, id)
}

func (o *Order) GoodsByIDForUpdate(ctx context.Context, id uint64) (*models.Goods, error) {
	return o.goods.FindByIDForUpdate(ctx, id)
}

func (o *Order) AddGoodsCounters(ctx context.Context, id uint64, stock, realStock, sales int64) error {
	return o.goods.AddCounters(ctx, id, stock, realStock, sales)
}

func (o *Order) OrderByID(ctx context.Context, id uint64) (*models.Order, error) {
	return o.FindByID(ctx, id)
}

func (o *Order) CreateOrder(ctx context.Context, m *models.Order) error {
	return o.Create(ctx, m)
}

// AdvanceOrder 带状态前置条件的更新，返回是否真的命中了一行
func (o *Order) AdvanceOrder(ctx context.Context, id uint64, from, to models.OrderStatus, set map[string]interface{}) (bool, error) {
	if set == nil {
		set = map[string]interface{}{}
	}
	set["status"] = to
	result := o.Db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(set)
	return result.RowsAffected > 0, result.Error
}

// ClaimOrder 条件更新实现认领，竞争失败的一方 RowsAffected 为 0
func (o *Order) ClaimOrder(ctx context.Context, id uint64, adminID string) (bool, error) {
	result := o.Db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ? AND admin_id IS NULL", id, models.OrderStatusPaid).
		Update("admin_id", adminID)
	return result.RowsAffected > 0, result.Error
}

func (o *Order) DeleteOrder(ctx context.Context, id uint64) error {
	return o.DeleteByID(ctx, id)
}

func (o *Order) AddressOwned(ctx context.Context, id uint64, customerID string) (*models.Address, error) {
	return o.address.FindOwned(ctx, id, customerID)
}

func (o *Order) CreateAppraisal(ctx context.Context, a *models.Appraisal) error {
	return o.Db.WithContext(ctx).Create(a).Error
}

// ListByCustomer 我的订单，游标分页，调用方多查一条判断 hasMore
func (o *Order) ListByCustomer(ctx context.Context, customerID string, cursor uint64, limit int) ([]*models.Order, error) {
	var items []*models.Order
	query := o.Db.WithContext(ctx).Where("customer_id = ?", customerID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id desc").Limit(limit).Find(&items).Error
	return items, err
}

// ListUnclaimed 已支付且未被认领的订单
func (o *Order) ListUnclaimed(ctx context.Context, limit int) ([]*models.Order, error) {
	var items []*models.Order
	err := o.Db.WithContext(ctx).
		Where("status = ? AND admin_id IS NULL", models.OrderStatusPaid).
		Order("pay_time asc").Limit(limit).Find(&items).Error
	return items, err
}

// ListByAdmin 某管理员已认领的订单
func (o *Order) ListByAdmin(ctx context.Context, adminID string, limit int) ([]*models.Order, error) {
	var items []*models.Order
	err := o.Db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("updated_at desc").Limit(limit).Find(&items).Error
	return items, err
}
