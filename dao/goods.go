package dao

import (
	"context"

	"minimall/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Goods struct {
	Repo[models.Goods]
}

func NewGoods(db *gorm.DB) *Goods {
	return &Goods{Repo: NewRepo[models.Goods](db)}
}

// FindByIDForUpdate 加排他行锁读取商品，必须在事务内调用
func (g *Goods) FindByIDForUpdate(ctx context.Context, id uint64) (*models.Goods, error) {
	var m models.Goods
	err := g.Db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByCate 类别页游标分页，多查一条判断 hasMore
func (g *Goods) ListByCate(ctx context.Context, cateID uint64, cursor uint64, limit int) ([]*models.Goods, error) {
	return g.listBy(ctx, "cate_id = ?", cateID, cursor, limit)
}

// ListByBrand 品牌页游标分页
func (g *Goods) ListByBrand(ctx context.Context, brandID uint64, cursor uint64, limit int) ([]*models.Goods, error) {
	return g.listBy(ctx, "brand_id = ?", brandID, cursor, limit)
}

func (g *Goods) listBy(ctx context.Context, cond string, arg uint64, cursor uint64, limit int) ([]*models.Goods, error) {
	var items []*models.Goods
	query := g.Db.WithContext(ctx).Where(cond, arg)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id desc").Limit(limit).Find(&items).Error
	return items, err
}

func (g *Goods) UpdateFields(ctx context.Context, id uint64, fields map[string]interface{}) error {
	return g.Db.WithContext(ctx).Model(&models.Goods{}).Where("id = ?", id).Updates(fields).Error
}

// AddCounters 原子加减三个库存计数器，delta 可为负
func (g *Goods) AddCounters(ctx context.Context, id uint64, stock, realStock, sales int64) error {
	fields := map[string]interface{}{}
	if stock != 0 {
		fields["stock"] = gorm.Expr("stock + ?", stock)
	}
	if realStock != 0 {
		fields["real_stock"] = gorm.Expr("real_stock + ?", realStock)
	}
	if sales != 0 {
		fields["sales_num"] = gorm.Expr("sales_num + ?", sales)
	}
	if len(fields) == 0 {
		return nil
	}
	return g.Db.WithContext(ctx).Model(&models.Goods{}).Where("id = ?", id).Updates(fields).Error
}
