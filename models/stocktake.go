package models

import (
	"time"

	"gorm.io/datatypes"
)

// Stocktake 库存盘点记录，只追加，从不修改
type Stocktake struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	GoodsID   uint64         `gorm:"not null;index:idx_stocktake_goods;column:goods_id" json:"goods_id"`
	AdminID   string         `gorm:"type:varchar(16);not null;column:admin_id" json:"admin_id"`
	Counted   uint32         `gorm:"not null;column:counted" json:"counted"`       // 盘点数量
	RealStock uint32         `gorm:"not null;column:real_stock" json:"real_stock"` // 盘点时的账面实物库存
	Diff      int64          `gorm:"not null;column:diff" json:"diff"`             // counted - real_stock
	Snapshot  datatypes.JSON `gorm:"column:snapshot" json:"snapshot"`              // 盘点时三个计数器的快照
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Stocktake) TableName() string {
	return "stocktakes"
}
