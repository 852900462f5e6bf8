package models

import "time"

// Appraisal 订单评价，一单至多一条
type Appraisal struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID   uint64    `gorm:"not null;uniqueIndex:idx_appraisal_order;column:order_id" json:"order_id"`
	GoodsID   uint64    `gorm:"not null;index:idx_appraisal_goods;column:goods_id" json:"goods_id"`
	Score     int8      `gorm:"not null;column:score" json:"score"` // 1~5
	Content   string    `gorm:"type:varchar(100);default:'';column:content" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Appraisal) TableName() string {
	return "appraisals"
}
