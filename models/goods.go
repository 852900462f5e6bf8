package models

import "time"

// Goods 商品目录条目
//
// 两个库存计数器：stock 为可售库存，支付时扣减；real_stock 为实物库存，
// 发货时才扣减。支付之后恒有 stock <= real_stock。
type Goods struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name          string    `gorm:"type:varchar(30);not null;column:name" json:"name"`
	CateID        uint64    `gorm:"not null;index:idx_goods_cate;column:cate_id" json:"cate_id"`
	BrandID       uint64    `gorm:"not null;index:idx_goods_brand;column:brand_id" json:"brand_id"`
	PurchasePrice uint32    `gorm:"not null;column:purchase_price" json:"purchase_price"` // 进货价（分）
	SalePrice     uint32    `gorm:"not null;column:sale_price" json:"sale_price"`         // 售价（分）
	Stock         uint32    `gorm:"not null;default:0;column:stock" json:"stock"`         // 可售库存
	RealStock     uint32    `gorm:"not null;default:0;column:real_stock" json:"real_stock"`
	SalesNum      uint32    `gorm:"not null;default:0;column:sales_num" json:"sales_num"` // 累计销量
	Description   string    `gorm:"type:varchar(500);not null;column:description" json:"description"`
	CoverKey      string    `gorm:"size:512;default:'';column:cover_key" json:"cover_key"` // 封面图 OSS key
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Goods) TableName() string {
	return "goods"
}

// Image 商品展示图
type Image struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	GoodsID   uint64    `gorm:"not null;index:idx_image_goods;column:goods_id" json:"goods_id"`
	OssKey    string    `gorm:"type:varchar(255);not null;column:oss_key" json:"oss_key"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Image) TableName() string {
	return "images"
}
