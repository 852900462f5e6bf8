package models

// Category 商品类别
type Category struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"type:varchar(20);not null;uniqueIndex:idx_category_name;column:name" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

// Brand 品牌
type Brand struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"type:varchar(20);not null;uniqueIndex:idx_brand_name;column:name" json:"name"`
}

func (Brand) TableName() string {
	return "brands"
}
