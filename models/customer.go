package models

import "time"

// Customer 顾客账号
type Customer struct {
	ID        string    `gorm:"primaryKey;type:varchar(16);column:id" json:"id"` // 用户名即主键
	Name      string    `gorm:"type:varchar(10);not null;column:name" json:"name"`
	Tel       string    `gorm:"type:varchar(11);not null;column:tel" json:"tel"`
	Pwd       string    `gorm:"type:varchar(128);not null;column:pwd" json:"-"` // bcrypt 哈希
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// Privilege 顾客权限恒为 0
func (Customer) Privilege() int {
	return 0
}
