package models

import "time"

// Address 收货地址
type Address struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	CustomerID string    `gorm:"type:varchar(16);not null;index:idx_address_customer;column:customer_id" json:"customer_id"`
	Addr       string    `gorm:"type:varchar(80);not null;column:addr" json:"addr"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Address) TableName() string {
	return "addresses"
}
