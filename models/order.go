package models

import "time"

type OrderStatus int8

const (
	OrderStatusUnpaid    OrderStatus = 0 // 待支付
	OrderStatusPaid      OrderStatus = 1 // 已支付，待发货
	OrderStatusShipped   OrderStatus = 2 // 已发货，待签收
	OrderStatusSigned    OrderStatus = 3 // 已签收，待评价
	OrderStatusCompleted OrderStatus = 4 // 已完成
	OrderStatusCancelled OrderStatus = 5 // 已取消（终态，仅商品下架时由支付触达）
)

// CanTransit 订单状态只允许前进，所有合法流转集中在这一处校验
func (s OrderStatus) CanTransit(to OrderStatus) bool {
	switch s {
	case OrderStatusUnpaid:
		return to == OrderStatusPaid || to == OrderStatusCancelled
	case OrderStatusPaid:
		return to == OrderStatusShipped
	case OrderStatusShipped:
		return to == OrderStatusSigned
	case OrderStatusSigned:
		return to == OrderStatusCompleted
	default:
		return false
	}
}

// Order 订单主表
//
// cost、goods_name 与 addr 在下单时冗余落库，锁定成交价与收货信息，
// 之后商品改价、改名、下架或地址删除都不影响既有订单。
type Order struct {
	ID         uint64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderSn    string      `gorm:"type:varchar(32);not null;uniqueIndex:idx_order_sn;column:order_sn" json:"order_sn"`
	CustomerID string      `gorm:"type:varchar(16);not null;index:idx_order_customer;column:customer_id" json:"customer_id"`
	GoodsID    uint64      `gorm:"not null;index:idx_order_goods;column:goods_id" json:"goods_id"`
	GoodsName  string      `gorm:"type:varchar(30);not null;column:goods_name" json:"goods_name"`
	AddressID  uint64      `gorm:"not null;column:address_id" json:"address_id"`
	Addr       string      `gorm:"type:varchar(80);not null;column:addr" json:"addr"` // 收货地址快照
	Quantity   uint32      `gorm:"not null;column:quantity" json:"quantity"`
	Cost       uint64      `gorm:"not null;column:cost" json:"cost"` // 单价 * 数量（分），下单时冻结
	Status     OrderStatus `gorm:"type:tinyint;not null;default:0;index:idx_order_status;column:status" json:"status"`
	AdminID    *string     `gorm:"type:varchar(16);column:admin_id" json:"admin_id"` // 认领发货的管理员，至多一个
	PayTime    *time.Time  `gorm:"column:pay_time" json:"pay_time"`
	CreatedAt  time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "cust_orders"
}
