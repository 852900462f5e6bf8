package types

import "time"

// CreateOrderRequest 直接购买下单
type CreateOrderRequest struct {
	GoodsID   uint64 `json:"goods_id" binding:"required"`
	AddressID uint64 `json:"address_id" binding:"required"`
	Quantity  uint32 `json:"qty" binding:"required,min=1,max=99"`
}

// AppraiseRequest 订单评价
type AppraiseRequest struct {
	Score   int8   `json:"score" binding:"required,min=1,max=5"`
	Content string `json:"content" binding:"max=100"`
}

type OrderItem struct {
	ID        uint64     `json:"id"`
	OrderSn   string     `json:"order_sn"`
	GoodsID   uint64     `json:"goods_id"`
	GoodsName string     `json:"goods_name"`
	Quantity  uint32     `json:"qty"`
	Addr      string     `json:"addr"` // 下单时的收货地址快照
	Cost      uint64     `json:"cost"` // 分
	Status    int8       `json:"status"`
	PayTime   *time.Time `json:"pay_time,omitempty"`
	Created   time.Time  `json:"created_at"`
}

type ListOrdersResponse struct {
	Items      []*OrderItem `json:"items"`
	NextCursor uint64       `json:"next_cursor"`
	HasMore    bool         `json:"has_more"`
}
