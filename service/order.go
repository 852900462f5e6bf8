package service

import (
	"context"
	"errors"
	"time"

	"minimall/dao"
	"minimall/models"
	"minimall/pkg/log"
	"minimall/pkg/util"
	"minimall/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 生命周期操作返回的业务错误，handler 层翻译成用户提示
var (
	ErrOrderNotFound     = errors.New("订单不存在")
	ErrGoodsNotFound     = errors.New("商品不存在")
	ErrAddressNotFound   = errors.New("收货地址不存在")
	ErrForbidden         = errors.New("无权操作该订单")
	ErrInvalidState      = errors.New("当前状态不允许该操作")
	ErrInvalidQuantity   = errors.New("一次性购买数量必须在1~99之间")
	ErrOutOfStock        = errors.New("商品已售罄")
	ErrInsufficientStock = errors.New("库存不足")
	ErrGoodsDiscontinued = errors.New("商品已下架")
	ErrAlreadyClaimed    = errors.New("订单已被其他管理员认领")
	ErrAlreadyAppraised  = errors.New("订单已评价")
)

// SalesRank 支付成功后的缓存侧副作用，失败只记日志不回滚订单
type SalesRank interface {
	IncrSales(ctx context.Context, goodsID uint64, qty uint32) error
	DelDetail(ctx context.Context, goodsID uint64) error
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	CreateOrder(ctx context.Context, customerID string, req *types.CreateOrderRequest) (*models.Order, error)
	Pay(ctx context.Context, orderID uint64, customerID string) (*models.Order, error)
	Claim(ctx context.Context, orderID uint64, adminID string) error
	Ship(ctx context.Context, orderID uint64, adminID string) error
	Sign(ctx context.Context, orderID uint64, customerID string) error
	Appraise(ctx context.Context, orderID uint64, customerID string, score int8, content string) error
	Cancel(ctx context.Context, orderID uint64, customerID string) error

	ListByCustomer(ctx context.Context, customerID string, cursor uint64, pageSize int) (*types.ListOrdersResponse, error)
	ListUnclaimed(ctx context.Context) ([]*types.OrderItem, error)
	ListClaimed(ctx context.Context, adminID string) ([]*types.OrderItem, error)
}

// OrderService 订单生命周期管理器。
//
// 状态流转见 models.OrderStatus.CanTransit；唯一需要互斥的临界区是
// 支付时对商品行的「锁定-校验-扣减-提交」，由 Store.Atomic 内的行锁保证。
type OrderService struct {
	Store    dao.OrderStore
	OrderDAO *dao.Order
	Rank     SalesRank
}

// CreateOrder 下单。下单不占库存，库存只在支付时真正扣减，
// 因此多个未支付订单的数量之和允许超过当前库存。
func (s *OrderService) CreateOrder(ctx context.Context, customerID string, req *types.CreateOrderRequest) (*models.Order, error) {
	if req.Quantity < 1 || req.Quantity > 99 {
		return nil, ErrInvalidQuantity
	}

	goods, err := s.Store.GoodsByID(ctx, req.GoodsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoodsNotFound
		}
		return nil, err
	}
	if goods.Stock == 0 {
		return nil, ErrOutOfStock
	}

	address, err := s.Store.AddressOwned(ctx, req.AddressID, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	order := &models.Order{
		OrderSn:    util.GenerateOrderSn(),
		CustomerID: customerID,
		GoodsID:    goods.ID,
		GoodsName:  goods.Name,
		AddressID:  req.AddressID,
		Addr:       address.Addr, // 收货地址快照，之后地址删除不影响发货
		Quantity:   req.Quantity,
		Cost:       uint64(goods.SalePrice) * uint64(req.Quantity), // 成交价冻结
		Status:     models.OrderStatusUnpaid,
	}
	if err := s.Store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Pay 支付。整个「锁商品行 → 校验库存 → 扣减 → 流转状态」在一个
// 事务内完成，其他支付或库存变更无法插入校验与扣减之间。
func (s *OrderService) Pay(ctx context.Context, orderID uint64, customerID string) (*models.Order, error) {
	var (
		paid         *models.Order
		discontinued bool
		goodsID      uint64
		qty          uint32
	)

	err := s.Store.Atomic(ctx, func(tx dao.OrderStore) error {
		order, err := tx.OrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.CustomerID != customerID {
			return ErrForbidden
		}
		if !order.Status.CanTransit(models.OrderStatusPaid) {
			return ErrInvalidState
		}

		goods, err := tx.GoodsByIDForUpdate(ctx, order.GoodsID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 商品已下架：订单转入取消态并提交，事务外再报告下架
				ok, aerr := tx.AdvanceOrder(ctx, order.ID, models.OrderStatusUnpaid, models.OrderStatusCancelled, nil)
				if aerr != nil {
					return aerr
				}
				if !ok {
					return ErrInvalidState
				}
				discontinued = true
				return nil
			}
			return err
		}

		if goods.Stock < order.Quantity {
			return ErrInsufficientStock // 不做部分成交，订单停留在待支付
		}

		now := time.Now()
		if err := tx.AddGoodsCounters(ctx, goods.ID, -int64(order.Quantity), 0, int64(order.Quantity)); err != nil {
			return err
		}
		ok, err := tx.AdvanceOrder(ctx, order.ID, models.OrderStatusUnpaid, models.OrderStatusPaid,
			map[string]interface{}{"pay_time": now})
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidState
		}

		order.Status = models.OrderStatusPaid
		order.PayTime = &now
		paid = order
		goodsID = goods.ID
		qty = order.Quantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	if discontinued {
		return nil, ErrGoodsDiscontinued
	}

	if s.Rank != nil {
		if err := s.Rank.IncrSales(ctx, goodsID, qty); err != nil {
			log.L.Warn("incr sales rank failed", zap.Uint64("goods_id", goodsID), zap.Error(err))
		}
		if err := s.Rank.DelDetail(ctx, goodsID); err != nil {
			log.L.Warn("invalidate goods cache failed", zap.Uint64("goods_id", goodsID), zap.Error(err))
		}
	}
	return paid, nil
}

// Claim 管理员认领发货，条件更新保证并发下至多一人成功
func (s *OrderService) Claim(ctx context.Context, orderID uint64, adminID string) error {
	order, err := s.Store.OrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if order.Status != models.OrderStatusPaid {
		return ErrInvalidState
	}

	ok, err := s.Store.ClaimOrder(ctx, orderID, adminID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyClaimed
	}
	return nil
}

// Ship 发货。实物库存只在这里扣减；商品已被下架时跳过扣减，
// 订单照常流转，不能卡在已支付状态。
func (s *OrderService) Ship(ctx context.Context, orderID uint64, adminID string) error {
	return s.Store.Atomic(ctx, func(tx dao.OrderStore) error {
		order, err := tx.OrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if !order.Status.CanTransit(models.OrderStatusShipped) {
			return ErrInvalidState
		}
		if order.AdminID == nil || *order.AdminID != adminID {
			return ErrForbidden
		}

		goods, err := tx.GoodsByIDForUpdate(ctx, order.GoodsID)
		switch {
		case err == nil:
			if goods.RealStock < order.Quantity {
				return ErrInsufficientStock
			}
			if err := tx.AddGoodsCounters(ctx, goods.ID, 0, -int64(order.Quantity), 0); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// 商品已下架，无实物库存可扣
		default:
			return err
		}

		ok, err := tx.AdvanceOrder(ctx, order.ID, models.OrderStatusPaid, models.OrderStatusShipped, nil)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidState
		}
		return nil
	})
}

// Sign 顾客确认收货
func (s *OrderService) Sign(ctx context.Context, orderID uint64, customerID string) error {
	return s.Store.Atomic(ctx, func(tx dao.OrderStore) error {
		order, err := tx.OrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.CustomerID != customerID {
			return ErrForbidden
		}
		if !order.Status.CanTransit(models.OrderStatusSigned) {
			return ErrInvalidState
		}

		ok, err := tx.AdvanceOrder(ctx, order.ID, models.OrderStatusShipped, models.OrderStatusSigned, nil)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidState
		}
		return nil
	})
}

// Appraise 评价并完成订单。一单至多一条评价；商品已下架的订单
// 不再接受评价，直接强制完成。
func (s *OrderService) Appraise(ctx context.Context, orderID uint64, customerID string, score int8, content string) error {
	var forced bool

	err := s.Store.Atomic(ctx, func(tx dao.OrderStore) error {
		order, err := tx.OrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.CustomerID != customerID {
			return ErrForbidden
		}
		if order.Status == models.OrderStatusCompleted {
			return ErrAlreadyAppraised
		}
		if !order.Status.CanTransit(models.OrderStatusCompleted) {
			return ErrInvalidState
		}

		if _, err := tx.GoodsByID(ctx, order.GoodsID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ok, aerr := tx.AdvanceOrder(ctx, order.ID, models.OrderStatusSigned, models.OrderStatusCompleted, nil)
				if aerr != nil {
					return aerr
				}
				if !ok {
					return ErrInvalidState
				}
				forced = true
				return nil
			}
			return err
		}

		appraisal := &models.Appraisal{
			OrderID: order.ID,
			GoodsID: order.GoodsID,
			Score:   score,
			Content: content,
		}
		if err := tx.CreateAppraisal(ctx, appraisal); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyAppraised
			}
			return err
		}

		ok, err := tx.AdvanceOrder(ctx, order.ID, models.OrderStatusSigned, models.OrderStatusCompleted, nil)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidState
		}
		return nil
	})
	if err != nil {
		return err
	}
	if forced {
		log.L.Info("order force completed, goods discontinued", zap.Uint64("order_id", orderID))
	}
	return nil
}

// Cancel 仅待支付订单可取消，取消即删除，无库存需要归还
func (s *OrderService) Cancel(ctx context.Context, orderID uint64, customerID string) error {
	return s.Store.Atomic(ctx, func(tx dao.OrderStore) error {
		order, err := tx.OrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.CustomerID != customerID {
			return ErrForbidden
		}
		if order.Status != models.OrderStatusUnpaid {
			return ErrInvalidState
		}
		return tx.DeleteOrder(ctx, order.ID)
	})
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID string, cursor uint64, pageSize int) (*types.ListOrdersResponse, error) {
	if pageSize <= 0 || pageSize > 20 {
		pageSize = 10
	}

	orders, err := s.OrderDAO.ListByCustomer(ctx, customerID, cursor, pageSize+1)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(orders) > pageSize {
		hasMore = true
		orders = orders[:pageSize]
	}

	resp := &types.ListOrdersResponse{
		Items:   make([]*types.OrderItem, 0, len(orders)),
		HasMore: hasMore,
	}
	for _, o := range orders {
		resp.Items = append(resp.Items, toOrderItem(o))
	}
	if len(orders) > 0 {
		resp.NextCursor = orders[len(orders)-1].ID
	}
	return resp, nil
}

func (s *OrderService) ListUnclaimed(ctx context.Context) ([]*types.OrderItem, error) {
	orders, err := s.OrderDAO.ListUnclaimed(ctx, 100)
	if err != nil {
		return nil, err
	}
	items := make([]*types.OrderItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderItem(o))
	}
	return items, nil
}

func (s *OrderService) ListClaimed(ctx context.Context, adminID string) ([]*types.OrderItem, error) {
	orders, err := s.OrderDAO.ListByAdmin(ctx, adminID, 100)
	if err != nil {
		return nil, err
	}
	items := make([]*types.OrderItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderItem(o))
	}
	return items, nil
}

func toOrderItem(o *models.Order) *types.OrderItem {
	return &types.OrderItem{
		ID:        o.ID,
		OrderSn:   o.OrderSn,
		GoodsID:   o.GoodsID,
		GoodsName: o.GoodsName,
		Quantity:  o.Quantity,
		Addr:      o.Addr,
		Cost:      o.Cost,
		Status:    int8(o.Status),
		PayTime:   o.PayTime,
		Created:   o.CreatedAt,
	}
}
