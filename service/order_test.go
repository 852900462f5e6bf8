package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"minimall/dao"
	"minimall/models"
	"minimall/types"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeData 内存版订单存储，Atomic 用互斥锁模拟行锁的串行化效果
type fakeData struct {
	goods      map[uint64]*models.Goods
	orders     map[uint64]*models.Order
	addresses  map[uint64]*models.Address
	appraisals map[uint64]*models.Appraisal // key 为 order_id
	nextID     uint64
}

func (d *fakeData) clone() *fakeData {
	c := &fakeData{
		goods:      make(map[uint64]*models.Goods, len(d.goods)),
		orders:     make(map[uint64]*models.Order, len(d.orders)),
		addresses:  make(map[uint64]*models.Address, len(d.addresses)),
		appraisals: make(map[uint64]*models.Appraisal, len(d.appraisals)),
		nextID:     d.nextID,
	}
	for k, v := range d.goods {
		g := *v
		c.goods[k] = &g
	}
	for k, v := range d.orders {
		o := *v
		c.orders[k] = &o
	}
	for k, v := range d.addresses {
		a := *v
		c.addresses[k] = &a
	}
	for k, v := range d.appraisals {
		a := *v
		c.appraisals[k] = &a
	}
	return c
}

type fakeStore struct {
	mu   sync.Mutex
	data *fakeData
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: &fakeData{
		goods:      map[uint64]*models.Goods{},
		orders:     map[uint64]*models.Order{},
		addresses:  map[uint64]*models.Address{},
		appraisals: map[uint64]*models.Appraisal{},
		nextID:     1,
	}}
}

var _ dao.OrderStore = (*fakeStore)(nil)

// Atomic 持锁执行整个回调，失败时整体回滚
func (f *fakeStore) Atomic(ctx context.Context, fn func(tx dao.OrderStore) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := f.data.clone()
	if err := fn(&fakeTx{data: f.data}); err != nil {
		f.data = snap
		return err
	}
	return nil
}

func (f *fakeStore) GoodsByID(ctx context.Context, id uint64) (*models.Goods, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return goodsByID(f.data, id)
}

func (f *fakeStore) GoodsByIDForUpdate(ctx context.Context, id uint64) (*models.Goods, error) {
	return f.GoodsByID(ctx, id)
}

func (f *fakeStore) AddGoodsCounters(ctx context.Context, id uint64, stock, realStock, sales int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return addCounters(f.data, id, stock, realStock, sales)
}

func (f *fakeStore) OrderByID(ctx context.Context, id uint64) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return orderByID(f.data, id)
}

func (f *fakeStore) CreateOrder(ctx context.Context, o *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return createOrder(f.data, o)
}

func (f *fakeStore) AdvanceOrder(ctx context.Context, id uint64, from, to models.OrderStatus, set map[string]interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return advanceOrder(f.data, id, from, to, set)
}

func (f *fakeStore) ClaimOrder(ctx context.Context, id uint64, adminID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return claimOrder(f.data, id, adminID)
}

func (f *fakeStore) DeleteOrder(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data.orders, id)
	return nil
}

func (f *fakeStore) AddressOwned(ctx context.Context, id uint64, customerID string) (*models.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return addressOwned(f.data, id, customerID)
}

func (f *fakeStore) CreateAppraisal(ctx context.Context, a *models.Appraisal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return createAppraisal(f.data, a)
}

// fakeTx 在 Atomic 的锁内使用，不再加锁
type fakeTx struct {
	data *fakeData
}

var _ dao.OrderStore = (*fakeTx)(nil)

func (t *fakeTx) Atomic(ctx context.Context, fn func(tx dao.OrderStore) error) error {
	return fn(t)
}

func (t *fakeTx) GoodsByID(ctx context.Context, id uint64) (*models.Goods, error) {
	return goodsByID(t.data, id)
}

func (t *fakeTx) GoodsByIDForUpdate(ctx context.Context, id uint64) (*models.Goods, error) {
	return goodsByID(t.data, id)
}

func (t *fakeTx) AddGoodsCounters(ctx context.Context, id uint64, stock, realStock, sales int64) error {
	return addCounters(t.data, id, stock, realStock, sales)
}

func (t *fakeTx) OrderByID(ctx context.Context, id uint64) (*models.Order, error) {
	return orderByID(t.data, id)
}

func (t *fakeTx) CreateOrder(ctx context.Context, o *models.Order) error {
	return createOrder(t.data, o)
}

func (t *fakeTx) AdvanceOrder(ctx context.Context, id uint64, from, to models.OrderStatus, set map[string]interface{}) (bool, error) {
	return advanceOrder(t.data, id, from, to, set)
}

func (t *fakeTx) ClaimOrder(ctx context.Context, id uint64, adminID string) (bool, error) {
	return claimOrder(t.data, id, adminID)
}

func (t *fakeTx) DeleteOrder(ctx context.Context, id uint64) error {
	delete(t.data.orders, id)
	return nil
}

func (t *fakeTx) AddressOwned(ctx context.Context, id uint64, customerID string) (*models.Address, error) {
	return addressOwned(t.data, id, customerID)
}

func (t *fakeTx) CreateAppraisal(ctx context.Context, a *models.Appraisal) error {
	return createAppraisal(t.data, a)
}

func goodsByID(d *fakeData, id uint64) (*models.Goods, error) {
	g, ok := d.goods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *g
	return &cp, nil
}

func addCounters(d *fakeData, id uint64, stock, realStock, sales int64) error {
	g, ok := d.goods[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	g.Stock = uint32(int64(g.Stock) + stock)
	g.RealStock = uint32(int64(g.RealStock) + realStock)
	g.SalesNum = uint32(int64(g.SalesNum) + sales)
	return nil
}

func orderByID(d *fakeData, id uint64) (*models.Order, error) {
	o, ok := d.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func createOrder(d *fakeData, o *models.Order) error {
	o.ID = d.nextID
	d.nextID++
	cp := *o
	d.orders[o.ID] = &cp
	return nil
}

func advanceOrder(d *fakeData, id uint64, from, to models.OrderStatus, set map[string]interface{}) (bool, error) {
	o, ok := d.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	if v, ok := set["pay_time"]; ok {
		t := v.(time.Time)
		o.PayTime = &t
	}
	return true, nil
}

func claimOrder(d *fakeData, id uint64, adminID string) (bool, error) {
	o, ok := d.orders[id]
	if !ok || o.Status != models.OrderStatusPaid || o.AdminID != nil {
		return false, nil
	}
	o.AdminID = &adminID
	return true, nil
}

func addressOwned(d *fakeData, id uint64, customerID string) (*models.Address, error) {
	a, ok := d.addresses[id]
	if !ok || a.CustomerID != customerID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func createAppraisal(d *fakeData, a *models.Appraisal) error {
	if _, ok := d.appraisals[a.OrderID]; ok {
		return gorm.ErrDuplicatedKey
	}
	cp := *a
	d.appraisals[a.OrderID] = &cp
	return nil
}

type fakeRank struct {
	mu        sync.Mutex
	incrCalls int
	delCalls  int
}

func (r *fakeRank) IncrSales(ctx context.Context, goodsID uint64, qty uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incrCalls++
	return nil
}

func (r *fakeRank) DelDetail(ctx context.Context, goodsID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delCalls++
	return nil
}

func newOrderFixture(stock uint32) (*OrderService, *fakeStore, *fakeRank) {
	store := newFakeStore()
	store.data.goods[1] = &models.Goods{
		ID:        1,
		Name:      "机械键盘",
		SalePrice: 19900,
		Stock:     stock,
		RealStock: stock,
	}
	store.data.addresses[1] = &models.Address{ID: 1, CustomerID: "c1", Addr: "幸福路1号"}
	rank := &fakeRank{}
	svc := &OrderService{Store: store, Rank: rank}
	return svc, store, rank
}

func TestCreateOrderFreezesCost(t *testing.T) {
	svc, store, _ := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, uint64(19900*2), order.Cost)
	require.Equal(t, "机械键盘", order.GoodsName)
	require.Equal(t, models.OrderStatusUnpaid, order.Status)

	// 改价不影响已存在订单的成交价
	store.data.goods[1].SalePrice = 29900
	got, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(19900*2), got.Cost)

	// 下单不占库存
	g, err := store.GoodsByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint32(10), g.Stock)
}

// 收货地址随下单落库为文本快照，之后删地址不影响在途订单的发货信息
func TestCreateOrderSnapshotsAddress(t *testing.T) {
	svc, store, _ := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, "幸福路1号", order.Addr)

	delete(store.data.addresses, 1)

	_, err = svc.Pay(ctx, order.ID, "c1")
	require.NoError(t, err)

	got, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, "幸福路1号", got.Addr)

	// 发货侧列表能看到快照地址
	require.Equal(t, "幸福路1号", toOrderItem(got).Addr)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, store, _ := newOrderFixture(10)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 0})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 100})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 404, AddressID: 1, Quantity: 1})
	require.ErrorIs(t, err, ErrGoodsNotFound)

	// 别人的地址等同于不存在
	_, err = svc.CreateOrder(ctx, "c2", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.ErrorIs(t, err, ErrAddressNotFound)

	store.data.goods[1].Stock = 0
	_, err = svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.ErrorIs(t, err, ErrOutOfStock)
}

func TestPayHappyPath(t *testing.T) {
	svc, store, rank := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 3})
	require.NoError(t, err)

	paid, err := svc.Pay(ctx, order.ID, "c1")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPaid, paid.Status)
	require.NotNil(t, paid.PayTime)

	g, err := store.GoodsByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint32(7), g.Stock)
	require.Equal(t, uint32(10), g.RealStock) // 实物库存发货前不动
	require.Equal(t, uint32(3), g.SalesNum)
	require.Equal(t, 1, rank.incrCalls)

	// 重复支付
	_, err = svc.Pay(ctx, order.ID, "c1")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestPayWrongCustomer(t *testing.T) {
	svc, _, _ := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Pay(ctx, order.ID, "c2")
	require.ErrorIs(t, err, ErrForbidden)
}

// 库存 1，两个未支付订单并发支付，只能有一单成功
func TestPayConcurrentNoOversell(t *testing.T) {
	svc, store, _ := newOrderFixture(1)
	ctx := context.Background()

	o1, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)
	o2, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, id := range []uint64{o1.ID, o2.ID} {
		wg.Add(1)
		go func(orderID uint64) {
			defer wg.Done()
			_, err := svc.Pay(ctx, orderID, "c1")
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)

	var okCount, insufficientCount int
	for err := range errs {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, ErrInsufficientStock):
			insufficientCount++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, okCount)
	require.Equal(t, 1, insufficientCount)

	g, err := store.GoodsByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint32(0), g.Stock)
	require.Equal(t, uint32(1), g.SalesNum)
}

func TestPayDiscontinuedGoods(t *testing.T) {
	svc, store, rank := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)

	delete(store.data.goods, 1)

	_, err = svc.Pay(ctx, order.ID, "c1")
	require.ErrorIs(t, err, ErrGoodsDiscontinued)

	// 订单进入取消终态，且取消已提交而非回滚
	got, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCancelled, got.Status)
	require.Equal(t, 0, rank.incrCalls)

	// 终态不可再操作
	_, err = svc.Pay(ctx, order.ID, "c1")
	require.ErrorIs(t, err, ErrInvalidState)
}

// 多个管理员并发认领同一单，至多一人成功
func TestClaimConcurrentSingleWinner(t *testing.T) {
	svc, store, _ := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Pay(ctx, order.ID, "c1")
	require.NoError(t, err)

	admins := []string{"a1", "a2", "a3", "a4", "a5"}
	errs := make(chan error, len(admins))
	var wg sync.WaitGroup
	for _, admin := range admins {
		wg.Add(1)
		go func(adminID string) {
			defer wg.Done()
			errs <- svc.Claim(ctx, order.ID, adminID)
		}(admin)
	}
	wg.Wait()
	close(errs)

	var okCount, claimedCount int
	for err := range errs {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, ErrAlreadyClaimed):
			claimedCount++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, okCount)
	require.Equal(t, len(admins)-1, claimedCount)

	got, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AdminID)
}

func TestClaimRequiresPaidStatus(t *testing.T) {
	svc, _, _ := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Claim(ctx, order.ID, "a1"), ErrInvalidState)
	require.ErrorIs(t, svc.Claim(ctx, 404, "a1"), ErrOrderNotFound)
}

func TestShipOnlyByClaimant(t *testing.T) {
	svc, store, _ := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.Pay(ctx, order.ID, "c1")
	require.NoError(t, err)
	require.NoError(t, svc.Claim(ctx, order.ID, "a1"))

	// 未认领的管理员不能发货
	require.ErrorIs(t, svc.Ship(ctx, order.ID, "a2"), ErrForbidden)

	require.NoError(t, svc.Ship(ctx, order.ID, "a1"))

	g, err := store.GoodsByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint32(8), g.RealStock)

	got, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, got.Status)

	// 重复发货
	require.ErrorIs(t, svc.Ship(ctx, order.ID, "a1"), ErrInvalidState)
}

// 商品在支付后被下架，发货跳过实物库存扣减但订单照常流转
func TestShipDiscontinuedGoodsStillProceeds(t *testing.T) {
	svc, store, _ := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Pay(ctx, order.ID, "c1")
	require.NoError(t, err)
	require.NoError(t, svc.Claim(ctx, order.ID, "a1"))

	delete(store.data.goods, 1)

	require.NoError(t, svc.Ship(ctx, order.ID, "a1"))

	got, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, got.Status)
}

func TestSignAndAppraise(t *testing.T) {
	svc, store, _ := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Pay(ctx, order.ID, "c1")
	require.NoError(t, err)
	require.NoError(t, svc.Claim(ctx, order.ID, "a1"))
	require.NoError(t, svc.Ship(ctx, order.ID, "a1"))

	// 未发货先签收不可能，这里是未签收先评价
	require.ErrorIs(t, svc.Appraise(ctx, order.ID, "c1", 5, "很好"), ErrInvalidState)

	require.ErrorIs(t, svc.Sign(ctx, order.ID, "c2"), ErrForbidden)
	require.NoError(t, svc.Sign(ctx, order.ID, "c1"))

	require.NoError(t, svc.Appraise(ctx, order.ID, "c1", 5, "很好"))

	got, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCompleted, got.Status)
	require.Len(t, store.data.appraisals, 1)

	// 一单至多一条评价
	require.ErrorIs(t, svc.Appraise(ctx, order.ID, "c1", 1, "改差评"), ErrAlreadyAppraised)
	require.Len(t, store.data.appraisals, 1)
}

// 商品下架后订单仍可走完，但不再落评价
func TestAppraiseDiscontinuedGoodsForceCompletes(t *testing.T) {
	svc, store, _ := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Pay(ctx, order.ID, "c1")
	require.NoError(t, err)
	require.NoError(t, svc.Claim(ctx, order.ID, "a1"))
	require.NoError(t, svc.Ship(ctx, order.ID, "a1"))
	require.NoError(t, svc.Sign(ctx, order.ID, "c1"))

	delete(store.data.goods, 1)

	require.NoError(t, svc.Appraise(ctx, order.ID, "c1", 5, "很好"))

	got, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCompleted, got.Status)
	require.Len(t, store.data.appraisals, 0)
}

func TestCancelOnlyUnpaid(t *testing.T) {
	svc, store, _ := newOrderFixture(10)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Cancel(ctx, order.ID, "c2"), ErrForbidden)
	require.NoError(t, svc.Cancel(ctx, order.ID, "c1"))

	_, err = store.OrderByID(ctx, order.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 已支付订单不可取消
	order2, err := svc.CreateOrder(ctx, "c1", &types.CreateOrderRequest{GoodsID: 1, AddressID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Pay(ctx, order2.ID, "c1")
	require.NoError(t, err)
	require.ErrorIs(t, svc.Cancel(ctx, order2.ID, "c1"), ErrInvalidState)
}
