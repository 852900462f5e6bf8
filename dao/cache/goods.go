package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"minimall/types"

	"github.com/redis/go-redis/v9"
)

const (
	goodsDetailTTL = 10 * time.Minute
	salesRankKey   = "mall:rank:sales"
)

// GoodsCache 商品详情缓存 + 销量排行榜
type GoodsCache struct {
	redis *redis.Client
}

func NewGoodsCache(rds *redis.Client) *GoodsCache {
	return &GoodsCache{redis: rds}
}

func (c *GoodsCache) detailKey(goodsID uint64) string {
	return fmt.Sprintf("mall:goods:detail:%d", goodsID)
}

func (c *GoodsCache) GetDetail(ctx context.Context, goodsID uint64) (*types.GoodsDetail, error) {
	raw, err := c.redis.Get(ctx, c.detailKey(goodsID)).Bytes()
	if err != nil {
		return nil, err
	}
	var detail types.GoodsDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *GoodsCache) SetDetail(ctx context.Context, goodsID uint64, detail *types.GoodsDetail) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, c.detailKey(goodsID), raw, goodsDetailTTL).Err()
}

// DelDetail 库存、价格等字段变化后失效缓存
func (c *GoodsCache) DelDetail(ctx context.Context, goodsID uint64) error {
	return c.redis.Del(ctx, c.detailKey(goodsID)).Err()
}

func (c *GoodsCache) IncrSales(ctx context.Context, goodsID uint64, qty uint32) error {
	return c.redis.ZIncrBy(ctx, salesRankKey, float64(qty), fmt.Sprintf("%d", goodsID)).Err()
}

func (c *GoodsCache) RemoveFromRank(ctx context.Context, goodsID uint64) error {
	return c.redis.ZRem(ctx, salesRankKey, fmt.Sprintf("%d", goodsID)).Err()
}

// TopSales 取销量前 n 的商品ID与销量
func (c *GoodsCache) TopSales(ctx context.Context, n int64) ([]redis.Z, error) {
	return c.redis.ZRevRangeWithScores(ctx, salesRankKey, 0, n-1).Result()
}
