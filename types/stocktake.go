package types

// SubmitStocktakeRequest 提交一次库存盘点
type SubmitStocktakeRequest struct {
	GoodsID uint64 `json:"goods_id" binding:"required"`
	Counted uint32 `json:"counted" binding:"required,min=1,max=100000"`
}

type StocktakeItem struct {
	ID        uint64 `json:"id"`
	GoodsID   uint64 `json:"goods_id"`
	AdminID   string `json:"admin_id"`
	Counted   uint32 `json:"counted"`
	RealStock uint32 `json:"real_stock"`
	Diff      int64  `json:"diff"`
}
