package types

// GoodsDetail 商品详情页数据，按此结构整体进出 redis 缓存
type GoodsDetail struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	CateID      uint64   `json:"cate_id"`
	CateName    string   `json:"cate_name"`
	BrandID     uint64   `json:"brand_id"`
	BrandName   string   `json:"brand_name"`
	SalePrice   uint32   `json:"sale_price"` // 分
	Stock       uint32   `json:"stock"`
	SalesNum    uint32   `json:"sales_num"`
	Description string   `json:"description"`
	CoverKey    string   `json:"cover_key"`
	ImageKeys   []string `json:"image_keys"`
}

type GoodsListItem struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	SalePrice uint32 `json:"sale_price"`
	Stock     uint32 `json:"stock"`
	SalesNum  uint32 `json:"sales_num"`
	CoverKey  string `json:"cover_key"`
}

type ListGoodsResponse struct {
	Items      []*GoodsListItem `json:"items"`
	NextCursor uint64           `json:"next_cursor"`
	HasMore    bool             `json:"has_more"`
}

type RankItem struct {
	GoodsID  uint64  `json:"goods_id"`
	SalesNum float64 `json:"sales_num"`
}

// CreateGoodsRequest 新增商品，价格单位元，落库转换为分
type CreateGoodsRequest struct {
	Name          string  `form:"name" binding:"required,max=30"`
	CateID        uint64  `form:"cate_id" binding:"required"`
	BrandID       uint64  `form:"brand_id" binding:"required"`
	PurchasePrice float64 `form:"purchase_price" binding:"required,gte=0.01,lte=999999.99"`
	SalePrice     float64 `form:"sale_price" binding:"required,gte=0.01,lte=999999.99"`
	Stock         uint32  `form:"stock" binding:"required,min=1,max=100000"`
	Description   string  `form:"description" binding:"required,min=10,max=500"`
}

type EditGoodsRequest struct {
	Name          string  `json:"name" binding:"required,max=30"`
	PurchasePrice float64 `json:"purchase_price" binding:"required,gte=0.01,lte=999999.99"`
	SalePrice     float64 `json:"sale_price" binding:"required,gte=0.01,lte=999999.99"`
	Stock         uint32  `json:"stock" binding:"required,min=1,max=100000"`
	Description   string  `json:"description" binding:"required,min=10,max=500"`
}

type CreateNameRequest struct {
	Name string `json:"name" binding:"required,max=20"`
}
