package service

import (
	"minimall/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(GoodsService), "*"),
	wire.Bind(new(IGoodsService), new(*GoodsService)),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(AddressService), "*"),
	wire.Bind(new(IAddressService), new(*AddressService)),

	wire.Struct(new(StocktakeService), "*"),
	wire.Bind(new(IStocktakeService), new(*StocktakeService)),

	wire.Bind(new(SalesRank), new(*cache.GoodsCache)),

	NewOssService,
	wire.Bind(new(IOssService), new(*OssService)),
)
