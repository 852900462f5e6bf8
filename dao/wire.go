//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCustomer,
	NewAdmin,
	NewCategory,
	NewBrand,
	NewGoods,
	NewImage,
	NewAddress,
	NewOrder,
	NewAppraisal,
	NewStocktake,
	wire.Bind(new(OrderStore), new(*Order)),
)
