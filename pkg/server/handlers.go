package server

import (
	"minimall/handler"
)

type Handlers struct {
	Auth        *handler.Auth
	Goods       *handler.Goods
	Catalog     *handler.Catalog
	Order       *handler.Order
	Fulfillment *handler.Fulfillment
	Address     *handler.Address
	Stocktake   *handler.Stocktake
}
