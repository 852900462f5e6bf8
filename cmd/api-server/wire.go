//go:build wireinject
// +build wireinject

package main

import (
	"minimall/config"
	"minimall/dao"
	"minimall/dao/cache"
	"minimall/handler"
	"minimall/pkg/client"
	"minimall/pkg/database"
	"minimall/pkg/server"
	"minimall/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Goods), "*"),
		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Fulfillment), "*"),
		wire.Struct(new(handler.Address), "*"),
		wire.Struct(new(handler.Stocktake), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
