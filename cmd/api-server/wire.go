//go:build wireinject
// +build wireinject

package main

import (
	"coopmini/config"
	"coopmini/dao"
	"coopmini/dao/cache"
	"coopmini/handler"
	"coopmini/pkg/client"
	"coopmini/pkg/database"
	"coopmini/pkg/oss"
	"coopmini/server"
	"coopmini/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		database.NewDB,
		client.NewRedisClient,
		config.ProvideOssConfig,
		oss.NewOssClient,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.Order), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
