//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserService,
	NewProductService,
	NewCartService,
	NewOrderService,
	NewOssService,
)
