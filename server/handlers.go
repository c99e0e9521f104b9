package server

import (
	"coopmini/handler"
)

type Handlers struct {
	User    *handler.User
	Product *handler.Product
	Cart    *handler.Cart
	Order   *handler.Order
}
