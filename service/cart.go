package service

import (
	"context"
	"errors"

	"coopmini/dao"
	"coopmini/models"
	"coopmini/pkg/response"
	"coopmini/types"

	"gorm.io/gorm"
)

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	Add(ctx context.Context, userID int, opt *types.AddCartItemRequest) (*models.CartItem, error)
	SetQuantity(ctx context.Context, userID, productID, quantity int) (*models.CartItem, error)
	Remove(ctx context.Context, userID, productID int) error
	List(ctx context.Context, userID int) ([]models.CartItem, error)
}

type CartService struct {
	CartRepo    *dao.Cart
	ProductRepo *dao.Product
}

func NewCartService(cartRepo *dao.Cart, productRepo *dao.Product) ICartService {
	return &CartService{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
	}
}

// Add 加购：商品必须存在，重复加购数量累加
func (s *CartService) Add(ctx context.Context, userID int, opt *types.AddCartItemRequest) (*models.CartItem, error) {
	if _, err := s.ProductRepo.FindById(ctx, opt.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.BadRequest("Product does not exist")
		}
		return nil, err
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: opt.ProductID,
		Quantity:  opt.Quantity,
	}
	if err := s.CartRepo.Upsert(ctx, item); err != nil {
		return nil, err
	}

	return s.CartRepo.FindByUserProduct(ctx, userID, opt.ProductID)
}

func (s *CartService) SetQuantity(ctx context.Context, userID, productID, quantity int) (*models.CartItem, error) {
	affected, err := s.CartRepo.SetQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, response.NotFound("Cart item not found")
	}
	return s.CartRepo.FindByUserProduct(ctx, userID, productID)
}

func (s *CartService) Remove(ctx context.Context, userID, productID int) error {
	return s.CartRepo.Remove(ctx, userID, productID)
}

func (s *CartService) List(ctx context.Context, userID int) ([]models.CartItem, error) {
	return s.CartRepo.ListByUser(ctx, userID)
}
