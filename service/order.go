package service

import (
	"context"
	"errors"
	"fmt"

	"coopmini/dao"
	"coopmini/models"
	"coopmini/pkg/response"
	"coopmini/pkg/snowflake"

	"gorm.io/gorm"
)

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	// Checkout 把购物车整体转成订单，原子完成
	Checkout(ctx context.Context, userID int) (*models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) (*models.Order, error)
	DeleteOwn(ctx context.Context, userID, orderID int) error
}

type OrderService struct {
	DB        *gorm.DB
	OrderRepo *dao.Order
	CartRepo  *dao.Cart
}

func NewOrderService(db *gorm.DB, orderRepo *dao.Order, cartRepo *dao.Cart) IOrderService {
	return &OrderService{
		DB:        db,
		OrderRepo: orderRepo,
		CartRepo:  cartRepo,
	}
}

// CartTotal 按结算口径汇总购物车金额：促销中取促销价，否则取原价
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total += item.Product.EffectivePrice() * float64(item.Quantity)
	}
	return total
}

// Checkout 单事务完成：读购物车 -> 算总额 -> 写订单与明细 -> 清空购物车。
// 任一步失败整体回滚，不会出现建了订单但购物车没清的中间态
func (s *OrderService) Checkout(ctx context.Context, userID int) (*models.Order, error) {
	var order *models.Order

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return response.BadRequest("Cart is empty")
		}
		for _, item := range items {
			if item.Product == nil {
				return fmt.Errorf("cart item %d references missing product %d", item.ID, item.ProductID)
			}
		}

		order = &models.Order{
			OrderSn:     fmt.Sprintf("%d", snowflake.GenID()),
			UserID:      userID,
			TotalAmount: CartTotal(items),
			Status:      models.OrderStatusPending,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.EffectivePrice(),
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}
		order.Items = orderItems

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	return s.OrderRepo.ListByUser(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.OrderRepo.ListAll(ctx)
}

// UpdateStatus 管理端推进订单状态，按状态机校验流转合法性
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) (*models.Order, error) {
	if !models.IsOrderStatus(status) || status == models.OrderStatusPending {
		return nil, response.BadRequest("Invalid status value")
	}

	order, err := s.OrderRepo.FindById(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Order not found")
		}
		return nil, err
	}

	if !models.CanTransition(order.Status, status) {
		return nil, response.BadRequest(
			fmt.Sprintf("Cannot change order status from %s to %s", order.Status, status))
	}

	if _, err := s.OrderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// DeleteOwn 仅订单归属人可删，且订单必须已到终态
func (s *OrderService) DeleteOwn(ctx context.Context, userID, orderID int) error {
	order, err := s.OrderRepo.FindById(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("Order not found")
		}
		return err
	}

	if order.UserID != userID {
		return response.Forbidden("Forbidden")
	}
	if !models.IsTerminalStatus(order.Status) {
		return response.BadRequest("Cannot delete order in current status")
	}

	return s.OrderRepo.DeleteWithItems(ctx, orderID)
}
