package dao

import (
	"context"

	"coopmini/models"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

// ListByUser 用户自己的订单，明细与商品摘要一并带出，按时间倒序
func (o *Order) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	var orders []models.Order
	err := o.Db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// ListAll 管理端查全部订单，附带下单用户
func (o *Order) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := o.Db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (o *Order) FindWithItems(ctx context.Context, orderID int) (*models.Order, error) {
	var order models.Order
	err := o.Db.WithContext(ctx).
		Preload("Items").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus 覆盖订单状态，返回影响行数
func (o *Order) UpdateStatus(ctx context.Context, orderID int, status string) (int64, error) {
	result := o.Db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// DeleteWithItems 先删明细再删订单，同一事务内完成
func (o *Order) DeleteWithItems(ctx context.Context, orderID int) error {
	return o.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, orderID).Error
	})
}
