package dao

import (
	"context"

	"coopmini/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Cart struct {
	Repo[models.CartItem]
}

func NewCart(db *gorm.DB) *Cart {
	return &Cart{
		Repo: NewRepo[models.CartItem](db),
	}
}

// Upsert 加购：已有记录时数量累加，依赖 (user_id, product_id) 唯一键，
// 单条语句完成，避免并发加购彼此覆盖
func (c *Cart) Upsert(ctx context.Context, item *models.CartItem) error {
	return c.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + VALUES(quantity)"),
		}),
	}).Create(item).Error
}

// SetQuantity 覆盖数量，返回影响行数用于判断购物车里有没有这条
func (c *Cart) SetQuantity(ctx context.Context, userID, productID, quantity int) (int64, error) {
	result := c.Db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

func (c *Cart) Remove(ctx context.Context, userID, productID int) error {
	return c.Db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

// ListByUser 查购物车，带出商品信息
func (c *Cart) ListByUser(ctx context.Context, userID int) ([]models.CartItem, error) {
	var items []models.CartItem
	err := c.Db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	return items, err
}

func (c *Cart) FindByUserProduct(ctx context.Context, userID, productID int) (*models.CartItem, error) {
	return c.Repo.FindByWhere(ctx, "user_id = ? AND product_id = ?", userID, productID)
}
