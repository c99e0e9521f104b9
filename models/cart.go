package models

import "time"

// CartItem 对应数据库中的 cart_items 表
// (user_id, product_id) 唯一，重复加购走数量累加
type CartItem struct {
	ID        int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    int       `gorm:"not null;uniqueIndex:idx_user_product;column:user_id" json:"user_id"`
	ProductID int       `gorm:"not null;uniqueIndex:idx_user_product;column:product_id" json:"product_id"`
	Quantity  int       `gorm:"default:1;not null;column:quantity" json:"quantity"` // Quantity: 数量，始终 >= 1
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
