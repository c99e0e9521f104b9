package models

import "time"

// Product 对应数据库中的 products 表
type Product struct {
	ID            int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Code          string    `gorm:"size:64;uniqueIndex:idx_code;not null;column:code" json:"code"` // Code: 商品编码，全局唯一
	Name          string    `gorm:"size:255;not null;column:name" json:"name"`                     // Name: 商品名称
	Description   string    `gorm:"type:text;column:description" json:"description"`               // Description: 商品详细描述
	Image         string    `gorm:"size:512;default:'';column:image" json:"image"`                 // Image: 商品图 URL，可为空
	OriginalPrice float64   `gorm:"not null;column:original_price" json:"original_price"`          // OriginalPrice: 原价
	SalePrice     float64   `gorm:"default:0;not null;column:sale_price" json:"sale_price"`        // SalePrice: 促销价
	OnSale        bool      `gorm:"default:false;not null;column:on_sale" json:"on_sale"`          // OnSale: 派生字段，价格变更时重算
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// ComputeOnSale 促销标志的唯一计算口径：促销价大于 0 且低于原价
func ComputeOnSale(originalPrice, salePrice float64) bool {
	return salePrice > 0 && salePrice < originalPrice
}

// EffectivePrice 结算时使用的单价
func (p *Product) EffectivePrice() float64 {
	if p.OnSale {
		return p.SalePrice
	}
	return p.OriginalPrice
}
