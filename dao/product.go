package dao

import (
	"context"

	"coopmini/models"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

func (p *Product) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.Db.WithContext(ctx).Order("id").Find(&products).Error
	return products, err
}

// FindByCode 商品编码查询
func (p *Product) FindByCode(ctx context.Context, code string) (*models.Product, error) {
	return p.Repo.FindByWhere(ctx, "code = ?", code)
}

// IsCodeExist 判断商品编码是否被占用，excludeID 用于更新时排除自身
func (p *Product) IsCodeExist(ctx context.Context, code string, excludeID int) bool {
	var count int64
	query := p.Db.WithContext(ctx).Model(&models.Product{}).Where("code = ?", code)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}
