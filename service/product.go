package service

import (
	"context"
	"errors"
	"mime/multipart"

	"coopmini/dao"
	"coopmini/models"
	"coopmini/pkg/log"
	"coopmini/pkg/response"
	"coopmini/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, productID int) (*models.Product, error)
	Create(ctx context.Context, opt *types.CreateProductRequest, image *multipart.FileHeader) (*models.Product, error)
	Update(ctx context.Context, productID int, opt *types.UpdateProductRequest, image *multipart.FileHeader) (*models.Product, error)
	Delete(ctx context.Context, productID int) error
}

type ProductService struct {
	ProductRepo *dao.Product
	OssService  IOssService
}

func NewProductService(productRepo *dao.Product, ossService IOssService) IProductService {
	return &ProductService{
		ProductRepo: productRepo,
		OssService:  ossService,
	}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.ProductRepo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, productID int) (*models.Product, error) {
	product, err := s.ProductRepo.FindById(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Product not found")
		}
		return nil, err
	}
	return product, nil
}

// Create 建品：编码唯一，促销标志由价格派生，图片可选
func (s *ProductService) Create(ctx context.Context, opt *types.CreateProductRequest, image *multipart.FileHeader) (*models.Product, error) {
	if s.ProductRepo.IsCodeExist(ctx, opt.Code, 0) {
		return nil, response.BadRequest("Product code already exists")
	}

	product := &models.Product{
		Code:          opt.Code,
		Name:          opt.Name,
		Description:   opt.Description,
		OriginalPrice: opt.OriginalPrice,
		SalePrice:     opt.SalePrice,
		OnSale:        models.ComputeOnSale(opt.OriginalPrice, opt.SalePrice),
	}

	if image != nil {
		uploaded, err := s.OssService.UploadImage(ctx, image)
		if err != nil {
			return nil, response.BadRequest(err.Error())
		}
		product.Image = uploaded.Url
	}

	if err := s.ProductRepo.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 建品失败时清掉已上传的孤儿图
			if product.Image != "" {
				if derr := s.OssService.DeleteByURL(ctx, product.Image); derr != nil {
					log.L.Warn("delete orphan image failed", zap.String("url", product.Image), zap.Error(derr))
				}
			}
			return nil, response.BadRequest("Product code already exists")
		}
		return nil, err
	}

	return product, nil
}

// Update 部分更新；换图时先落库新 URL，确认持久化成功后再删旧对象，
// 避免上传失败导致商品无图
func (s *ProductService) Update(ctx context.Context, productID int, opt *types.UpdateProductRequest, image *multipart.FileHeader) (*models.Product, error) {
	existing, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	if opt.Code != nil && *opt.Code != existing.Code {
		if s.ProductRepo.IsCodeExist(ctx, *opt.Code, productID) {
			return nil, response.BadRequest("Product code already exists")
		}
	}

	updates := map[string]any{}
	if opt.Code != nil {
		updates["code"] = *opt.Code
	}
	if opt.Name != nil {
		updates["name"] = *opt.Name
	}
	if opt.Description != nil {
		updates["description"] = *opt.Description
	}

	originalPrice := existing.OriginalPrice
	salePrice := existing.SalePrice
	if opt.OriginalPrice != nil {
		originalPrice = *opt.OriginalPrice
		updates["original_price"] = originalPrice
	}
	if opt.SalePrice != nil {
		salePrice = *opt.SalePrice
		updates["sale_price"] = salePrice
	}
	// 价格有变动就重算促销标志
	if opt.OriginalPrice != nil || opt.SalePrice != nil {
		updates["on_sale"] = models.ComputeOnSale(originalPrice, salePrice)
	}

	oldImage := existing.Image
	newImage := ""
	if image != nil {
		uploaded, err := s.OssService.UploadImage(ctx, image)
		if err != nil {
			return nil, response.BadRequest(err.Error())
		}
		newImage = uploaded.Url
		updates["image"] = newImage
	}

	if len(updates) > 0 {
		if _, err := s.ProductRepo.UpdateById(ctx, productID, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, response.BadRequest("Product code already exists")
			}
			return nil, err
		}
	}

	// 新图已持久化，旧对象可以安全删除
	if newImage != "" && oldImage != "" && s.OssService.IsManagedURL(oldImage) {
		if err := s.OssService.DeleteByURL(ctx, oldImage); err != nil {
			log.L.Warn("delete previous image failed", zap.String("url", oldImage), zap.Error(err))
		}
	}

	return s.Get(ctx, productID)
}

func (s *ProductService) Delete(ctx context.Context, productID int) error {
	product, err := s.Get(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.ProductRepo.DeleteById(ctx, productID); err != nil {
		return err
	}

	if product.Image != "" && s.OssService.IsManagedURL(product.Image) {
		if err := s.OssService.DeleteByURL(ctx, product.Image); err != nil {
			log.L.Warn("delete product image failed", zap.String("url", product.Image), zap.Error(err))
		}
	}
	return nil
}
