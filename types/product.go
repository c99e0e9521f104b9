package types

// CreateProductRequest 管理端建品，随 multipart 表单提交，图片字段单独处理
type CreateProductRequest struct {
	Code          string  `json:"code" form:"code" binding:"required"`
	Name          string  `json:"name" form:"name" binding:"required"`
	Description   string  `json:"description" form:"description"`
	OriginalPrice float64 `json:"original_price" form:"original_price" binding:"required,gt=0"`
	SalePrice     float64 `json:"sale_price" form:"sale_price" binding:"gte=0"`
}

// UpdateProductRequest 部分更新，指针字段区分 "未提交" 与 "清空"
type UpdateProductRequest struct {
	Code          *string  `json:"code" form:"code"`
	Name          *string  `json:"name" form:"name"`
	Description   *string  `json:"description" form:"description"`
	OriginalPrice *float64 `json:"original_price" form:"original_price"`
	SalePrice     *float64 `json:"sale_price" form:"sale_price"`
}
