package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"coopmini/config"
	"coopmini/dao/cache"
	"coopmini/middleware"
	appctx "coopmini/pkg/context"
	"coopmini/pkg/response"
	"coopmini/service"
	"coopmini/types"

	"github.com/gin-gonic/gin"
)

type Product struct {
	Config         *config.Config
	ProductService service.IProductService
	Tokens         *cache.TokenStorage
}

func (p *Product) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret), p.Tokens)

	// 用户侧只读目录
	r.GET("/user/products", authorize, appctx.Wrap(p.List))

	admin := r.Group("/admin/products", authorize, middleware.AdminOnly())
	admin.GET("", appctx.Wrap(p.List))
	admin.GET("/:id", appctx.Wrap(p.Get))
	admin.POST("", appctx.Wrap(p.Create))
	admin.PUT("/:id", appctx.Wrap(p.Update))
	admin.DELETE("/:id", appctx.Wrap(p.Delete))
}

func (p *Product) List(c *gin.Context) error {
	products, err := p.ProductService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"products": products})
	return nil
}

func (p *Product) Get(c *gin.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest("Invalid product id")
	}

	product, err := p.ProductService.Get(c.Request.Context(), productID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"product": product})
	return nil
}

// formImage 取可选的 image 文件字段，JSON 请求或未携带文件时返回 nil
func formImage(c *gin.Context) (*multipart.FileHeader, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return nil, nil
	}
	image, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, response.BadRequest("Invalid image upload")
	}
	return image, nil
}

// Create 建品，multipart 表单提交，image 文件字段可选
func (p *Product) Create(c *gin.Context) error {
	var req types.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	image, err := formImage(c)
	if err != nil {
		return err
	}

	product, err := p.ProductService.Create(c.Request.Context(), &req, image)
	if err != nil {
		return err
	}
	response.Created(c, gin.H{"product": product})
	return nil
}

func (p *Product) Update(c *gin.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest("Invalid product id")
	}

	var req types.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.BadRequest(err.Error())
	}

	image, err := formImage(c)
	if err != nil {
		return err
	}

	product, err := p.ProductService.Update(c.Request.Context(), productID, &req, image)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"product": product})
	return nil
}

func (p *Product) Delete(c *gin.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest("Invalid product id")
	}

	if err := p.ProductService.Delete(c.Request.Context(), productID); err != nil {
		return err
	}
	response.Success(c, gin.H{"message": "Product deleted successfully"})
	return nil
}
