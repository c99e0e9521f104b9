package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"testing"

	"coopmini/models"
	"coopmini/pkg/response"
	"coopmini/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductService struct {
	products map[int]*models.Product
	nextID   int
}

func newFakeProductService(products ...*models.Product) *fakeProductService {
	f := &fakeProductService{products: map[int]*models.Product{}, nextID: 1}
	for _, p := range products {
		f.products[p.ID] = p
		if p.ID >= f.nextID {
			f.nextID = p.ID + 1
		}
	}
	return f
}

func (f *fakeProductService) List(_ context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductService) Get(_ context.Context, productID int) (*models.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, response.NotFound("Product not found")
	}
	return p, nil
}

func (f *fakeProductService) Create(_ context.Context, opt *types.CreateProductRequest, _ *multipart.FileHeader) (*models.Product, error) {
	for _, p := range f.products {
		if p.Code == opt.Code {
			return nil, response.BadRequest("Product code already exists")
		}
	}
	p := &models.Product{
		ID:            f.nextID,
		Code:          opt.Code,
		Name:          opt.Name,
		OriginalPrice: opt.OriginalPrice,
		SalePrice:     opt.SalePrice,
		OnSale:        models.ComputeOnSale(opt.OriginalPrice, opt.SalePrice),
	}
	f.nextID++
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProductService) Update(ctx context.Context, productID int, opt *types.UpdateProductRequest, _ *multipart.FileHeader) (*models.Product, error) {
	p, err := f.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if opt.SalePrice != nil {
		p.SalePrice = *opt.SalePrice
		p.OnSale = models.ComputeOnSale(p.OriginalPrice, p.SalePrice)
	}
	return p, nil
}

func (f *fakeProductService) Delete(ctx context.Context, productID int) error {
	if _, err := f.Get(ctx, productID); err != nil {
		return err
	}
	delete(f.products, productID)
	return nil
}

func newProductEngine(svc *fakeProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &Product{Config: testConfig(), ProductService: svc}
	h.RegisterRouter(r)
	return r
}

func TestUserProducts_List(t *testing.T) {
	svc := newFakeProductService(&models.Product{ID: 1, Code: "P-1", Name: "Milk"})
	r := newProductEngine(svc)

	w := do(r, http.MethodGet, "/user/products", userToken(t, 1, false), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Milk")
}

func TestAdminProducts_RequiresAdmin(t *testing.T) {
	r := newProductEngine(newFakeProductService())

	w := doJSON(r, http.MethodPost, "/admin/products", userToken(t, 1, false),
		types.CreateProductRequest{Code: "P-1", Name: "Milk", OriginalPrice: 10})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminProducts_Create(t *testing.T) {
	r := newProductEngine(newFakeProductService())

	w := doJSON(r, http.MethodPost, "/admin/products", userToken(t, 1, true),
		types.CreateProductRequest{Code: "P-1", Name: "Milk", OriginalPrice: 100, SalePrice: 80})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"on_sale":true`)
}

func TestAdminProducts_DuplicateCode(t *testing.T) {
	svc := newFakeProductService(&models.Product{ID: 1, Code: "P-1"})
	r := newProductEngine(svc)

	w := doJSON(r, http.MethodPost, "/admin/products", userToken(t, 1, true),
		types.CreateProductRequest{Code: "P-1", Name: "Milk", OriginalPrice: 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product code already exists")
}

func TestAdminProducts_GetMissing(t *testing.T) {
	r := newProductEngine(newFakeProductService())

	w := do(r, http.MethodGet, "/admin/products/42", userToken(t, 1, true), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestAdminProducts_Delete(t *testing.T) {
	svc := newFakeProductService(&models.Product{ID: 2, Code: "P-2"})
	r := newProductEngine(svc)

	w := do(r, http.MethodDelete, "/admin/products/2", userToken(t, 1, true), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.products)
}
