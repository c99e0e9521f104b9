package handler

import (
	"context"
	"net/http"
	"testing"

	"coopmini/models"
	"coopmini/pkg/response"
	"coopmini/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartService 内存购物车，重复加购按数量累加
type fakeCartService struct {
	products map[int]*models.Product
	items    map[int]map[int]*models.CartItem // userID -> productID -> item
}

func newFakeCartService(products ...*models.Product) *fakeCartService {
	f := &fakeCartService{
		products: map[int]*models.Product{},
		items:    map[int]map[int]*models.CartItem{},
	}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeCartService) Add(_ context.Context, userID int, opt *types.AddCartItemRequest) (*models.CartItem, error) {
	if _, ok := f.products[opt.ProductID]; !ok {
		return nil, response.BadRequest("Product does not exist")
	}
	if f.items[userID] == nil {
		f.items[userID] = map[int]*models.CartItem{}
	}
	if item, ok := f.items[userID][opt.ProductID]; ok {
		item.Quantity += opt.Quantity
		return item, nil
	}
	item := &models.CartItem{UserID: userID, ProductID: opt.ProductID, Quantity: opt.Quantity}
	f.items[userID][opt.ProductID] = item
	return item, nil
}

func (f *fakeCartService) SetQuantity(_ context.Context, userID, productID, quantity int) (*models.CartItem, error) {
	item, ok := f.items[userID][productID]
	if !ok {
		return nil, response.NotFound("Cart item not found")
	}
	item.Quantity = quantity
	return item, nil
}

func (f *fakeCartService) Remove(_ context.Context, userID, productID int) error {
	delete(f.items[userID], productID)
	return nil
}

func (f *fakeCartService) List(_ context.Context, userID int) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range f.items[userID] {
		out = append(out, *item)
	}
	return out, nil
}

func newCartEngine(svc *fakeCartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &Cart{Config: testConfig(), CartService: svc}
	h.RegisterRouter(r)
	return r
}

func TestCartAdd_Accumulates(t *testing.T) {
	svc := newFakeCartService(&models.Product{ID: 7, OriginalPrice: 10})
	r := newCartEngine(svc)
	token := userToken(t, 1, false)

	w := doJSON(r, http.MethodPost, "/user/cart", token, types.AddCartItemRequest{ProductID: 7, Quantity: 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/user/cart", token, types.AddCartItemRequest{ProductID: 7, Quantity: 3})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, svc.items[1], 1, "repeat add must not create a second line")
	assert.Equal(t, 5, svc.items[1][7].Quantity)
}

func TestCartAdd_UnknownProduct(t *testing.T) {
	r := newCartEngine(newFakeCartService())

	w := doJSON(r, http.MethodPost, "/user/cart", userToken(t, 1, false), types.AddCartItemRequest{ProductID: 7, Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestCartAdd_InvalidQuantity(t *testing.T) {
	r := newCartEngine(newFakeCartService(&models.Product{ID: 7}))

	w := doJSON(r, http.MethodPost, "/user/cart", userToken(t, 1, false), gin.H{"product_id": 7, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartUpdateQuantity_NotInCart(t *testing.T) {
	r := newCartEngine(newFakeCartService(&models.Product{ID: 7}))

	w := doJSON(r, http.MethodPut, "/user/cart/7", userToken(t, 1, false), types.UpdateCartQuantityRequest{Quantity: 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartRemove(t *testing.T) {
	svc := newFakeCartService(&models.Product{ID: 7})
	r := newCartEngine(svc)
	token := userToken(t, 1, false)

	doJSON(r, http.MethodPost, "/user/cart", token, types.AddCartItemRequest{ProductID: 7, Quantity: 1})
	w := do(r, http.MethodDelete, "/user/cart/7", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.items[1])
}
