package handler

import (
	"net/http"
	"strconv"

	"coopmini/config"
	"coopmini/dao/cache"
	"coopmini/middleware"
	appctx "coopmini/pkg/context"
	"coopmini/pkg/response"
	"coopmini/service"
	"coopmini/types"

	"github.com/gin-gonic/gin"
)

type Cart struct {
	Config      *config.Config
	CartService service.ICartService
	Tokens      *cache.TokenStorage
}

func (h *Cart) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Tokens)

	g := r.Group("/user/cart")
	g.Use(authorize)
	g.GET("", appctx.Wrap(h.List))
	g.POST("", appctx.Wrap(h.Add))
	g.PUT("/:productId", appctx.Wrap(h.UpdateQuantity))
	g.DELETE("/:productId", appctx.Wrap(h.Remove))
}

func (h *Cart) Add(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	var req types.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("ProductId and quantity are required")
	}

	item, err := h.CartService.Add(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"cart_item": item})
	return nil
}

func (h *Cart) UpdateQuantity(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.BadRequest("Invalid product id")
	}

	var req types.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Quantity is required and must be greater than 0")
	}

	item, err := h.CartService.SetQuantity(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"cart_item": item})
	return nil
}

func (h *Cart) Remove(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.BadRequest("Invalid product id")
	}

	if err := h.CartService.Remove(c.Request.Context(), userID, productID); err != nil {
		return err
	}
	response.Success(c, gin.H{"message": "Remove product from cart successful"})
	return nil
}

func (h *Cart) List(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	items, err := h.CartService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"cart_items": items})
	return nil
}
