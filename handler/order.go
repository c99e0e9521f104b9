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

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
	Tokens       *cache.TokenStorage
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.Tokens)

	r.POST("/user/cart/checkout", authorize, appctx.Wrap(h.Checkout))
	r.GET("/user/orders", authorize, appctx.Wrap(h.ListOwn))
	r.DELETE("/user/orders/:orderId", authorize, appctx.Wrap(h.DeleteOwn))

	admin := r.Group("/admin/orders", authorize, middleware.AdminOnly())
	admin.GET("", appctx.Wrap(h.ListAll))
	admin.PATCH("/:orderId/status", appctx.Wrap(h.UpdateStatus))
}

func (h *Order) Checkout(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	order, err := h.OrderService.Checkout(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"order": order})
	return nil
}

func (h *Order) ListOwn(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	orders, err := h.OrderService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"orders": orders})
	return nil
}

func (h *Order) DeleteOwn(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Unauthorized")
	}

	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		return response.BadRequest("Invalid order id")
	}

	if err := h.OrderService.DeleteOwn(c.Request.Context(), userID, orderID); err != nil {
		return err
	}
	response.Success(c, gin.H{"message": "Order deleted successfully"})
	return nil
}

func (h *Order) ListAll(c *gin.Context) error {
	orders, err := h.OrderService.ListAll(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"orders": orders})
	return nil
}

func (h *Order) UpdateStatus(c *gin.Context) error {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		return response.BadRequest("Invalid order id")
	}

	var req types.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Missing field: status")
	}

	order, err := h.OrderService.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"order": order})
	return nil
}
