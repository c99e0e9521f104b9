package types

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
