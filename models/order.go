package models

import "time"

// 订单状态集合
const (
	OrderStatusPending    = "PENDING"
	OrderStatusDelivering = "DELIVERING"
	OrderStatusDone       = "DONE"
	OrderStatusCancelled  = "CANCELLED"
)

// statusTransitions 订单状态机：PENDING -> DELIVERING -> DONE，
// CANCELLED 只能从 PENDING / DELIVERING 进入，终态不再流转
var statusTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusDelivering, OrderStatusCancelled},
	OrderStatusDelivering: {OrderStatusDone, OrderStatusCancelled},
	OrderStatusDone:       {},
	OrderStatusCancelled:  {},
}

func IsOrderStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition 判断订单状态能否从 from 流转到 to
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus 终态订单允许被用户删除
func IsTerminalStatus(s string) bool {
	return s == OrderStatusDone || s == OrderStatusCancelled
}

// Order 订单主表
type Order struct {
	ID          int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderSn     string    `gorm:"column:order_sn;type:varchar(32);not null;uniqueIndex:idx_order_sn" json:"order_sn"`
	UserID      int       `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	TotalAmount float64   `gorm:"column:total_amount;not null" json:"total_amount"` // TotalAmount: 下单时快照金额
	Status      string    `gorm:"column:status;type:varchar(16);not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单明细
type OrderItem struct {
	ID        int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID   int       `gorm:"not null;index:idx_order_id;column:order_id" json:"order_id"`
	ProductID int       `gorm:"not null;index:idx_product_id;column:product_id" json:"product_id"`
	Quantity  int       `gorm:"default:1;not null;column:quantity" json:"quantity"`
	Price     float64   `gorm:"not null;column:price" json:"price"` // Price: 冗余下单单价，锁定成交价
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
