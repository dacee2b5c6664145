package models

import "time"

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	OrderStatusNotProcessed OrderStatus = "Not Processed"
	OrderStatusProcessing   OrderStatus = "Processing"
	OrderStatusShipped      OrderStatus = "Shipped"
	OrderStatusDelivered    OrderStatus = "Delivered"
	OrderStatusCancelled    OrderStatus = "Cancelled"
	OrderStatusRefunded     OrderStatus = "Refunded"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"

	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodOnline PaymentMethod = "online"
)

// ValidTransitions is the forward-only order lifecycle, with Cancelled
// and Refunded reachable as terminal escapes from any non-terminal
// state. No-op and backward transitions are rejected.
var ValidTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNotProcessed: {OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusProcessing:   {OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusShipped:      {OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusDelivered:    {OrderStatusRefunded},
	OrderStatusCancelled:    {},
	OrderStatusRefunded:     {},
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range ValidTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllOrderStatuses lists every status in lifecycle order, for the admin
// dashboard's status picker.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusNotProcessed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusRefunded,
	}
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, status := range AllOrderStatuses() {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentMethodCOD, PaymentMethodOnline:
		return PaymentMethod(s), true
	}
	return "", false
}

// Order is an immutable snapshot of a purchase. Only OrderStatus and
// PaymentStatus change after creation.
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID        string        `gorm:"index;not null" json:"user_id"`
	User          User          `json:"buyer"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	OrderStatus   OrderStatus   `gorm:"type:VARCHAR(20);default:'Not Processed'" json:"orderStatus"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20)" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type OrderItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	OrderID         uint    `gorm:"index" json:"order_id"`
	ProductID       uint    `gorm:"index" json:"product_id"`
	Product         Product `json:"product"`
	ProductName     string  `json:"product_name"`
	ProductPhoto    string  `json:"product_photo"`
	Quantity        int     `json:"quantity"`
	PriceAtAddition float64 `json:"priceAtAddition"`
}

// IsTerminal reports whether the order can no longer move forward.
func (o *Order) IsTerminal() bool {
	return len(ValidTransitions[o.OrderStatus]) == 0
}
