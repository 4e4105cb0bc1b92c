package models

import "time"

// Order statuses. Any admin may move an order to any of these.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid order status in lifecycle order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus reports whether s is one of OrderStatuses.
func IsValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// Payment methods accepted at checkout.
const (
	PaymentCreditCard     = "credit_card"
	PaymentCashOnDelivery = "cash_on_delivery"
	PaymentBankTransfer   = "bank_transfer"
)

// OrderItem is a snapshot of a product line at purchase time.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	OrderID   string  `json:"-" gorm:"type:varchar(36);index;not null"`
	ProductID string  `json:"productId" gorm:"type:varchar(36)"`
	Name      string  `json:"name" gorm:"type:varchar(255)"`
	Price     float64 `json:"price"` // Price at the time of order
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty" gorm:"type:text"`
}

// LineTotal is price times quantity.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// ShippingAddress is stored denormalized on the order.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

// Order represents a customer order.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"userId" gorm:"type:varchar(36);index;not null"`
	OrderNumber     string          `json:"orderNumber" gorm:"uniqueIndex;type:varchar(64);not null"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"type:varchar(32);not null"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
	Status          string          `json:"status" gorm:"type:varchar(16);not null;default:pending;index"`
	CreatedBy       *string         `json:"createdById,omitempty" gorm:"type:varchar(36)"`
	UpdatedBy       *string         `json:"updatedById,omitempty" gorm:"type:varchar(36)"`
	Notes           string          `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	// Populated only by admin listings.
	User    *User `json:"-" gorm:"foreignKey:UserID"`
	Creator *User `json:"-" gorm:"foreignKey:CreatedBy"`
	Updater *User `json:"-" gorm:"foreignKey:UpdatedBy"`
}

// AdminOrder is the admin view of an order with its people attached.
type AdminOrder struct {
	Order
	User      *UserSummary `json:"user"`
	CreatedBy *UserSummary `json:"createdBy"`
	UpdatedBy *UserSummary `json:"updatedBy"`
}

// ToAdmin converts an order with preloaded users into its admin view.
func (o Order) ToAdmin() AdminOrder {
	return AdminOrder{
		Order:     o,
		User:      o.User.Summary(),
		CreatedBy: o.Creator.Summary(),
		UpdatedBy: o.Updater.Summary(),
	}
}
