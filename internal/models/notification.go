package models

import "time"

// Notification types.
const (
	NotificationOrderCreated       = "order_created"
	NotificationOrderStatusChanged = "order_status_changed"
	NotificationNewOrderAdmin      = "new_order_admin"
)

// Notification is addressed to exactly one user. Title and Message are
// rendered at creation and never change afterwards.
type Notification struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string     `json:"userId" gorm:"type:varchar(36);index;not null"`
	Type        string     `json:"type" gorm:"type:varchar(32);not null"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Message     string     `json:"message" gorm:"type:text;not null"`
	OrderID     *string    `json:"orderId,omitempty" gorm:"type:varchar(36)"`
	OrderNumber string     `json:"orderNumber,omitempty" gorm:"type:varchar(64)"`
	Status      string     `json:"status,omitempty" gorm:"type:varchar(16)"`
	IsRead      bool       `json:"isRead" gorm:"not null;default:false;index"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
