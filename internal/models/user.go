package models

import "time"

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// NotificationPreferences are the per-user switches for outgoing notices.
// New accounts start from DefaultNotificationPreferences.
type NotificationPreferences struct {
	OrderUpdates bool `json:"orderUpdates"`
	Promotions   bool `json:"promotions"`
	Newsletter   bool `json:"newsletter"`
}

// DefaultNotificationPreferences returns the preferences of a new account.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{OrderUpdates: true, Promotions: true}
}

// User represents a customer or an administrator of the store.
type User struct {
	ID            string                  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FirstName     string                  `json:"firstName" gorm:"type:varchar(100);not null"`
	LastName      string                  `json:"lastName" gorm:"type:varchar(100);not null"`
	Email         string                  `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password      string                  `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	Phone         string                  `json:"phone" gorm:"type:varchar(50)"`
	Role          string                  `json:"role" gorm:"type:varchar(10);not null;default:user;index"`
	Newsletter    bool                    `json:"newsletter"`
	Notifications NotificationPreferences `json:"notifications" gorm:"embedded;embeddedPrefix:notify_"`
	Orders        []Order                 `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the reduced user shape embedded in admin order listings.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Summary returns the reduced view of the user.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}
