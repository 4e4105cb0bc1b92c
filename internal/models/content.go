package models

import "time"

// Team departments.
var TeamDepartments = []string{"management", "medical", "support", "marketing", "technical"}

// TeamMember is a staff entry on the about-us page.
type TeamMember struct {
	ID         string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       LocalizedText `json:"name" gorm:"embedded;embeddedPrefix:name_"`
	Position   LocalizedText `json:"position" gorm:"embedded;embeddedPrefix:position_"`
	Bio        LocalizedText `json:"bio" gorm:"embedded;embeddedPrefix:bio_"`
	Image      string        `json:"image" gorm:"type:text;not null"`
	Email      string        `json:"email,omitempty" gorm:"type:varchar(255)"`
	Phone      string        `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Department string        `json:"department" gorm:"type:varchar(32);index;not null"`
	Order      int           `json:"order" gorm:"column:sort_order;index"`
	IsActive   bool          `json:"isActive" gorm:"index"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// Message statuses.
const (
	MessageStatusNew  = "new"
	MessageStatusRead = "read"
)

// Message is a contact-form submission.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Subject   string    `json:"subject,omitempty" gorm:"type:varchar(255)"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"type:varchar(8);not null;default:new"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
