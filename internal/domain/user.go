package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes platform administrators from customers
type UserType string

const (
	UserTypeAdmin    UserType = "ADMIN"
	UserTypeCustomer UserType = "CUSTOMER"
)

// Display returns the human-readable label for the user type
func (t UserType) Display() string {
	switch t {
	case UserTypeAdmin:
		return "Administrator"
	case UserTypeCustomer:
		return "Customer"
	default:
		return string(t)
	}
}

// Valid reports whether the value is a known user type
func (t UserType) Valid() bool {
	return t == UserTypeAdmin || t == UserTypeCustomer
}

// User is a platform account. Users own content and projects.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string     `gorm:"type:varchar(150);not null;uniqueIndex:uq_users_username" json:"username"`
	UserType  UserType   `gorm:"type:varchar(20);not null;index:idx_users_user_type" json:"userType"`
	LastLogin *time.Time `gorm:"" json:"lastLogin,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
