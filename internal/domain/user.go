package domain

import "time"

type UserRole string

const (
	RoleGuest UserRole = "guest"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Name         string    `gorm:"type:varchar(200)" json:"name"`
	Phone        string    `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Role         UserRole  `gorm:"type:varchar(20);default:'guest'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
