package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"default:'customer'"` // customer, admin
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}

func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}
