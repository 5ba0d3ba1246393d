package models

import (
	"time"
)

// MenuItem has no DeletedAt column on purpose: menu removal is a hard delete,
// historical orders keep their own name/price snapshots.
type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"unique;not null"`
	Category     string    `json:"category" gorm:"not null"`
	Price        float64   `json:"price" gorm:"not null"`
	Availability bool      `json:"availability" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuCategory string

const (
	CategoryAppetizers MenuCategory = "Appetizers"
	CategoryMainCourse MenuCategory = "Main Course"
	CategoryDesserts   MenuCategory = "Desserts"
	CategoryBeverages  MenuCategory = "Beverages"
)

func ValidCategory(category string) bool {
	switch MenuCategory(category) {
	case CategoryAppetizers, CategoryMainCourse, CategoryDesserts, CategoryBeverages:
		return true
	}
	return false
}
