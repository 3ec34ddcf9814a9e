package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	ImageID     string  `json:"imageId"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`

	// preload only when needed
	OrderItems []OrderItem `json:"-"`
}
