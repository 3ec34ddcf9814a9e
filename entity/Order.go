package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerName  string  `json:"customerName"`
	TableNumber   string  `json:"tableNumber"`
	Notes         string  `json:"notes"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`

	// Timestamp doubles as creation time and last status change; CreatedAt
	// keeps the original order age.
	Timestamp time.Time `json:"timestamp"`

	Items []OrderItem `json:"items"`
}
