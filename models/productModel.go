package models

import "time"

type Product struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Name      string    `json:"product_name" gorm:"column:product_name;uniqueIndex;size:191"`
	Category  string    `json:"product_category" gorm:"column:product_category"`
	Price     float64   `json:"price"`
	Owner     string    `json:"owner" gorm:"index;size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductInput is the payload for both create and update; update re-validates
// the full payload, so the same shape serves both.
type ProductInput struct {
	Username string  `json:"username"`
	Name     string  `json:"product_name"`
	Category string  `json:"product_category"`
	Price    float64 `json:"price"`
}
