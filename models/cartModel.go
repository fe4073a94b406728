package models

import "gorm.io/datatypes"

type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is the domain shape used by services and the file store: one cart
// per buyer, at most one line item per productId.
type Cart struct {
	Username string     `json:"username"`
	Items    []CartItem `json:"items"`
}

// CartItemInput is the add/remove payload. Quantity is a pointer so that an
// absent field can default to 1; fractional values truncate toward zero.
type CartItemInput struct {
	ProductID string   `json:"productId"`
	Quantity  *float64 `json:"quantity"`
}

// CartRecord is the relational shape of a cart. The line-item list lives in
// a JSON column and is replaced wholesale on every write, never patched.
type CartRecord struct {
	ID       uint           `gorm:"primaryKey"`
	Username string         `gorm:"uniqueIndex;size:64"`
	Items    datatypes.JSON `gorm:"type:json"`
}

func (CartRecord) TableName() string {
	return "carts"
}
