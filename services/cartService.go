package services

import (
	"strings"

	"github.com/silvaronna/marketplace-api/apperrors"
	"github.com/silvaronna/marketplace-api/models"
	"github.com/silvaronna/marketplace-api/repositories"
)

type CartService struct {
	carts repositories.CartRepository
	users repositories.UserRepository
}

func NewCartService(carts repositories.CartRepository, users repositories.UserRepository) *CartService {
	return &CartService{carts: carts, users: users}
}

func assertBuyer(user *models.User) error {
	if user == nil {
		return apperrors.NotFound("user not found")
	}
	if user.Role != models.RoleBuyer {
		return apperrors.Forbidden("invalid role, only buyers have a cart")
	}
	return nil
}

// validateCartPayload normalizes the add/remove payload. Quantity defaults
// to 1 when absent and truncates toward zero otherwise.
func validateCartPayload(input models.CartItemInput) (string, int, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return "", 0, apperrors.Validation("productId is required and must be a non-empty string")
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = int(*input.Quantity)
	}
	if quantity <= 0 {
		return "", 0, apperrors.Validation("quantity must be greater than zero")
	}

	return input.ProductID, quantity, nil
}

func (s *CartService) requireBuyer(username string) error {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return err
	}
	return assertBuyer(user)
}

func (s *CartService) GetCart(username string) (*models.Cart, error) {
	if err := s.requireBuyer(username); err != nil {
		return nil, err
	}
	return s.carts.GetCart(username)
}

func (s *CartService) AddToCart(username string, input models.CartItemInput) (*models.Cart, error) {
	productID, quantity, err := validateCartPayload(input)
	if err != nil {
		return nil, err
	}

	if err := s.requireBuyer(username); err != nil {
		return nil, err
	}

	cart, err := s.carts.GetCart(username)
	if err != nil {
		return nil, err
	}

	items := append([]models.CartItem{}, cart.Items...)
	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{ProductID: productID, Quantity: quantity})
	}

	return s.carts.UpdateCart(username, models.Cart{Username: username, Items: items})
}

func (s *CartService) RemoveFromCart(username string, input models.CartItemInput) (*models.Cart, error) {
	productID, quantity, err := validateCartPayload(input)
	if err != nil {
		return nil, err
	}

	if err := s.requireBuyer(username); err != nil {
		return nil, err
	}

	cart, err := s.carts.GetCart(username)
	if err != nil {
		return nil, err
	}

	items := append([]models.CartItem{}, cart.Items...)
	idx := -1
	for i := range items {
		if items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.NotFound("product not found in cart")
	}

	items[idx].Quantity -= quantity
	if items[idx].Quantity <= 0 {
		// Draining a line item removes it; a negative quantity is never kept.
		items = append(items[:idx], items[idx+1:]...)
	}

	return s.carts.UpdateCart(username, models.Cart{Username: username, Items: items})
}
