package repositories

import "github.com/silvaronna/marketplace-api/models"

// Lookup methods return (nil, nil) when the record is absent; services turn
// that into the domain error they need.

type UserRepository interface {
	GetAll() ([]models.User, error)
	FindByUsername(username string) (*models.User, error)
	Add(user models.User) (*models.User, error)
	Update(user *models.User) error
	Delete(username string) (*models.User, error)
}

type ProductRepository interface {
	// GetAll returns every product, or only those of the given owner when
	// owner is non-empty.
	GetAll(owner string) ([]models.Product, error)
	FindByName(name string) (*models.Product, error)
	Add(product models.Product) (*models.Product, error)
	// Update replaces the product currently stored under name; the product
	// itself may carry a new name.
	Update(name string, product models.Product) (*models.Product, error)
	Delete(name string) (*models.Product, error)
}

type CartRepository interface {
	// GetCart returns the user's cart, creating an empty one on first access.
	GetCart(username string) (*models.Cart, error)
	// UpdateCart replaces the cart's item list wholesale.
	UpdateCart(username string, cart models.Cart) (*models.Cart, error)
}
