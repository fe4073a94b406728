package services

import (
	"math"
	"strings"
	"time"

	"github.com/silvaronna/marketplace-api/apperrors"
	"github.com/silvaronna/marketplace-api/models"
	"github.com/silvaronna/marketplace-api/repositories"
)

type ProductService struct {
	products repositories.ProductRepository
	users    repositories.UserRepository
}

func NewProductService(products repositories.ProductRepository, users repositories.UserRepository) *ProductService {
	return &ProductService{products: products, users: users}
}

// assertSeller gates the mutating product operations.
func assertSeller(user *models.User) error {
	if user == nil {
		return apperrors.NotFound("user not found")
	}
	if user.Role != models.RoleSeller {
		return apperrors.Forbidden("access denied, only sellers can manage products")
	}
	return nil
}

// assertValidUser gates the read operations, open to buyers and sellers.
func assertValidUser(user *models.User) error {
	if user == nil {
		return apperrors.NotFound("user not found")
	}
	if !models.ValidRole(user.Role) {
		return apperrors.Forbidden("invalid role")
	}
	return nil
}

// validateProductPayload trims and checks the full payload; both create and
// update go through it.
func validateProductPayload(input models.ProductInput) (models.ProductInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, apperrors.Validation("product_name is required and must be a non-empty string")
	}

	input.Category = strings.TrimSpace(input.Category)
	if input.Category == "" {
		return input, apperrors.Validation("product_category is required and must be a non-empty string")
	}

	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) || input.Price <= 0 {
		return input, apperrors.Validation("price must be a positive number")
	}

	return input, nil
}

func (s *ProductService) GetAllProducts(username, owner string) ([]models.Product, error) {
	if username == "" {
		return nil, apperrors.Validation("username is required as a query parameter")
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if err := assertValidUser(user); err != nil {
		return nil, err
	}

	return s.products.GetAll(owner)
}

func (s *ProductService) GetProductByName(productName, username string) (*models.Product, error) {
	if username == "" {
		return nil, apperrors.Validation("username is required as a query parameter")
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if err := assertValidUser(user); err != nil {
		return nil, err
	}

	product, err := s.products.FindByName(productName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFound("product not found")
	}
	return product, nil
}

func (s *ProductService) CreateProduct(input models.ProductInput) (*models.Product, error) {
	if input.Username == "" {
		return nil, apperrors.Validation("username is required")
	}

	input, err := validateProductPayload(input)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if err := assertSeller(user); err != nil {
		return nil, err
	}

	existing, err := s.products.FindByName(input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("product name already exists")
	}

	now := time.Now().UTC()
	product := models.Product{
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		Owner:     input.Username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.products.Add(product)
}

func (s *ProductService) UpdateProduct(productName string, input models.ProductInput) (*models.Product, error) {
	if input.Username == "" {
		return nil, apperrors.Validation("username is required")
	}

	input, err := validateProductPayload(input)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if err := assertSeller(user); err != nil {
		return nil, err
	}

	product, err := s.products.FindByName(productName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFound("product not found")
	}

	if product.Owner != input.Username {
		return nil, apperrors.Forbidden("you can only update your own products")
	}

	// A renamed product must not collide with an existing one.
	if input.Name != productName {
		existing, err := s.products.FindByName(input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.Conflict("new product name already exists")
		}
	}

	product.Name = input.Name
	product.Category = input.Category
	product.Price = input.Price
	product.UpdatedAt = time.Now().UTC()

	return s.products.Update(productName, *product)
}

func (s *ProductService) DeleteProduct(productName, username string) (*models.Product, error) {
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if err := assertSeller(user); err != nil {
		return nil, err
	}

	product, err := s.products.FindByName(productName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFound("product not found")
	}

	if product.Owner != username {
		return nil, apperrors.Forbidden("you can only delete your own products")
	}

	return s.products.Delete(productName)
}
