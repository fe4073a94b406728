package repositories

import (
	"errors"

	"github.com/silvaronna/marketplace-api/models"
	"gorm.io/gorm"
)

type gormProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) GetAll(owner string) ([]models.Product, error) {
	query := r.db
	if owner != "" {
		query = query.Where("owner = ?", owner)
	}

	var products []models.Product
	if result := query.Find(&products); result.Error != nil {
		return nil, result.Error
	}
	return products, nil
}

func (r *gormProductRepository) FindByName(name string) (*models.Product, error) {
	var product models.Product
	result := r.db.Where("product_name = ?", name).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &product, nil
}

func (r *gormProductRepository) Add(product models.Product) (*models.Product, error) {
	if result := r.db.Create(&product); result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

func (r *gormProductRepository) Update(name string, product models.Product) (*models.Product, error) {
	existing, err := r.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if result := r.db.Save(&product); result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

func (r *gormProductRepository) Delete(name string) (*models.Product, error) {
	product, err := r.FindByName(name)
	if err != nil || product == nil {
		return nil, err
	}
	if result := r.db.Delete(product); result.Error != nil {
		return nil, result.Error
	}
	return product, nil
}
