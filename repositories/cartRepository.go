package repositories

import (
	"encoding/json"
	"errors"

	"github.com/silvaronna/marketplace-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type gormCartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &gormCartRepository{db: db}
}

func (r *gormCartRepository) GetCart(username string) (*models.Cart, error) {
	var record models.CartRecord
	result := r.db.Where("username = ?", username).First(&record)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
		record = models.CartRecord{Username: username, Items: datatypes.JSON("[]")}
		if err := r.db.Create(&record).Error; err != nil {
			return nil, err
		}
	}
	return recordToCart(record)
}

func (r *gormCartRepository) UpdateCart(username string, cart models.Cart) (*models.Cart, error) {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	// Make sure the row exists, then replace the item list in one statement.
	if _, err := r.GetCart(username); err != nil {
		return nil, err
	}
	result := r.db.Model(&models.CartRecord{}).
		Where("username = ?", username).
		Update("items", datatypes.JSON(payload))
	if result.Error != nil {
		return nil, result.Error
	}

	return &models.Cart{Username: username, Items: items}, nil
}

func recordToCart(record models.CartRecord) (*models.Cart, error) {
	cart := models.Cart{Username: record.Username, Items: []models.CartItem{}}
	if len(record.Items) > 0 {
		if err := json.Unmarshal(record.Items, &cart.Items); err != nil {
			return nil, err
		}
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}
