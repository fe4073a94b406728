package initializers

import (
	"log"

	"github.com/silvaronna/marketplace-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.Product{}, &models.CartRecord{})
	log.Println("Database synced successfully.")
}
