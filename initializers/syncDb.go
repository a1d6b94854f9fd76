package initializers

import (
	"log"

	"github.com/novamart/novamart-api/models"
)

func SyncDatabase() {
	if DB == nil {
		return
	}
	DB.AutoMigrate(&models.Product{}, &models.ProductImage{})
	log.Println("Database synced successfully.")
}
