package initializers

import (
	"context"
	"log"
	"os"

	"github.com/novamart/novamart-api/store"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB holds the product catalog connection. It stays nil in development
// when no database is configured; read endpoints then serve the embedded
// seed catalog and write endpoints refuse.
var DB *gorm.DB

// Orders is the order store selected at startup (durable or ephemeral).
var Orders store.OrderStore

func ConnectToDB() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		if IsProduction() {
			log.Fatal("DATABASE_DSN is not set")
		}
		log.Println("DATABASE_DSN not set, serving the seed product catalog.")
		return
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		if IsProduction() {
			log.Fatal("Failed to connect to database: ", err)
		}
		log.Println("Product database not reachable, serving the seed product catalog:", err)
		return
	}
	DB = db
}

func ConnectToOrderStore() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017/online_shopping"
	}
	database := os.Getenv("MONGODB_DATABASE")
	if database == "" {
		database = "online_shopping"
	}

	orders, err := store.Connect(context.Background(), store.Config{
		URI:        uri,
		Database:   database,
		Production: IsProduction(),
	})
	if err != nil {
		log.Fatal("Failed to connect to order store: ", err)
	}
	Orders = orders
}
