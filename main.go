package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/silvaronna/marketplace-api/config"
	"github.com/silvaronna/marketplace-api/controllers"
	"github.com/silvaronna/marketplace-api/initializers"
	"github.com/silvaronna/marketplace-api/logger"
	"github.com/silvaronna/marketplace-api/middlewares"
	"github.com/silvaronna/marketplace-api/repositories"
	"github.com/silvaronna/marketplace-api/routes"
	"github.com/silvaronna/marketplace-api/services"
)

func main() {
	initializers.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	logger.Initialize(cfg.Env)

	userRepo, productRepo, cartRepo := buildRepositories(cfg)

	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, userRepo)
	cartService := services.NewCartService(cartRepo, userRepo)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.RequestLogger())

	routes.DefaultRoutes(server)
	routes.UserRoutes(server, controllers.NewUserController(userService))
	routes.ProductRoutes(server, controllers.NewProductController(productService))
	routes.CartRoutes(server, controllers.NewCartController(cartService))

	server.Run(":" + cfg.Port)
}

// buildRepositories selects the storage backend: the flat JSON document
// store by default, or MySQL through GORM when STORAGE_DRIVER=mysql.
func buildRepositories(cfg config.Config) (repositories.UserRepository, repositories.ProductRepository, repositories.CartRepository) {
	if cfg.StorageDriver == "mysql" {
		initializers.ConnectToDB(cfg.DatabaseDSN)
		initializers.SyncDatabase()
		return repositories.NewUserRepository(initializers.DB),
			repositories.NewProductRepository(initializers.DB),
			repositories.NewCartRepository(initializers.DB)
	}

	store := repositories.NewFileStore(cfg.DataFile)
	return repositories.NewFileUserRepository(store),
		repositories.NewFileProductRepository(store),
		repositories.NewFileCartRepository(store)
}
