package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/silvaronna/marketplace-api/controllers"
)

func ProductRoutes(server *gin.Engine, controller *controllers.ProductController) {
	products := server.Group("/products")
	{
		products.GET("", controller.GetProducts)
		products.POST("", controller.CreateProduct)
		products.GET("/:product_name", controller.GetProductByName)
		products.PUT("/:product_name", controller.UpdateProduct)
		products.DELETE("/:product_name", controller.DeleteProduct)
	}
}
