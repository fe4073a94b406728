package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/silvaronna/marketplace-api/controllers"
)

func CartRoutes(server *gin.Engine, controller *controllers.CartController) {
	carts := server.Group("/carts")
	{
		// add/remove are registered before the catch-all get, mirroring the
		// route precedence of the public API.
		carts.POST("/:username/add", controller.AddToCart)
		carts.POST("/:username/remove", controller.RemoveFromCart)
		carts.GET("/:username", controller.GetCart)
	}
}
