package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/silvaronna/marketplace-api/controllers"
)

func UserRoutes(server *gin.Engine, controller *controllers.UserController) {
	users := server.Group("/users")
	{
		users.GET("", controller.GetAllUsers)
		users.POST("", controller.AddUser)
		users.PATCH("/:username", controller.UpdateUser)
		users.DELETE("/:username", controller.DeleteUser)
	}
}
