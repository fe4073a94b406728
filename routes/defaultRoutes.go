package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/silvaronna/marketplace-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/greeting/:user", controllers.GetGreeting)

	aboutus := server.Group("/aboutus")
	{
		aboutus.GET("/team", controllers.AboutTeam)
		aboutus.GET("/project", controllers.AboutProject)
		aboutus.GET("/contact", controllers.AboutContact)
	}

	server.NoRoute(controllers.NotFoundPage)
}
