package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Marketplace API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

USER
- GET "/users" - List all users
- POST "/users" - Create a user
- PATCH "/users/:username" - Partially update a user
- DELETE "/users/:username" - Delete a user

PRODUCT
- GET "/products?username=..." - List products (optional owner filter)
- POST "/products" - Create a product (sellers only)
- GET "/products/:product_name?username=..." - Get product by name
- PUT "/products/:product_name" - Update a product (owner only)
- DELETE "/products/:product_name" - Delete a product (owner only)

CART
- GET "/carts/:username" - Get a buyer's cart
- POST "/carts/:username/add" - Add a product to the cart
- POST "/carts/:username/remove" - Remove a product from the cart

MISC
- GET "/greeting/:user" - Personal greeting
- GET "/aboutus/team" - About the team`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func GetGreeting(ctx *gin.Context) {
	user := ctx.Param("user")

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Hello " + user + ", welcome to the Marketplace API!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"data": gin.H{
			"greeting": "This is a small demonstration of our API.",
			"user":     user,
			"status":   "active",
		},
	})
}

func AboutTeam(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte("<h1>About the Team</h1><p>We are a small team building a multi-role marketplace backend.</p>"))
}

func AboutProject(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte("<h1>About the Project</h1><p>A REST API for users, products and carts with pluggable storage.</p>"))
}

func AboutContact(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte("<h1>Contact</h1><p>Open an issue on the repository to reach us.</p>"))
}

func NotFoundPage(ctx *gin.Context) {
	ctx.Data(http.StatusNotFound, "text/html; charset=utf-8",
		[]byte("<h1>404 Not Found</h1><p>The page you are looking for does not exist.</p>"))
}
