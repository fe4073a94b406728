package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/silvaronna/marketplace-api/models"
	"github.com/silvaronna/marketplace-api/services"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

func (cc *CartController) GetCart(ctx *gin.Context) {
	cart, err := cc.service.GetCart(ctx.Param("username"))
	if err != nil {
		sendError(ctx, err, "an error occurred while fetching the cart")
		return
	}

	sendSuccess(ctx, http.StatusOK, "Cart fetched successfully", cart)
}

func (cc *CartController) AddToCart(ctx *gin.Context) {
	var input models.CartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendValidationError(ctx, "invalid request body")
		return
	}

	cart, err := cc.service.AddToCart(ctx.Param("username"), input)
	if err != nil {
		sendError(ctx, err, "an error occurred while adding to the cart")
		return
	}

	sendSuccess(ctx, http.StatusOK, "Product added to cart", cart)
}

func (cc *CartController) RemoveFromCart(ctx *gin.Context) {
	var input models.CartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendValidationError(ctx, "invalid request body")
		return
	}

	cart, err := cc.service.RemoveFromCart(ctx.Param("username"), input)
	if err != nil {
		sendError(ctx, err, "an error occurred while removing from the cart")
		return
	}

	sendSuccess(ctx, http.StatusOK, "Product removed from cart", cart)
}
