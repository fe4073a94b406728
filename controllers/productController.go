package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/silvaronna/marketplace-api/models"
	"github.com/silvaronna/marketplace-api/services"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendValidationError(ctx, "invalid request body")
		return
	}

	product, err := pc.service.CreateProduct(input)
	if err != nil {
		sendError(ctx, err, "an error occurred while creating the product")
		return
	}

	sendSuccess(ctx, http.StatusCreated, "Product created successfully", product)
}

// GetProducts lists products for the requesting user; an optional owner
// query narrows the list to one seller's products.
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	products, err := pc.service.GetAllProducts(ctx.Query("username"), ctx.Query("owner"))
	if err != nil {
		sendError(ctx, err, "an error occurred while fetching products")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Products fetched successfully",
		"data":    products,
		"total":   len(products),
	})
}

func (pc *ProductController) GetProductByName(ctx *gin.Context) {
	product, err := pc.service.GetProductByName(ctx.Param("product_name"), ctx.Query("username"))
	if err != nil {
		sendError(ctx, err, "an error occurred while fetching the product")
		return
	}

	sendSuccess(ctx, http.StatusOK, "Product found", product)
}

func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendValidationError(ctx, "invalid request body")
		return
	}

	product, err := pc.service.UpdateProduct(ctx.Param("product_name"), input)
	if err != nil {
		sendError(ctx, err, "an error occurred while updating the product")
		return
	}

	sendSuccess(ctx, http.StatusOK, "Product updated successfully", product)
}

func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	// The requester's username travels in the body; a missing body simply
	// leaves it empty and the service rejects it.
	var body struct {
		Username string `json:"username"`
	}
	_ = ctx.ShouldBindJSON(&body)

	product, err := pc.service.DeleteProduct(ctx.Param("product_name"), body.Username)
	if err != nil {
		sendError(ctx, err, "an error occurred while deleting the product")
		return
	}

	sendSuccess(ctx, http.StatusOK, "Product deleted successfully", product)
}
