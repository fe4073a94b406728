package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/silvaronna/marketplace-api/apperrors"
	"github.com/silvaronna/marketplace-api/logger"
	"go.uber.org/zap"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendSuccess(ctx *gin.Context, status int, message string, data any) {
	sendJSONResponse(ctx, status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func sendValidationError(ctx *gin.Context, message string) {
	sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
		"success": false,
		"error":   message,
	})
}

// sendError maps a tagged application error to the envelope; anything else
// becomes a fixed 500 message.
func sendError(ctx *gin.Context, err error, fallback string) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		sendJSONResponse(ctx, appErr.Code, gin.H{
			"success": false,
			"error":   appErr.Message,
		})
		return
	}

	logger.Log.Error(fallback, zap.Error(err))
	sendJSONResponse(ctx, http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   fallback,
	})
}
