package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"campus_api/internal/service"
	"campus_api/internal/storage"
)

const (
	msgMissingFields  = "Missing required fields"
	msgInternalError  = "Internal Server Error"
	msgNotFound       = "Not Found"
	msgInvalidRequest = "Invalid request body"
)

// respondError 把服務層和資料庫錯誤轉成 HTTP 響應，500 時不洩漏錯誤細節
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingFields})
	case errors.Is(err, service.ErrInvalidField), errors.Is(err, service.ErrUnknownField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString("requestID")),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
	}
}

// bindCreateInput 解析建立請求。缺少必填欄位回 400，無法解析的請求體回 500
func bindCreateInput(c *gin.Context, logger *zap.Logger, input interface{}) bool {
	err := c.ShouldBindJSON(input)
	if err == nil {
		return true
	}

	if isValidationError(err) {
		respondError(c, logger, service.ErrMissingFields)
	} else {
		respondError(c, logger, err)
	}
	return false
}

func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// bindPatch 把請求體解析成欄位對應表
func bindPatch(c *gin.Context) (map[string]interface{}, bool) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil || patch == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return nil, false
	}
	return patch, true
}
