package handlers

import (
	"net/http"
	"time"

	"nexus-aura-api/pkg/models"
	"nexus-aura-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// PredictiveHandler 購買予測関連の操作のハンドラ
type PredictiveHandler struct {
	predictiveService *services.PredictiveService
	weatherContext    *services.WeatherContextService
	defaults          services.ContextDefaults
}

// NewPredictiveHandler 新しいPredictiveHandlerを生成
func NewPredictiveHandler(predictiveService *services.PredictiveService, weatherContext *services.WeatherContextService, defaults services.ContextDefaults) *PredictiveHandler {
	return &PredictiveHandler{
		predictiveService: predictiveService,
		weatherContext:    weatherContext,
		defaults:          defaults,
	}
}

// GetPredictiveService PredictiveServiceを取得
func (h *PredictiveHandler) GetPredictiveService() *services.PredictiveService {
	return h.predictiveService
}

// GeneratePredictions コンテキストから予測タイムラインを生成して返す
func (h *PredictiveHandler) GeneratePredictions(c *gin.Context) {
	var req models.ContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "リクエストの形式が正しくありません: " + err.Error(),
		})
		return
	}

	record := resolveContext(req, h.defaults, h.weatherContext)
	predictions := h.predictiveService.GeneratePredictions(record)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": models.PredictionResponse{
			Predictions: predictions,
			Count:       len(predictions),
			GeneratedAt: time.Now().Format(time.RFC3339),
		},
	})
}
