package handlers

import (
	"net/http"
	"time"

	"nexus-aura-api/pkg/models"
	"nexus-aura-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// AuraHandler オーラ判定関連の操作のハンドラ
type AuraHandler struct {
	auraService    *services.AuraService
	weatherContext *services.WeatherContextService
	defaults       services.ContextDefaults
}

// NewAuraHandler 新しいAuraHandlerを生成
func NewAuraHandler(auraService *services.AuraService, weatherContext *services.WeatherContextService, defaults services.ContextDefaults) *AuraHandler {
	return &AuraHandler{
		auraService:    auraService,
		weatherContext: weatherContext,
		defaults:       defaults,
	}
}

// GetAuraService AuraServiceを取得
func (h *AuraHandler) GetAuraService() *services.AuraService {
	return h.auraService
}

// CalculateAura コンテキストからオーラ状態を判定して返す
func (h *AuraHandler) CalculateAura(c *gin.Context) {
	var req models.ContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "リクエストの形式が正しくありません: " + err.Error(),
		})
		return
	}

	record := resolveContext(req, h.defaults, h.weatherContext)
	aura, color := h.auraService.CalculateAura(record)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": models.AuraResponse{
			Aura:            aura,
			Color:           color,
			Recommendations: h.auraService.GetAuraRecommendations(aura),
			CalculatedAt:    time.Now().Format(time.RFC3339),
		},
	})
}

// GetRecommendations 指定されたオーラ状態の推奨バンドルを返す
// 未知の状態でも失敗せずCalmのバンドルを返す。
func (h *AuraHandler) GetRecommendations(c *gin.Context) {
	state := c.Param("state")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"aura":            state,
			"color":           h.auraService.GetAuraColor(state),
			"recommendations": h.auraService.GetAuraRecommendations(state),
		},
	})
}

// ListStates 定義済みのオーラ状態一覧を返す
func (h *AuraHandler) ListStates(c *gin.Context) {
	states := h.auraService.ListAuraStates()

	data := make([]gin.H, 0, len(states))
	for _, state := range states {
		data = append(data, gin.H{
			"aura":  state,
			"color": h.auraService.GetAuraColor(state),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
