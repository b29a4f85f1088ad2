package handlers

import (
	"net/http"

	"nexus-aura-api/pkg/models"
	"nexus-aura-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// SustainabilityHandler サステナビリティ関連の操作のハンドラ
type SustainabilityHandler struct {
	sustainabilityService *services.SustainabilityService
}

// NewSustainabilityHandler 新しいSustainabilityHandlerを生成
func NewSustainabilityHandler(sustainabilityService *services.SustainabilityService) *SustainabilityHandler {
	return &SustainabilityHandler{
		sustainabilityService: sustainabilityService,
	}
}

// GetSustainabilityService SustainabilityServiceを取得
func (h *SustainabilityHandler) GetSustainabilityService() *services.SustainabilityService {
	return h.sustainabilityService
}

// GenerateReport カート内容からサステナビリティレポートを生成して返す
// 空のカートも有効（フットプリント0、グレードA+）。
func (h *SustainabilityHandler) GenerateReport(c *gin.Context) {
	var req models.SustainabilityReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "リクエストの形式が正しくありません: " + err.Error(),
		})
		return
	}

	report := h.sustainabilityService.GenerateReport(req.Cart)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

// GetEcoAlternatives 製品名に対するエコ代替品を返す
func (h *SustainabilityHandler) GetEcoAlternatives(c *gin.Context) {
	product := c.Param("product")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"product":     product,
			"alternative": h.sustainabilityService.GetEcoAlternatives(product),
		},
	})
}

// CalculateWasteReduction サステナブルな選択肢からの年間削減量を返す
func (h *SustainabilityHandler) CalculateWasteReduction(c *gin.Context) {
	var req models.WasteReductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "リクエストの形式が正しくありません: " + err.Error(),
		})
		return
	}

	total := h.sustainabilityService.CalculateWasteReduction(req.Choices)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"choices":              req.Choices,
			"annual_units_reduced": total,
		},
	})
}
