package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"nexus-aura-api/pkg/models"
	"nexus-aura-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// HealthCheck ヘルスチェックエンドポイント
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Nexus Aura API",
	})
}

// findIndex finds the index of the first candidate in a slice
func findIndex(slice []string, candidates ...string) int {
	for _, candidate := range candidates {
		for i, item := range slice {
			if strings.EqualFold(item, candidate) {
				return i
			}
		}
	}
	return -1
}

// resolveContext リクエストを正規化済みContextRecordに解決する。
// 天気が未指定かつ天気プロバイダーが有効な場合のみ外部から現在天気を
// 取得する（失敗時はデフォルトにフォールバックし、リクエストは失敗させない）。
func resolveContext(req models.ContextRequest, defaults services.ContextDefaults, weatherContext *services.WeatherContextService) models.ContextRecord {
	if req.Weather == "" && weatherContext != nil && weatherContext.Enabled() {
		city := req.Location
		if city == "" {
			city = defaults.Location
		}
		if label, err := weatherContext.CurrentWeatherLabel(city); err != nil {
			log.Printf("天気コンテキストの取得に失敗（デフォルトを使用）: %v", err)
		} else {
			req.Weather = label
		}
	}

	return services.NormalizeContext(req, defaults, time.Now())
}
