package handlers

import (
	"net/http"
	"time"

	"nexus-aura-api/pkg/models"
	"nexus-aura-api/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VoiceHandler 音声コマンド関連の操作のハンドラ
type VoiceHandler struct {
	voiceService   *services.VoiceService
	defaultTrends  []string
	defaultWeather string
}

// NewVoiceHandler 新しいVoiceHandlerを生成
func NewVoiceHandler(voiceService *services.VoiceService, defaultTrends []string, defaultWeather string) *VoiceHandler {
	return &VoiceHandler{
		voiceService:   voiceService,
		defaultTrends:  defaultTrends,
		defaultWeather: defaultWeather,
	}
}

// ProcessCommand 音声/テキストコマンドを解釈して定型応答を返す。
// ライブ状態（トレンド・天気・現在オーラ）は呼び出し側が渡す。
// 未指定の場合は設定のデフォルトで補完する。
func (h *VoiceHandler) ProcessCommand(c *gin.Context) {
	var req models.VoiceCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "コマンドが必要です: " + err.Error(),
		})
		return
	}

	// セッションIDが指定されていない場合は新規生成
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	vc := req.Context
	if len(vc.Trends) == 0 {
		vc.Trends = h.defaultTrends
	}
	if vc.Weather == "" {
		vc.Weather = h.defaultWeather
	}

	intent, response := h.voiceService.ProcessCommand(req.Command, vc)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": models.VoiceCommandResponse{
			Intent:    intent,
			Response:  response,
			SessionID: req.SessionID,
			Aura:      vc.Aura,
			Timestamp: time.Now().Format(time.RFC3339),
		},
	})
}
