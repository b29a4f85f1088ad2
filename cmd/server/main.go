package main

import (
	"log"
	"net/http"

	config "nexus-aura-api/configs"
	"nexus-aura-api/pkg/handlers"
	"nexus-aura-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .envファイルを読み込み
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// 設定の読み込み
	cfg := config.LoadConfig()

	// Ginルーターの初期化
	r := gin.Default()

	// サービスの初期化
	monitoringService := services.NewMonitoringService()
	weatherContextService := services.NewWeatherContextService(config.GetOpenWeatherMapConfig())
	defaults := services.ContextDefaults{
		Weather:  cfg.DefaultWeather,
		Location: cfg.DefaultLocation,
	}

	// ハンドラーの初期化
	auraHandler := handlers.NewAuraHandler(services.NewAuraService(), weatherContextService, defaults)
	predictiveHandler := handlers.NewPredictiveHandler(services.NewPredictiveService(), weatherContextService, defaults)
	sustainabilityHandler := handlers.NewSustainabilityHandler(services.NewSustainabilityService())
	voiceHandler := handlers.NewVoiceHandler(services.NewVoiceService(), cfg.CommunityTrends, cfg.DefaultWeather)
	contextImportHandler := handlers.NewContextImportHandler()
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	// ミドルウェアの登録
	r.Use(monitoringService.LoggingMiddleware()) // ロギングミドルウェアをグローバルに適用
	r.Use(cors.Default())

	// 認証ミドルウェア
	authMiddleware := func(apiKey string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if apiKey == "" || apiKey == "default_secret_key" {
				c.Next()
				return
			}
			providedKey := c.GetHeader("X-API-KEY")
			if providedKey != apiKey {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.Next()
		}
	}

	// ヘルスチェックエンドポイント
	r.GET("/health", handlers.HealthCheck)

	// APIバージョン1のルートグループ
	v1 := r.Group("/api/v1")
	v1.Use(authMiddleware(cfg.APIKey))
	{
		v1.GET("/hello", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "Hello from Nexus Aura API!",
			})
		})

		// オーラ判定API
		aura := v1.Group("/aura")
		{
			aura.POST("/calculate", auraHandler.CalculateAura)
			aura.GET("/states", auraHandler.ListStates)
			aura.GET("/recommendations/:state", auraHandler.GetRecommendations)
		}

		// 予測API
		predictions := v1.Group("/predictions")
		{
			predictions.POST("/generate", predictiveHandler.GeneratePredictions)
		}

		// サステナビリティAPI
		sustainability := v1.Group("/sustainability")
		{
			sustainability.POST("/report", sustainabilityHandler.GenerateReport)
			sustainability.GET("/alternatives/:product", sustainabilityHandler.GetEcoAlternatives)
			sustainability.POST("/waste-reduction", sustainabilityHandler.CalculateWasteReduction)
		}

		// 音声コマンドAPI
		voice := v1.Group("/voice")
		{
			voice.POST("/command", voiceHandler.ProcessCommand)
		}

		// コンテキスト取り込みAPI
		context := v1.Group("/context")
		{
			context.POST("/import", contextImportHandler.ImportContext)
		}

		// モニタリングAPI
		monitoring := v1.Group("/monitoring")
		{
			monitoring.GET("/stats", monitoringHandler.GetStats)
		}
	}

	log.Printf("Starting Nexus Aura API server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
