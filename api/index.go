package handler

import (
	"log"
	"net/http"
	"sync"

	config "nexus-aura-api/configs"
	"nexus-aura-api/pkg/handlers"
	"nexus-aura-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	app  *gin.Engine
	once sync.Once
)

// setupApp はGinアプリケーションを初期化します。
// サーバーレス環境では、リクエストごとに初期化が走らないようsync.Onceで一度だけ実行します。
func setupApp() *gin.Engine {
	once.Do(func() {
		// .envファイルはVercelの環境変数設定から読み込まれるため、ここではgodotenvを呼び出しません。
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
		r.Use(monitoringService.LoggingMiddleware())
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		r.Use(cors.New(corsConfig))

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

			aura := v1.Group("/aura")
			{
				aura.POST("/calculate", auraHandler.CalculateAura)
				aura.GET("/states", auraHandler.ListStates)
				aura.GET("/recommendations/:state", auraHandler.GetRecommendations)
			}

			predictions := v1.Group("/predictions")
			{
				predictions.POST("/generate", predictiveHandler.GeneratePredictions)
			}

			sustainability := v1.Group("/sustainability")
			{
				sustainability.POST("/report", sustainabilityHandler.GenerateReport)
				sustainability.GET("/alternatives/:product", sustainabilityHandler.GetEcoAlternatives)
				sustainability.POST("/waste-reduction", sustainabilityHandler.CalculateWasteReduction)
			}

			voice := v1.Group("/voice")
			{
				voice.POST("/command", voiceHandler.ProcessCommand)
			}

			context := v1.Group("/context")
			{
				context.POST("/import", contextImportHandler.ImportContext)
			}

			monitoring := v1.Group("/monitoring")
			{
				monitoring.GET("/stats", monitoringHandler.GetStats)
			}
		}

		app = r
	})
	return app
}

// Handler はVercelからのすべてのリクエストを処理するエントリーポイントです。
func Handler(w http.ResponseWriter, r *http.Request) {
	log.Printf("[Handler] Request received: %s %s", r.Method, r.URL.Path)

	// Ginアプリケーションをセットアップ（初回のみ実行される）
	app := setupApp()

	// Ginにリクエストを処理させる
	app.ServeHTTP(w, r)
}
