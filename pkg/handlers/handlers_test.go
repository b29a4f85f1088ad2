package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nexus-aura-api/pkg/models"
	"nexus-aura-api/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// テスト用のデフォルトコンテキスト設定
var testDefaults = services.ContextDefaults{
	Weather:  "Sunny",
	Location: "Bentonville, AR",
}

func TestHealthCheck(t *testing.T) {
	// Ginのテストモードに設定
	gin.SetMode(gin.TestMode)

	// ルーターを作成
	router := gin.New()
	router.GET("/health", HealthCheck)

	// テストリクエストを作成
	req, err := http.NewRequest("GET", "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	// レスポンスレコーダーを作成
	w := httptest.NewRecorder()

	// リクエストを実行
	router.ServeHTTP(w, req)

	// ステータスコードを確認
	assert.Equal(t, http.StatusOK, w.Code)

	// JSONレスポンスに期待されるフィールドが含まれていることを確認
	assert.Contains(t, w.Body.String(), "healthy")
	assert.Contains(t, w.Body.String(), "Nexus Aura API")
}

func TestAuraHandlerCreation(t *testing.T) {
	handler := NewAuraHandler(services.NewAuraService(), nil, testDefaults)

	assert.NotNil(t, handler, "AuraHandler should not be nil")
	assert.NotNil(t, handler.GetAuraService(), "AuraService should not be nil")
}

func TestCalculateAuraEndpoint(t *testing.T) {
	// Ginのテストモードに設定
	gin.SetMode(gin.TestMode)

	// ルーターを作成
	router := gin.New()
	auraHandler := NewAuraHandler(services.NewAuraService(), nil, testDefaults)
	router.POST("/api/v1/aura/calculate", auraHandler.CalculateAura)

	// 高ストレスのコンテキストを送信
	body := `{"stress_level": 9, "energy_level": 5}`
	req, err := http.NewRequest("POST", "/api/v1/aura/calculate", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// ステータスコードを確認
	assert.Equal(t, http.StatusOK, w.Code)

	// 高ストレスはStressedとして判定される
	assert.Contains(t, w.Body.String(), `"aura":"Stressed"`)
	assert.Contains(t, w.Body.String(), "#ef4444")
	assert.Contains(t, w.Body.String(), "Aromatherapy oils")
}

func TestCalculateAuraValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	auraHandler := NewAuraHandler(services.NewAuraService(), nil, testDefaults)
	router.POST("/api/v1/aura/calculate", auraHandler.CalculateAura)

	// 範囲外のhour_of_dayはバリデーションで拒否される
	body := `{"hour_of_day": 99}`
	req, err := http.NewRequest("POST", "/api/v1/aura/calculate", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGetRecommendationsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	auraHandler := NewAuraHandler(services.NewAuraService(), nil, testDefaults)
	router.GET("/api/v1/aura/recommendations/:state", auraHandler.GetRecommendations)

	req, err := http.NewRequest("GET", "/api/v1/aura/recommendations/Energetic", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Protein powder")
	assert.Contains(t, w.Body.String(), "#f59e0b")
}

func TestGetRecommendationsUnknownState(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	auraHandler := NewAuraHandler(services.NewAuraService(), nil, testDefaults)
	router.GET("/api/v1/aura/recommendations/:state", auraHandler.GetRecommendations)

	// 未知の状態でも失敗せずCalmのバンドルが返る
	req, err := http.NewRequest("GET", "/api/v1/aura/recommendations/Mysterious", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Art supplies")
}

func TestListStatesEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	auraHandler := NewAuraHandler(services.NewAuraService(), nil, testDefaults)
	router.GET("/api/v1/aura/states", auraHandler.ListStates)

	req, err := http.NewRequest("GET", "/api/v1/aura/states", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Stressed")
	assert.Contains(t, w.Body.String(), "Restful")
	assert.Contains(t, w.Body.String(), "Productive")
}

func TestGeneratePredictionsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	predictiveHandler := NewPredictiveHandler(services.NewPredictiveService(), nil, testDefaults)
	router.POST("/api/v1/predictions/generate", predictiveHandler.GeneratePredictions)

	// 12月の季節予測が含まれるコンテキストを送信
	body := `{"month_of_year": 12, "age": 40}`
	req, err := http.NewRequest("POST", "/api/v1/predictions/generate", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Holiday gifts")
	assert.Contains(t, w.Body.String(), `"count"`)
}

func TestSustainabilityReportEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	sustainabilityHandler := NewSustainabilityHandler(services.NewSustainabilityService())
	router.POST("/api/v1/sustainability/report", sustainabilityHandler.GenerateReport)

	body := `{"cart": ["organic apples", "local honey"]}`
	req, err := http.NewRequest("POST", "/api/v1/sustainability/report", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                        `json:"success"`
		Data    models.SustainabilityReport `json:"data"`
	}
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	// organic 0.5 + local 0.3 = 0.8 → A+
	assert.InDelta(t, 0.8, resp.Data.CarbonFootprint, 0.001)
	assert.Equal(t, "A+", resp.Data.EcoGrade)
	assert.InDelta(t, 98.4, resp.Data.EcoScore, 0.001)
}

func TestSustainabilityReportEmptyCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	sustainabilityHandler := NewSustainabilityHandler(services.NewSustainabilityService())
	router.POST("/api/v1/sustainability/report", sustainabilityHandler.GenerateReport)

	// 空のカートも有効なリクエスト
	body := `{"cart": []}`
	req, err := http.NewRequest("POST", "/api/v1/sustainability/report", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"eco_grade":"A+"`)
}

func TestEcoAlternativesEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	sustainabilityHandler := NewSustainabilityHandler(services.NewSustainabilityService())
	router.GET("/api/v1/sustainability/alternatives/:product", sustainabilityHandler.GetEcoAlternatives)

	req, err := http.NewRequest("GET", "/api/v1/sustainability/alternatives/bottled%20water", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alternative")
}

func TestWasteReductionEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	sustainabilityHandler := NewSustainabilityHandler(services.NewSustainabilityService())
	router.POST("/api/v1/sustainability/waste-reduction", sustainabilityHandler.CalculateWasteReduction)

	body := `{"choices": ["reusable_bags", "water_bottle"]}`
	req, err := http.NewRequest("POST", "/api/v1/sustainability/waste-reduction", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// 365 + 156 = 521
	assert.Contains(t, w.Body.String(), `"annual_units_reduced":521`)
}

func TestVoiceCommandEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	voiceHandler := NewVoiceHandler(
		services.NewVoiceService(),
		[]string{"Plant-based snacks", "Local honey", "Sustainable packaging"},
		"Sunny",
	)
	router.POST("/api/v1/voice/command", voiceHandler.ProcessCommand)

	body := `{"command": "add organic milk to cart"}`
	req, err := http.NewRequest("POST", "/api/v1/voice/command", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                        `json:"success"`
		Data    models.VoiceCommandResponse `json:"data"`
	}
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "add_to_cart", resp.Data.Intent)
	assert.Contains(t, resp.Data.Response, "organic products")

	// セッションIDが自動生成される
	assert.NotEmpty(t, resp.Data.SessionID)
}

func TestVoiceCommandTrendingDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	voiceHandler := NewVoiceHandler(
		services.NewVoiceService(),
		[]string{"Plant-based snacks", "Local honey", "Sustainable packaging"},
		"Sunny",
	)
	router.POST("/api/v1/voice/command", voiceHandler.ProcessCommand)

	// コンテキスト未指定の場合は設定のデフォルトトレンドで補完される
	body := `{"command": "what's trending in my community", "session_id": "test-session"}`
	req, err := http.NewRequest("POST", "/api/v1/voice/command", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Plant-based snacks")
	assert.Contains(t, w.Body.String(), `"session_id":"test-session"`)
}

func TestVoiceCommandMissingCommand(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	voiceHandler := NewVoiceHandler(services.NewVoiceService(), nil, "Sunny")
	router.POST("/api/v1/voice/command", voiceHandler.ProcessCommand)

	// commandは必須フィールド
	body := `{"session_id": "abc"}`
	req, err := http.NewRequest("POST", "/api/v1/voice/command", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMonitoringStatsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	monitoringService := services.NewMonitoringService()
	monitoringHandler := NewMonitoringHandler(monitoringService)

	router := gin.New()
	router.Use(monitoringService.LoggingMiddleware())
	router.GET("/health", HealthCheck)
	router.GET("/api/v1/monitoring/stats", monitoringHandler.GetStats)

	// いくつかのリクエストを記録
	for i := 0; i < 3; i++ {
		req, err := http.NewRequest("GET", "/health", nil)
		if err != nil {
			t.Fatal(err)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	req, err := http.NewRequest("GET", "/api/v1/monitoring/stats?period=1h", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_requests":3`)
	assert.Contains(t, w.Body.String(), "/health")
}

func TestImportContextCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	importHandler := NewContextImportHandler()
	router.POST("/api/v1/context/import", importHandler.ImportContext)

	// CSVファイルをmultipartで構築
	csvContent := "category,product,date,event\n" +
		"Produce,Organic apples,2026-08-01,\n" +
		"Dairy,Milk,2026-08-03,\n" +
		",,,birthday party\n" +
		",,,\n"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "history.csv")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte(csvContent))
	writer.Close()

	req, err := http.NewRequest("POST", "/api/v1/context/import", &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                       `json:"success"`
		Data    models.ContextImportResult `json:"data"`
	}
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Data.RowsImported)
	assert.Equal(t, 1, resp.Data.RowsSkipped)
	assert.Len(t, resp.Data.PurchaseHistory, 2)
	assert.Equal(t, "Produce", resp.Data.PurchaseHistory[0].Category)
	assert.Equal(t, []string{"birthday party"}, resp.Data.CalendarEvents)
}

func TestImportContextUnsupportedFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	importHandler := NewContextImportHandler()
	router.POST("/api/v1/context/import", importHandler.ImportContext)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "history.txt")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("not a spreadsheet"))
	writer.Close()

	req, err := http.NewRequest("POST", "/api/v1/context/import", &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
