package main

import (
	"fmt"
	"time"

	"nexus-aura-api/pkg/models"
	"nexus-aura-api/pkg/services"
)

func main() {
	fmt.Println("=== Nexus Aura エンジン デモ ===")

	auraService := services.NewAuraService()
	predictiveService := services.NewPredictiveService()
	sustainabilityService := services.NewSustainabilityService()
	voiceService := services.NewVoiceService()

	// サンプルコンテキスト
	stress := 8
	energy := 4
	month := 12
	req := models.ContextRequest{
		StressLevel:     &stress,
		EnergyLevel:     &energy,
		Weather:         "Rainy",
		MonthOfYear:     &month,
		CalendarEvents:  []string{"birthday party"},
		HealthGoals:     []string{"Weight Management"},
		PurchaseHistory: []models.PurchaseRecord{
			{Category: "Produce", Product: "Organic apples"},
			{Category: "Produce", Product: "Spinach"},
			{Category: "Dairy", Product: "Milk"},
		},
	}

	defaults := services.ContextDefaults{
		Weather:  "Sunny",
		Location: "Bentonville, AR",
	}
	ctx := services.NormalizeContext(req, defaults, time.Now())

	// オーラ判定
	aura, color := auraService.CalculateAura(ctx)
	fmt.Printf("\n--- オーラ判定 ---\n")
	fmt.Printf("オーラ: %s (%s)\n", aura, color)

	rec := auraService.GetAuraRecommendations(aura)
	fmt.Printf("推奨カテゴリ: %v\n", rec.Categories)
	fmt.Printf("推奨商品: %v\n", rec.Products)
	fmt.Printf("UIテーマ: %s\n", rec.UITheme)

	// ニーズ予測
	predictions := predictiveService.GeneratePredictions(ctx)
	fmt.Printf("\n--- ニーズ予測 (%d件) ---\n", len(predictions))
	for i, p := range predictions {
		fmt.Printf("  %2d. %s\n", i+1, p)
	}

	// サステナビリティレポート
	cart := []string{"organic apples", "plastic wrap", "local honey", "beef steaks"}
	report := sustainabilityService.GenerateReport(cart)
	fmt.Printf("\n--- サステナビリティレポート ---\n")
	fmt.Printf("カート: %v\n", cart)
	fmt.Printf("カーボンフットプリント: %.1f kg CO2\n", report.CarbonFootprint)
	fmt.Printf("エコグレード: %s (%s)\n", report.EcoGrade, report.GradeLabel)
	fmt.Printf("エコスコア: %.1f\n", report.EcoScore)
	for _, tip := range report.Recommendations {
		fmt.Printf("  - %s\n", tip)
	}

	// 音声コマンド
	commands := []string{
		"add organic milk to cart",
		"what's trending in my community",
		"what's my carbon footprint",
	}
	vc := models.VoiceContext{
		Trends:  []string{"Plant-based snacks", "Local honey", "Sustainable packaging"},
		Weather: ctx.Weather,
		Aura:    aura,
	}
	fmt.Printf("\n--- 音声コマンド ---\n")
	for _, cmd := range commands {
		intent, response := voiceService.ProcessCommand(cmd, vc)
		fmt.Printf("「%s」\n", cmd)
		fmt.Printf("  意図: %s\n", intent)
		fmt.Printf("  応答: %s\n", response)
	}
}
