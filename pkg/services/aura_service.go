package services

import (
	"nexus-aura-api/pkg/models"
)

// AuraService ユーザーの現在状態（オーラ）を判定するサービス
type AuraService struct{}

// NewAuraService 新しいAuraServiceを作成
func NewAuraService() *AuraService {
	return &AuraService{}
}

// contextWeights シグナルごとの重み。
// 将来の加重ブレンド設計のために宣言されているが、現在の判定は
// auraRules の順序付きルールチェーンで行われ、この値は計算に使用されない。
var contextWeights = map[string]float64{
	"stress":   0.30,
	"energy":   0.25,
	"weather":  0.15,
	"time":     0.10,
	"location": 0.10,
	"social":   0.10,
}

// auraColors オーラ状態ごとの表示カラー
var auraColors = map[string]string{
	"Stressed":   "#ef4444",
	"Energetic":  "#f59e0b",
	"Calm":       "#10b981",
	"Eco":        "#22c55e",
	"Cozy":       "#8b5cf6",
	"Vibrant":    "#f59e0b",
	"Low Energy": "#6b7280",
	"Restful":    "#6366f1",
	"Productive": "#0071ce",
	"Relaxed":    "#10b981",
}

// auraRule 判定ルール（述語が真なら対応するオーラを返す）
type auraRule struct {
	matches func(ctx models.ContextRecord) bool
	aura    string
}

// auraRules 上から順に評価され、最初にマッチしたルールで確定する。
// 順序はコントラクトの一部：高ストレスは雨天より常に優先される。
// 並べ替えると重複条件（例: stress=9 かつ Rainy）の結果が変わるので注意。
var auraRules = []auraRule{
	{func(ctx models.ContextRecord) bool { return ctx.StressLevel > 7 }, "Stressed"},
	{func(ctx models.ContextRecord) bool { return ctx.StressLevel < 3 }, "Calm"},
	{func(ctx models.ContextRecord) bool { return ctx.EnergyLevel > 8 }, "Energetic"},
	{func(ctx models.ContextRecord) bool { return ctx.EnergyLevel < 3 }, "Low Energy"},
	{func(ctx models.ContextRecord) bool { return ctx.Weather == "Rainy" && ctx.StressLevel > 5 }, "Cozy"},
	{func(ctx models.ContextRecord) bool { return ctx.Weather == "Sunny" && ctx.EnergyLevel > 6 }, "Vibrant"},
	// 時間帯フォールバック
	{func(ctx models.ContextRecord) bool { return ctx.HourOfDay < 6 || ctx.HourOfDay >= 22 }, "Restful"},
	{func(ctx models.ContextRecord) bool { return ctx.HourOfDay < 12 }, "Energetic"},
	{func(ctx models.ContextRecord) bool { return ctx.HourOfDay < 18 }, "Productive"},
	{func(ctx models.ContextRecord) bool { return true }, "Relaxed"},
}

// CalculateAura コンテキストからオーラ状態とカラーを判定
func (as *AuraService) CalculateAura(ctx models.ContextRecord) (string, string) {
	for _, rule := range auraRules {
		if rule.matches(ctx) {
			return rule.aura, auraColors[rule.aura]
		}
	}
	// 最終ルールが常にマッチするため到達しない
	return "Calm", auraColors["Calm"]
}

// auraRecommendations オーラ状態ごとの推奨バンドル（静的設定）
var auraRecommendations = map[string]models.AuraRecommendation{
	"Stressed": {
		Categories: []string{"Wellness", "Relaxation", "Comfort"},
		Products:   []string{"Aromatherapy oils", "Herbal tea", "Stress ball", "Meditation app"},
		UITheme:    "calm",
		Colors:     []string{"#ef4444", "#f97316"},
	},
	"Energetic": {
		Categories: []string{"Fitness", "Sports", "Adventure"},
		Products:   []string{"Protein powder", "Workout gear", "Energy drinks", "Sports equipment"},
		UITheme:    "vibrant",
		Colors:     []string{"#f59e0b", "#eab308"},
	},
	"Calm": {
		Categories: []string{"Books", "Art", "Music"},
		Products:   []string{"Books", "Art supplies", "Classical music", "Puzzles"},
		UITheme:    "serene",
		Colors:     []string{"#10b981", "#059669"},
	},
	"Eco": {
		Categories: []string{"Sustainable", "Organic", "Green"},
		Products:   []string{"Organic foods", "Eco-friendly products", "Reusable items", "Solar products"},
		UITheme:    "green",
		Colors:     []string{"#22c55e", "#16a34a"},
	},
	"Cozy": {
		Categories: []string{"Comfort", "Indoor", "Warmth"},
		Products:   []string{"Blankets", "Hot beverages", "Candles", "Indoor plants"},
		UITheme:    "cozy",
		Colors:     []string{"#8b5cf6", "#7c3aed"},
	},
	"Vibrant": {
		Categories: []string{"Outdoor", "Active", "Social"},
		Products:   []string{"Outdoor gear", "Party supplies", "Bright clothing", "Social games"},
		UITheme:    "vibrant",
		Colors:     []string{"#f59e0b", "#eab308"},
	},
	"Low Energy": {
		Categories: []string{"Energy Boost", "Comfort", "Rest"},
		Products:   []string{"Energy bars", "Coffee", "Comfortable seating", "Sleep aids"},
		UITheme:    "restful",
		Colors:     []string{"#6b7280", "#4b5563"},
	},
	"Restful": {
		Categories: []string{"Sleep", "Relaxation", "Night"},
		Products:   []string{"Sleep masks", "Pillows", "Night tea", "Meditation apps"},
		UITheme:    "night",
		Colors:     []string{"#6366f1", "#4f46e5"},
	},
	"Productive": {
		Categories: []string{"Work", "Efficiency", "Focus"},
		Products:   []string{"Office supplies", "Productivity tools", "Healthy snacks", "Organizers"},
		UITheme:    "professional",
		Colors:     []string{"#0071ce", "#0284c7"},
	},
	"Relaxed": {
		Categories: []string{"Leisure", "Entertainment", "Comfort"},
		Products:   []string{"Entertainment", "Comfort food", "Leisure activities", "Relaxation tools"},
		UITheme:    "leisure",
		Colors:     []string{"#10b981", "#059669"},
	},
}

// GetAuraRecommendations オーラ状態に対応する推奨バンドルを取得
// 未知の状態はCalmのバンドルにフォールバックする。
func (as *AuraService) GetAuraRecommendations(aura string) models.AuraRecommendation {
	if rec, exists := auraRecommendations[aura]; exists {
		return rec
	}
	return auraRecommendations["Calm"]
}

// GetAuraColor オーラ状態の表示カラーを取得（未知の状態は空文字）
func (as *AuraService) GetAuraColor(aura string) string {
	return auraColors[aura]
}

// ListAuraStates 定義済みのオーラ状態一覧を返す（判定チェーンの優先順）
func (as *AuraService) ListAuraStates() []string {
	return []string{
		"Stressed", "Calm", "Energetic", "Low Energy", "Cozy",
		"Vibrant", "Restful", "Productive", "Relaxed", "Eco",
	}
}
