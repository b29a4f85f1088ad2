package services

import (
	"fmt"
	"sort"
	"strings"

	"nexus-aura-api/pkg/models"
)

// maxPredictions マージ後のタイムラインに残す最大件数
const maxPredictions = 15

// PredictiveService 6つの独立サブモデルから購買予測を生成するサービス
type PredictiveService struct{}

// NewPredictiveService 新しいPredictiveServiceを作成
func NewPredictiveService() *PredictiveService {
	return &PredictiveService{}
}

// seasonalNeeds 月（1-12）ごとの季節ニーズテーブル
var seasonalNeeds = map[int][]string{
	12: {"Winter clothes", "Holiday gifts", "Comfort food", "Indoor activities", "Heating supplies"},
	1:  {"Fitness equipment", "Healthy food", "Organization tools", "New year supplies", "Winter gear"},
	2:  {"Valentine's gifts", "Winter clearance", "Indoor activities", "Heart health products", "Love-themed items"},
	3:  {"Spring cleaning", "Garden supplies", "Allergy relief", "Fresh produce", "Outdoor preparation"},
	4:  {"Spring fashion", "Outdoor gear", "Fresh produce", "Easter items", "Allergy medication"},
	5:  {"Summer prep", "Sunscreen", "BBQ supplies", "Mother's Day gifts", "Graduation gifts"},
	6:  {"Summer clothes", "Travel gear", "Ice cream", "Father's Day gifts", "Outdoor furniture"},
	7:  {"Vacation items", "Swimwear", "Cooling products", "Summer sports", "Outdoor entertainment"},
	8:  {"Back to school", "Summer clearance", "Prep for fall", "School supplies", "Fall fashion preview"},
	9:  {"Fall fashion", "School supplies", "Warm beverages", "Halloween prep", "Comfort foods"},
	10: {"Halloween items", "Autumn decor", "Comfort foods", "Warm clothing", "Seasonal produce"},
	11: {"Thanksgiving prep", "Winter prep", "Holiday planning", "Gratitude gifts", "Warm clothing"},
}

// seasonalPredictions 月ベースの予測（未知の月は空リスト）
func (ps *PredictiveService) seasonalPredictions(ctx models.ContextRecord) []string {
	return seasonalNeeds[ctx.MonthOfYear]
}

// behavioralPredictions 購買履歴のカテゴリ頻度から上位3カテゴリを予測
// 同数カテゴリは履歴での初出順を維持する。履歴が空なら固定フォールバック。
func (ps *PredictiveService) behavioralPredictions(ctx models.ContextRecord) []string {
	if len(ctx.PurchaseHistory) == 0 {
		return []string{"Basic necessities", "Popular items", "Trending products"}
	}

	counts := make(map[string]int)
	var order []string
	for _, item := range ctx.PurchaseHistory {
		category := item.Category
		if category == "" {
			category = "General"
		}
		if _, seen := counts[category]; !seen {
			order = append(order, category)
		}
		counts[category]++
	}

	// 安定ソートで初出順のタイブレークを保つ
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	top := order
	if len(top) > 3 {
		top = top[:3]
	}

	predictions := make([]string, 0, len(top))
	for _, category := range top {
		predictions = append(predictions, fmt.Sprintf("More %s items", category))
	}
	return predictions
}

// socialKeyword カレンダーイベントのキーワードと対応する予測
type socialKeyword struct {
	keyword    string
	prediction string
}

// socialKeywords 走査順が優先順位。1イベントにつき最初にマッチした1件のみ採用。
var socialKeywords = []socialKeyword{
	{"birthday", "Gift ideas for birthday celebration"},
	{"party", "Party supplies and decorations"},
	{"meeting", "Professional attire and accessories"},
	{"bbq", "BBQ essentials and outdoor dining"},
	{"gym", "Fitness gear and protein supplements"},
}

// socialPredictions カレンダーイベントからの予測（大文字小文字を無視）
func (ps *PredictiveService) socialPredictions(ctx models.ContextRecord) []string {
	var predictions []string
	for _, event := range ctx.CalendarEvents {
		lowered := strings.ToLower(event)
		for _, sk := range socialKeywords {
			if strings.Contains(lowered, sk.keyword) {
				predictions = append(predictions, sk.prediction)
				break
			}
		}
	}
	if len(predictions) == 0 {
		return []string{"Social gathering items"}
	}
	return predictions
}

// lifecyclePredictions 年齢バケットに基づくライフステージ予測
func (ps *PredictiveService) lifecyclePredictions(ctx models.ContextRecord) []string {
	age := ctx.Age
	switch {
	case age < 25:
		return []string{"Tech gadgets", "Fashion items", "Entertainment", "Education supplies", "Social activities"}
	case age < 35:
		return []string{"Career items", "Home improvement", "Travel", "Investment tools", "Skill development"}
	case age < 50:
		return []string{"Family items", "Health products", "Home essentials", "Children's needs", "Long-term planning"}
	default:
		return []string{"Comfort items", "Health supplements", "Hobby supplies", "Relaxation tools", "Wellness products"}
	}
}

// contextualWeatherNeeds 天気ごとの予測リスト（該当なしは空）
var contextualWeatherNeeds = map[string][]string{
	"Rainy": {"Umbrellas", "Raincoats", "Indoor activities", "Comfort food"},
	"Sunny": {"Sunscreen", "Outdoor gear", "Cold beverages", "Summer clothing"},
	"Snowy": {"Winter gear", "Heating supplies", "Hot beverages", "Snow activities"},
}

// contextualPredictions 天気と時間帯に基づく予測
func (ps *PredictiveService) contextualPredictions(ctx models.ContextRecord) []string {
	var predictions []string
	predictions = append(predictions, contextualWeatherNeeds[ctx.Weather]...)

	switch {
	case ctx.HourOfDay < 12:
		predictions = append(predictions, "Breakfast items", "Coffee", "Morning supplements")
	case ctx.HourOfDay < 17:
		predictions = append(predictions, "Lunch options", "Afternoon snacks", "Energy drinks")
	default:
		predictions = append(predictions, "Dinner ingredients", "Evening relaxation", "Night-time products")
	}

	return predictions
}

// healthPredictions 健康目標とフィットネスデータに基づく予測
func (ps *PredictiveService) healthPredictions(ctx models.ContextRecord) []string {
	var predictions []string

	if containsString(ctx.HealthGoals, "Weight Management") {
		predictions = append(predictions, "Healthy snacks", "Portion control tools", "Fitness equipment")
	}
	if containsString(ctx.HealthGoals, "Heart Health") {
		predictions = append(predictions, "Heart-healthy foods", "Omega-3 supplements", "Exercise gear")
	}

	if ctx.FitnessData.Steps < 5000 {
		predictions = append(predictions, "Activity trackers and motivation tools")
	}
	if ctx.FitnessData.Water < 8 {
		predictions = append(predictions, "Water bottles and hydration reminders")
	}

	return predictions
}

// GeneratePredictions 全サブモデルを固定順で実行し、マージした予測タイムラインを返す。
// 重複は完全一致（大文字小文字区別）で初出のみ残し、先頭から最大15件に切り詰める。
// セット型ではなく順序保存の重複排除である点がコントラクト。
func (ps *PredictiveService) GeneratePredictions(ctx models.ContextRecord) []string {
	var all []string
	all = append(all, ps.seasonalPredictions(ctx)...)
	all = append(all, ps.behavioralPredictions(ctx)...)
	all = append(all, ps.socialPredictions(ctx)...)
	all = append(all, ps.lifecyclePredictions(ctx)...)
	all = append(all, ps.contextualPredictions(ctx)...)
	all = append(all, ps.healthPredictions(ctx)...)

	seen := make(map[string]bool, len(all))
	unique := make([]string, 0, len(all))
	for _, prediction := range all {
		if seen[prediction] {
			continue
		}
		seen[prediction] = true
		unique = append(unique, prediction)
		if len(unique) == maxPredictions {
			break
		}
	}
	return unique
}
