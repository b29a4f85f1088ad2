package services

import (
	"fmt"
	"strings"

	"nexus-aura-api/pkg/models"
)

// SustainabilityService カートの環境負荷を推定するサービス
type SustainabilityService struct{}

// NewSustainabilityService 新しいSustainabilityServiceを作成
func NewSustainabilityService() *SustainabilityService {
	return &SustainabilityService{}
}

// carbonCost キーワードとアイテム1点あたりのカーボンコスト
type carbonCost struct {
	keyword string
	cost    float64
}

// carbonCosts チェック順が優先順位。"organic milk" は organic が先に
// マッチするため 0.5 になる（dairy の 1.5 ではない）。順序を変えないこと。
var carbonCosts = []carbonCost{
	{"organic", 0.5},
	{"electronics", 3.0},
	{"clothing", 2.0},
	{"meat", 4.0},
	{"dairy", 1.5},
	{"local", 0.3},
	{"plastic", 2.5},
}

// defaultCarbonCost キーワードにマッチしないアイテムのコスト
const defaultCarbonCost = 1.0

// CalculateCarbonFootprint カート内アイテムの合計カーボンフットプリントを計算
func (ss *SustainabilityService) CalculateCarbonFootprint(items []string) float64 {
	total := 0.0
	for _, item := range items {
		total += itemCarbonCost(item)
	}
	return total
}

// itemCarbonCost 1アイテムのコストを先頭一致のキーワード走査で決定
func itemCarbonCost(item string) float64 {
	lowered := strings.ToLower(item)
	for _, cc := range carbonCosts {
		if strings.Contains(lowered, cc.keyword) {
			return cc.cost
		}
	}
	return defaultCarbonCost
}

// gradeMeta エコグレードの表示メタデータ
type gradeMeta struct {
	Color string
	Label string
}

// ecoGrades グレードごとの表示設定
var ecoGrades = map[string]gradeMeta{
	"A+": {"#22c55e", "Excellent"},
	"A":  {"#3b82f6", "Good"},
	"B+": {"#f59e0b", "Fair"},
	"B":  {"#ef4444", "Poor"},
	"C":  {"#dc2626", "Very Poor"},
}

// sustainabilityTips レポートに添付する固定の改善アドバイス
var sustainabilityTips = []string{
	"Choose organic products when possible",
	"Use reusable bags and containers",
	"Buy local produce to reduce transport emissions",
	"Select energy-efficient appliances",
	"Reduce single-use plastic items",
	"Consider second-hand or refurbished items",
	"Support sustainable brands and certifications",
}

// gradeForFootprint フットプリントを昇順の閾値バンドでグレードに変換
func gradeForFootprint(footprint float64) string {
	switch {
	case footprint < 5:
		return "A+"
	case footprint < 10:
		return "A"
	case footprint < 20:
		return "B+"
	case footprint < 30:
		return "B"
	default:
		return "C"
	}
}

// GenerateReport カート内容からサステナビリティレポートを生成。
// エコスコアは max(0, 100 - footprint*2)。大きなカートでは0になり得るが負にはならない。
func (ss *SustainabilityService) GenerateReport(cart []string) models.SustainabilityReport {
	footprint := ss.CalculateCarbonFootprint(cart)
	grade := gradeForFootprint(footprint)
	meta := ecoGrades[grade]

	score := 100 - footprint*2
	if score < 0 {
		score = 0
	}

	return models.SustainabilityReport{
		CarbonFootprint: footprint,
		EcoGrade:        grade,
		GradeLabel:      meta.Label,
		GradeColor:      meta.Color,
		EcoScore:        score,
		Recommendations: sustainabilityTips,
	}
}

// ecoAlternatives 製品名（小文字）→ エコ代替品の置換テーブル
var ecoAlternatives = map[string]string{
	"plastic bottle":       "Reusable stainless steel bottle",
	"paper towels":         "Reusable cloth towels",
	"regular detergent":    "Eco-friendly detergent",
	"disposable bags":      "Reusable shopping bags",
	"incandescent bulbs":   "LED bulbs",
	"plastic containers":   "Glass storage containers",
	"fast fashion":         "Sustainable clothing brands",
	"conventional produce": "Organic produce",
	"single-use items":     "Reusable alternatives",
	"synthetic materials":  "Natural materials",
}

// GetEcoAlternatives 製品名に対するエコ代替品を返す。
// テーブルにない場合も失敗せず "Eco-friendly {name}" を合成して返す。
func (ss *SustainabilityService) GetEcoAlternatives(productName string) string {
	if alt, exists := ecoAlternatives[strings.ToLower(productName)]; exists {
		return alt
	}
	return fmt.Sprintf("Eco-friendly %s", productName)
}

// wasteReductionMetrics サステナブルな選択肢ごとの年間削減ユニット数
var wasteReductionMetrics = map[string]int{
	"reusable_bags":   365, // 年間レジ袋数
	"water_bottle":    156, // 年間ペットボトル数
	"food_containers": 200, // 年間使い捨て容器数
	"cloth_towels":    52,  // 年間ペーパータオルロール数
	"led_bulbs":       10,  // 年間白熱電球数
}

// CalculateWasteReduction 選択肢リストから年間の廃棄物削減ユニット合計を計算
// 未知の選択肢は0として扱う。
func (ss *SustainabilityService) CalculateWasteReduction(choices []string) int {
	total := 0
	for _, choice := range choices {
		total += wasteReductionMetrics[choice]
	}
	return total
}
