package services

import (
	"fmt"
	"strings"

	"nexus-aura-api/pkg/models"
)

// 音声コマンドのインテント（閉集合）
const (
	IntentAddToCart      = "add_to_cart"
	IntentSearch         = "search"
	IntentTrending       = "trending"
	IntentDelivery       = "delivery"
	IntentPriceQuery     = "price_query"
	IntentGift           = "gift"
	IntentWeather        = "weather"
	IntentHealth         = "health"
	IntentSustainability = "sustainability"
	IntentUnknown        = "unknown"
)

// VoiceService 音声/テキストコマンドを解釈して応答を返すサービス
type VoiceService struct{}

// NewVoiceService 新しいVoiceServiceを作成
func NewVoiceService() *VoiceService {
	return &VoiceService{}
}

// voiceRule インテント判定ルール
type voiceRule struct {
	matches func(cmd string) bool
	intent  string
	respond func(cmd string, vc models.VoiceContext) string
}

// voiceRules 上から順に評価され、最初にマッチしたルールで確定する。
// 複数述語を満たすコマンド（例: "find eco gift" はsearchとgiftの両方に
// 該当）があるため、評価順はコントラクトの一部。
var voiceRules = []voiceRule{
	{
		matches: func(cmd string) bool { return strings.Contains(cmd, "add") && strings.Contains(cmd, "cart") },
		intent:  IntentAddToCart,
		respond: respondAddToCart,
	},
	{
		matches: func(cmd string) bool { return strings.Contains(cmd, "find") || strings.Contains(cmd, "search") },
		intent:  IntentSearch,
		respond: respondSearch,
	},
	{
		matches: func(cmd string) bool { return strings.Contains(cmd, "trending") },
		intent:  IntentTrending,
		respond: respondTrending,
	},
	{
		matches: func(cmd string) bool { return strings.Contains(cmd, "delivery") || strings.Contains(cmd, "schedule") },
		intent:  IntentDelivery,
		respond: func(string, models.VoiceContext) string {
			return "I can schedule delivery for tomorrow between 9 AM - 6 PM. Would you like express delivery or standard shipping?"
		},
	},
	{
		matches: func(cmd string) bool {
			return strings.Contains(cmd, "price") || strings.Contains(cmd, "under") || strings.Contains(cmd, "$")
		},
		intent: IntentPriceQuery,
		respond: func(string, models.VoiceContext) string {
			return "I found several great products within your budget. Here are the top recommendations sorted by value and rating."
		},
	},
	{
		matches: func(cmd string) bool { return strings.Contains(cmd, "gift") || strings.Contains(cmd, "friend") },
		intent:  IntentGift,
		respond: func(string, models.VoiceContext) string {
			return "Based on your friend's interests and recent activities, I recommend these thoughtful gift options that align with their hobbies."
		},
	},
	{
		matches: func(cmd string) bool { return strings.Contains(cmd, "weather") },
		intent:  IntentWeather,
		respond: func(_ string, vc models.VoiceContext) string {
			return fmt.Sprintf("Given today's %s weather, I recommend these items to keep you comfortable and prepared.", strings.ToLower(vc.Weather))
		},
	},
	{
		matches: func(cmd string) bool { return strings.Contains(cmd, "health") || strings.Contains(cmd, "wellness") },
		intent:  IntentHealth,
		respond: func(string, models.VoiceContext) string {
			return "Based on your health goals and fitness data, here are some products that can support your wellness journey."
		},
	},
	{
		matches: func(cmd string) bool { return strings.Contains(cmd, "carbon") || strings.Contains(cmd, "environment") },
		intent:  IntentSustainability,
		respond: func(string, models.VoiceContext) string {
			return "I can show you the environmental impact of your choices and suggest alternatives to reduce your carbon footprint."
		},
	},
}

// respondAddToCart カート追加コマンドの応答（organic/ecoの特化分岐あり）
func respondAddToCart(cmd string, _ models.VoiceContext) string {
	if strings.Contains(cmd, "organic") {
		return "I've added organic products to your cart based on your preferences."
	}
	if strings.Contains(cmd, "eco") || strings.Contains(cmd, "sustainable") {
		return "I've added eco-friendly items to your cart. These choices help reduce your carbon footprint."
	}
	return "I've added the requested items to your cart. Is there anything else you'd like to add?"
}

// respondSearch 検索コマンドの応答（eco/giftの特化分岐あり）
func respondSearch(cmd string, _ models.VoiceContext) string {
	if strings.Contains(cmd, "eco") || strings.Contains(cmd, "sustainable") {
		return "Here are some eco-friendly alternatives that match your preferences and reduce environmental impact."
	}
	if strings.Contains(cmd, "gift") {
		return "Based on your recipient's interests and your budget, here are some thoughtful gift recommendations."
	}
	return "I found several products matching your search. Here are the top recommendations based on your aura and preferences."
}

// respondTrending コミュニティトレンドを応答に埋め込む（上位3件）
func respondTrending(_ string, vc models.VoiceContext) string {
	trends := vc.Trends
	if len(trends) > 3 {
		trends = trends[:3]
	}
	return fmt.Sprintf("In your area, the top trending items are: %s. These are popular among users with similar preferences.", strings.Join(trends, ", "))
}

// ProcessCommand コマンドを正規化（トリム+小文字化）し、最初にマッチした
// ルールのインテントと定型応答を返す。マッチなしは汎用応答。
func (vs *VoiceService) ProcessCommand(command string, vc models.VoiceContext) (string, string) {
	cmd := strings.ToLower(strings.TrimSpace(command))

	for _, rule := range voiceRules {
		if rule.matches(cmd) {
			return rule.intent, rule.respond(cmd, vc)
		}
	}

	return IntentUnknown, "I understand you're looking for assistance. Let me help you find exactly what you need based on your current aura, preferences, and context."
}
