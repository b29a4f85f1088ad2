package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	config "nexus-aura-api/configs"
)

// WeatherContextService コンテキストプロバイダーとして現在の天気ラベルを
// 取得するサービス。エンジン群はI/Oを行わないため、天気の取得は
// リクエスト正規化の前段でのみ使用される。APIキー未設定時は無効。
type WeatherContextService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewWeatherContextService 新しいWeatherContextServiceを作成
func NewWeatherContextService(cfg *config.OpenWeatherMapConfig) *WeatherContextService {
	return &WeatherContextService{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled APIキーが設定されているかどうか
func (ws *WeatherContextService) Enabled() bool {
	return ws.apiKey != ""
}

// owmResponse OpenWeatherMap現在天気APIのレスポンス（必要部分のみ）
type owmResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

// CurrentWeatherLabel 指定した都市の現在天気をコンテキスト用ラベル
// （Sunny/Rainy/Cloudy/Snowy）に変換して返す。
func (ws *WeatherContextService) CurrentWeatherLabel(city string) (string, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s", ws.baseURL, url.QueryEscape(city), ws.apiKey)

	resp, err := ws.client.Get(endpoint)
	if err != nil {
		return "", fmt.Errorf("天気データの取得に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("天気APIがステータス%dを返しました", resp.StatusCode)
	}

	var data owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("天気レスポンスの解析に失敗: %w", err)
	}

	if len(data.Weather) == 0 {
		return "", fmt.Errorf("天気データが空です")
	}

	return MapWeatherCondition(data.Weather[0].Main), nil
}

// MapWeatherCondition OpenWeatherMapの天気区分をコンテキストラベルに変換
// 不明な区分はSunnyとして扱う。
func MapWeatherCondition(condition string) string {
	switch condition {
	case "Rain", "Drizzle", "Thunderstorm":
		return "Rainy"
	case "Snow":
		return "Snowy"
	case "Clouds", "Mist", "Fog", "Haze":
		return "Cloudy"
	default:
		return "Sunny"
	}
}
