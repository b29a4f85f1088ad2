package models

// ContextRecord represents a normalized snapshot of the user's current
// physiological / environmental / behavioral signals.
// ハンドラー側で正規化済みの値のみを保持します（エンジンは補完を行いません）。
type ContextRecord struct {
	StressLevel     int              `json:"stress_level"`  // 1-10
	EnergyLevel     int              `json:"energy_level"`  // 1-10
	Weather         string           `json:"weather"`       // Sunny / Rainy / Cloudy / Snowy
	HourOfDay       int              `json:"hour_of_day"`   // 0-23
	MonthOfYear     int              `json:"month_of_year"` // 1-12
	Age             int              `json:"age"`
	Location        string           `json:"location"`
	CalendarEvents  []string         `json:"calendar_events"`
	FamilyMembers   []string         `json:"family_members"`
	HealthGoals     []string         `json:"health_goals"`
	FitnessData     FitnessData      `json:"fitness_data"`
	PurchaseHistory []PurchaseRecord `json:"purchase_history"`
}

// FitnessData ウェアラブル等から取得したフィットネス指標
type FitnessData struct {
	Steps    int `json:"steps"`
	Calories int `json:"calories"`
	Water    int `json:"water"` // グラス数/日
}

// PurchaseRecord 購買履歴の1レコード
type PurchaseRecord struct {
	Category string `json:"category"`
	Product  string `json:"product,omitempty"`
	Date     string `json:"date,omitempty"`
}

// ContextRequest represents an incoming context payload.
// 数値フィールドはポインタにして「未指定」と「0」を区別します。
// 未指定の値はハンドラー側でドキュメント化されたデフォルトに補完されます
// （stress=5, energy=7, weather=Sunny, age=30, hour/month=現在時刻）。
type ContextRequest struct {
	StressLevel     *int             `json:"stress_level,omitempty"`
	EnergyLevel     *int             `json:"energy_level,omitempty"`
	Weather         string           `json:"weather,omitempty"`
	HourOfDay       *int             `json:"hour_of_day,omitempty" binding:"omitempty,min=0,max=23"`
	MonthOfYear     *int             `json:"month_of_year,omitempty" binding:"omitempty,min=1,max=12"`
	Age             *int             `json:"age,omitempty"`
	Location        string           `json:"location,omitempty"`
	CalendarEvents  []string         `json:"calendar_events,omitempty"`
	FamilyMembers   []string         `json:"family_members,omitempty"`
	HealthGoals     []string         `json:"health_goals,omitempty"`
	FitnessData     *FitnessData     `json:"fitness_data,omitempty"`
	PurchaseHistory []PurchaseRecord `json:"purchase_history,omitempty"`
}

// AuraRecommendation オーラ状態ごとの推奨バンドル
type AuraRecommendation struct {
	Categories []string `json:"categories"`
	Products   []string `json:"products"`
	UITheme    string   `json:"ui_theme"`
	Colors     []string `json:"colors"`
}

// AuraResponse represents the result of an aura calculation
type AuraResponse struct {
	Aura            string             `json:"aura"`
	Color           string             `json:"color"`
	Recommendations AuraRecommendation `json:"recommendations"`
	CalculatedAt    string             `json:"calculated_at"`
}

// PredictionResponse represents the merged prediction timeline
type PredictionResponse struct {
	Predictions []string `json:"predictions"`
	Count       int      `json:"count"`
	GeneratedAt string   `json:"generated_at"`
}

// SustainabilityReportRequest カート内容のサステナビリティレポート要求
type SustainabilityReportRequest struct {
	Cart []string `json:"cart"`
}

// SustainabilityReport represents the environmental impact of a cart
type SustainabilityReport struct {
	CarbonFootprint float64  `json:"carbon_footprint"`
	EcoGrade        string   `json:"eco_grade"`
	GradeLabel      string   `json:"grade_label"`
	GradeColor      string   `json:"grade_color"`
	EcoScore        float64  `json:"eco_score"` // 0-100
	Recommendations []string `json:"recommendations"`
}

// WasteReductionRequest サステナブルな選択肢のリスト
type WasteReductionRequest struct {
	Choices []string `json:"choices" binding:"required"`
}

// VoiceContext carries caller-owned live state consulted by the voice router.
// エンジン自体は状態を持たないため、呼び出し側が都度組み立てます。
type VoiceContext struct {
	Trends  []string `json:"trends,omitempty"`
	Weather string   `json:"weather,omitempty"`
	Aura    string   `json:"aura,omitempty"`
}

// VoiceCommandRequest 音声/テキストコマンドのリクエスト
type VoiceCommandRequest struct {
	Command   string       `json:"command" binding:"required"`
	SessionID string       `json:"session_id,omitempty"`
	Context   VoiceContext `json:"context,omitempty"`
}

// VoiceCommandResponse 音声コマンドの応答
type VoiceCommandResponse struct {
	Intent    string `json:"intent"`
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Aura      string `json:"aura,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ContextImportResult Excel/CSVから取り込んだコンテキスト断片
type ContextImportResult struct {
	PurchaseHistory []PurchaseRecord `json:"purchase_history"`
	CalendarEvents  []string         `json:"calendar_events"`
	RowsImported    int              `json:"rows_imported"`
	RowsSkipped     int              `json:"rows_skipped"`
}
