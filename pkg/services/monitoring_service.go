package services

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// LogEntry は単一のリクエストログを表します。
type LogEntry struct {
	Timestamp    time.Time
	Path         string
	Method       string
	StatusCode   int
	ResponseTime time.Duration
}

// MonitoringService はAPIのモニタリング機能を提供します。
type MonitoringService struct {
	logs []LogEntry
	mu   sync.RWMutex
}

// NewMonitoringService は新しいMonitoringServiceを生成します。
func NewMonitoringService() *MonitoringService {
	return &MonitoringService{
		logs: make([]LogEntry, 0),
	}
}

// LogRequest はリクエストを記録します。
func (s *MonitoringService) LogRequest(entry LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
}

// LoggingMiddleware はリクエスト情報を記録するGinミドルウェアです。
func (s *MonitoringService) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// 次のミドルウェア/ハンドラを実行
		c.Next()

		// モニタリング自身のリクエストは記録しない
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/monitoring") {
			return
		}

		// リクエスト情報を記録
		entry := LogEntry{
			Timestamp:    start,
			Path:         path,
			Method:       c.Request.Method,
			StatusCode:   c.Writer.Status(),
			ResponseTime: time.Since(start),
		}
		s.LogRequest(entry)
	}
}

// StatsSummary はエンドポイント別の集計済み統計です。
type StatsSummary struct {
	TotalRequests  int              `json:"total_requests"`
	Endpoints      map[string]int   `json:"endpoints"`
	StatusCodes    map[string]int   `json:"status_codes"`
	AvgResponseMs  map[string]int64 `json:"avg_response_ms"`
	RecentErrors   []LogEntry       `json:"recent_errors"`
	PeriodHours    int              `json:"period_hours"`
	GeneratedAtUTC string           `json:"generated_at_utc"`
}

// GetStatsSummary は指定された期間のログを集計して統計を返します。
func (s *MonitoringService) GetStatsSummary(periodHours int) StatsSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now().UTC()
	since := now.Add(-time.Duration(periodHours) * time.Hour)

	filtered := make([]LogEntry, 0)
	for _, entry := range s.logs {
		if entry.Timestamp.After(since) {
			filtered = append(filtered, entry)
		}
	}

	// エンドポイント別の集計
	endpoints := make(map[string]int)
	for _, entry := range filtered {
		endpoints[entry.Path]++
	}

	// ステータスコード帯の集計
	statusCodes := map[string]int{
		"2xx Success":      0,
		"4xx Client Error": 0,
		"5xx Server Error": 0,
	}
	for _, entry := range filtered {
		switch {
		case entry.StatusCode >= 200 && entry.StatusCode < 300:
			statusCodes["2xx Success"]++
		case entry.StatusCode >= 400 && entry.StatusCode < 500:
			statusCodes["4xx Client Error"]++
		case entry.StatusCode >= 500:
			statusCodes["5xx Server Error"]++
		}
	}

	// 平均応答時間の集計
	responseTimeSum := make(map[string]time.Duration)
	responseCount := make(map[string]int)
	for _, entry := range filtered {
		responseTimeSum[entry.Path] += entry.ResponseTime
		responseCount[entry.Path]++
	}
	avgResponseMs := make(map[string]int64)
	for path, total := range responseTimeSum {
		avgResponseMs[path] = total.Milliseconds() / int64(responseCount[path])
	}

	// 直近のサーバーエラー（最大10件、新しい順）
	recentErrors := make([]LogEntry, 0)
	for i := len(filtered) - 1; i >= 0; i-- {
		if filtered[i].StatusCode >= 500 {
			recentErrors = append(recentErrors, filtered[i])
			if len(recentErrors) >= 10 {
				break
			}
		}
	}

	return StatsSummary{
		TotalRequests:  len(filtered),
		Endpoints:      endpoints,
		StatusCodes:    statusCodes,
		AvgResponseMs:  avgResponseMs,
		RecentErrors:   recentErrors,
		PeriodHours:    periodHours,
		GeneratedAtUTC: now.Format(time.RFC3339),
	}
}
