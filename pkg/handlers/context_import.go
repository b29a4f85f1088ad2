package handlers

import (
	"encoding/csv"
	"net/http"
	"strings"

	"nexus-aura-api/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ContextImportHandler 購買履歴/カレンダーイベントのファイル取り込みハンドラ
// カレンダー/履歴プロバイダーからのエクスポート（.xlsx / .csv）を
// 正規化済みのコンテキスト断片に変換する。
type ContextImportHandler struct{}

// NewContextImportHandler 新しいContextImportHandlerを生成
func NewContextImportHandler() *ContextImportHandler {
	return &ContextImportHandler{}
}

// ImportContext アップロードされたファイルからコンテキスト断片を取り込む
func (h *ContextImportHandler) ImportContext(c *gin.Context) {
	c.Request.ParseMultipartForm(10 << 20) // 10MB limit

	file, fileHeader, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "ファイルの取得に失敗しました。",
		})
		return
	}
	defer file.Close()

	var rows [][]string
	fileName := strings.ToLower(fileHeader.Filename)

	switch {
	case strings.HasSuffix(fileName, ".xlsx"):
		f, err := excelize.OpenReader(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Excelファイルの読み込みに失敗しました。",
			})
			return
		}
		rows, err = f.GetRows(f.GetSheetName(0))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Excelシートの行取得に失敗しました。",
			})
			return
		}
	case strings.HasSuffix(fileName, ".csv"):
		r := csv.NewReader(file)
		rows, err = r.ReadAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "CSVファイルの解析に失敗しました。",
			})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "サポートされていないファイル形式です。.xlsxまたは.csvをアップロードしてください。",
		})
		return
	}

	if len(rows) < 2 { // Header + at least one data row
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "ファイルにはヘッダー行と少なくとも1行のデータが必要です。",
		})
		return
	}

	result := parseContextRows(rows[0], rows[1:])

	if result.RowsImported == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "取り込める行がありません。category列またはevent列が必要です。",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// parseContextRows ヘッダーから列を検出し、行を購買履歴とイベントに振り分ける
func parseContextRows(header []string, dataRows [][]string) models.ContextImportResult {
	categoryIdx := findIndex(header, "category", "カテゴリ")
	productIdx := findIndex(header, "product", "item", "商品", "商品名")
	dateIdx := findIndex(header, "date", "日付")
	eventIdx := findIndex(header, "event", "calendar_event", "イベント", "予定")

	result := models.ContextImportResult{
		PurchaseHistory: make([]models.PurchaseRecord, 0),
		CalendarEvents:  make([]string, 0),
	}

	for _, row := range dataRows {
		imported := false

		if category := cellAt(row, categoryIdx); category != "" {
			result.PurchaseHistory = append(result.PurchaseHistory, models.PurchaseRecord{
				Category: category,
				Product:  cellAt(row, productIdx),
				Date:     cellAt(row, dateIdx),
			})
			imported = true
		}

		if event := cellAt(row, eventIdx); event != "" {
			result.CalendarEvents = append(result.CalendarEvents, event)
			imported = true
		}

		if imported {
			result.RowsImported++
		} else {
			result.RowsSkipped++
		}
	}

	return result
}

// cellAt 範囲外アクセスを空文字として扱う安全なセル取得
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
