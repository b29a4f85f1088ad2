package services

import (
	"time"

	"nexus-aura-api/pkg/models"
)

// コンテキスト欠損時のドキュメント化されたデフォルト値
const (
	defaultStressLevel = 5
	defaultEnergyLevel = 7
	defaultAge         = 30
)

// ContextDefaults リクエストで省略されたフィールドの補完値
type ContextDefaults struct {
	Weather  string
	Location string
}

// NormalizeContext リクエストを正規化済みのContextRecordに変換する。
// エンジン群は正規化済みの入力のみを前提とするため、デフォルト補完と
// 範囲外数値のクランプはすべてここで行う（エンジン内部では行わない）。
func NormalizeContext(req models.ContextRequest, defaults ContextDefaults, now time.Time) models.ContextRecord {
	record := models.ContextRecord{
		StressLevel:     defaultStressLevel,
		EnergyLevel:     defaultEnergyLevel,
		Weather:         defaults.Weather,
		HourOfDay:       now.Hour(),
		MonthOfYear:     int(now.Month()),
		Age:             defaultAge,
		Location:        defaults.Location,
		CalendarEvents:  req.CalendarEvents,
		FamilyMembers:   req.FamilyMembers,
		HealthGoals:     req.HealthGoals,
		PurchaseHistory: req.PurchaseHistory,
	}

	if req.StressLevel != nil {
		record.StressLevel = clampLevel(*req.StressLevel)
	}
	if req.EnergyLevel != nil {
		record.EnergyLevel = clampLevel(*req.EnergyLevel)
	}
	if req.Weather != "" {
		record.Weather = req.Weather
	}
	if req.HourOfDay != nil {
		record.HourOfDay = *req.HourOfDay
	}
	if req.MonthOfYear != nil {
		record.MonthOfYear = *req.MonthOfYear
	}
	if req.Age != nil {
		record.Age = *req.Age
	}
	if req.Location != "" {
		record.Location = req.Location
	}
	if req.FitnessData != nil {
		record.FitnessData = *req.FitnessData
	}

	return record
}

// clampLevel ストレス/エナジーの値を1-10に丸める
func clampLevel(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// containsString スライス内の完全一致を確認
func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
