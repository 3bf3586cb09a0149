package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportops-analytics/internal/analytics"
	"github.com/sportops-analytics/internal/domain"
)

func TestDailyCounts(t *testing.T) {
	events := []domain.Event{
		{Date: "2025-03-10T10:00:00Z"},
		{Date: "2025-03-10T15:00:00Z"},
		{Date: "2025-03-08T10:00:00Z"},
		{Date: "2025-03-09T10:00:00Z"},
		{ID: "no-start"},
	}

	counts := analytics.DailyCounts(events)

	assert.Equal(t, []domain.DailyCount{
		{DateKey: "2025-03-08", Count: 1},
		{DateKey: "2025-03-09", Count: 1},
		{DateKey: "2025-03-10", Count: 2},
	}, counts)
}

func TestBaseline(t *testing.T) {
	active := day("2025-03-10")

	t.Run("empty history returns nil", func(t *testing.T) {
		assert.Nil(t, analytics.Baseline(nil, active))
	})

	t.Run("only the active day in history returns nil", func(t *testing.T) {
		counts := []domain.DailyCount{{DateKey: "2025-03-10", Count: 4}}
		assert.Nil(t, analytics.Baseline(counts, active))
	})

	t.Run("single other day equal to today", func(t *testing.T) {
		counts := []domain.DailyCount{
			{DateKey: "2025-03-09", Count: 4},
			{DateKey: "2025-03-10", Count: 4},
		}

		stats := analytics.Baseline(counts, active)

		assert.NotNil(t, stats)
		assert.Equal(t, 4, stats.TodayCount)
		assert.Equal(t, 4, stats.Median)
		assert.Equal(t, 0, stats.DeltaPercent)
		assert.Equal(t, 0, stats.AbsoluteDiff)
		assert.Equal(t, domain.BaselineNormal, stats.Label)
	})

	t.Run("active day absent counts as zero", func(t *testing.T) {
		counts := []domain.DailyCount{
			{DateKey: "2025-03-08", Count: 4},
			{DateKey: "2025-03-09", Count: 6},
		}

		stats := analytics.Baseline(counts, active)

		assert.NotNil(t, stats)
		assert.Equal(t, 0, stats.TodayCount)
		// Нижняя медиана [4 6] - элемент с индексом 1
		assert.Equal(t, 6, stats.Median)
		assert.Equal(t, -100, stats.DeltaPercent)
		assert.Equal(t, -6, stats.AbsoluteDiff)
		assert.Equal(t, domain.BaselineNormal, stats.Label)
	})

	t.Run("lower median over 30 past days", func(t *testing.T) {
		// 30 исторических дней со счётчиками 1..30: отсортированный массив
		// тот же, нижняя медиана - элемент с индексом floor(30/2)=15, т.е. 16
		counts := make([]domain.DailyCount, 0, 31)
		for i := 1; i <= 30; i++ {
			counts = append(counts, domain.DailyCount{
				DateKey: analytics.DayKey(active.AddDate(0, 0, i-31)),
				Count:   i,
			})
		}
		counts = append(counts, domain.DailyCount{DateKey: "2025-03-10", Count: 10})

		stats := analytics.Baseline(counts, active)

		assert.NotNil(t, stats)
		assert.Equal(t, 16, stats.Median)
		// round((10-16)/16*100) = round(-37.5) = -38
		assert.Equal(t, -38, stats.DeltaPercent)
		assert.Equal(t, -6, stats.AbsoluteDiff)
	})

	t.Run("only the most recent 30 other days are used", func(t *testing.T) {
		// 40 дней истории: поздние 30 имеют счётчик 10, ранние 10 дней - 1000.
		// Ранние должны быть отброшены.
		counts := make([]domain.DailyCount, 0, 41)
		for i := 40; i >= 31; i-- {
			counts = append(counts, domain.DailyCount{DateKey: analytics.DayKey(active.AddDate(0, 0, -i)), Count: 1000})
		}
		for i := 30; i >= 1; i-- {
			counts = append(counts, domain.DailyCount{DateKey: analytics.DayKey(active.AddDate(0, 0, -i)), Count: 10})
		}
		counts = append(counts, domain.DailyCount{DateKey: "2025-03-10", Count: 13})

		stats := analytics.Baseline(counts, active)

		assert.NotNil(t, stats)
		assert.Equal(t, 10, stats.Median)
		assert.Equal(t, 30, stats.DeltaPercent)
		assert.Equal(t, domain.BaselineUnusual, stats.Label)
	})

	t.Run("zero median guards the division", func(t *testing.T) {
		counts := []domain.DailyCount{
			{DateKey: "2025-03-09", Count: 0},
			{DateKey: "2025-03-10", Count: 7},
		}

		stats := analytics.Baseline(counts, active)

		assert.NotNil(t, stats)
		assert.Equal(t, 0, stats.DeltaPercent)
		assert.Equal(t, 7, stats.AbsoluteDiff)
		assert.Equal(t, domain.BaselineNormal, stats.Label)
	})

	t.Run("labels follow the 15/30 thresholds", func(t *testing.T) {
		history := []domain.DailyCount{
			{DateKey: "2025-03-08", Count: 10},
			{DateKey: "2025-03-09", Count: 10},
		}

		tests := []struct {
			today    int
			expected string
		}{
			{11, domain.BaselineNormal},   // +10%
			{12, domain.BaselineElevated}, // +20%
			{13, domain.BaselineUnusual},  // +30%
			{20, domain.BaselineUnusual},  // +100%
		}

		for _, tt := range tests {
			counts := append(history, domain.DailyCount{DateKey: "2025-03-10", Count: tt.today})
			stats := analytics.Baseline(counts, active)
			assert.NotNil(t, stats)
			assert.Equal(t, tt.expected, stats.Label, "todayCount=%d", tt.today)
		}
	})
}

func TestSevenDayTrend(t *testing.T) {
	active := day("2025-03-10")
	counts := []domain.DailyCount{
		{DateKey: "2025-03-04", Count: 3},
		{DateKey: "2025-03-07", Count: 5},
		{DateKey: "2025-03-10", Count: 2},
		{DateKey: "2025-02-01", Count: 99}, // вне окна тренда
	}

	trend := analytics.SevenDayTrend(counts, active)

	assert.Equal(t, []domain.DailyCount{
		{DateKey: "2025-03-04", Count: 3},
		{DateKey: "2025-03-05", Count: 0},
		{DateKey: "2025-03-06", Count: 0},
		{DateKey: "2025-03-07", Count: 5},
		{DateKey: "2025-03-08", Count: 0},
		{DateKey: "2025-03-09", Count: 0},
		{DateKey: "2025-03-10", Count: 2},
	}, trend)
}

func TestSevenDayTrend_EmptyHistory(t *testing.T) {
	trend := analytics.SevenDayTrend(nil, day("2025-03-10"))

	assert.Len(t, trend, 7)
	assert.Equal(t, "2025-03-04", trend[0].DateKey)
	assert.Equal(t, "2025-03-10", trend[6].DateKey)
	for _, dc := range trend {
		assert.Equal(t, 0, dc.Count)
	}
}
