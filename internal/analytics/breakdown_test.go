package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportops-analytics/internal/analytics"
	"github.com/sportops-analytics/internal/domain"
)

func TestSportBreakdown(t *testing.T) {
	events := []domain.Event{
		{Sport: "Football"},
		{Sport: "football"},
		{Sport: "FOOTBALL"},
		{Sport: "Rugby"},
		{Sport: ""},
	}

	entries := analytics.SportBreakdown(events, analytics.DefaultGlyphs())

	assert.Len(t, entries, 3)
	assert.Equal(t, domain.BreakdownEntry{Label: "football", Count: 3, Glyph: "⚽"}, entries[0])
	assert.Equal(t, domain.BreakdownEntry{Label: "rugby", Count: 1, Glyph: "🏉"}, entries[1])
	// Отсутствующий спорт попадает в "other" с glyph по умолчанию
	assert.Equal(t, domain.BreakdownEntry{Label: "other", Count: 1, Glyph: analytics.DefaultGlyph}, entries[2])
}

func TestRegionBreakdown_FallbackChain(t *testing.T) {
	events := []domain.Event{
		{City: "Barcelona"},
		{City: "Barcelona", Region: "Catalonia"},
		{Region: "Catalonia"},
		{},
	}

	entries := analytics.RegionBreakdown(events)

	assert.Equal(t, []domain.BreakdownEntry{
		{Label: "Barcelona", Count: 2},
		{Label: "Catalonia", Count: 1},
		{Label: "Other", Count: 1},
	}, entries)
}

func TestFactorBreakdown(t *testing.T) {
	events := []domain.Event{
		{Competition: "La Liga"}, {Competition: "La Liga"}, {Competition: "La Liga"},
		{Competition: "La Liga"}, {Competition: "La Liga"},
		{Sport: "Tennis"}, {Sport: "Tennis"},
		{City: "Girona"},
		{},
	}

	entries := analytics.FactorBreakdown(events)

	assert.Len(t, entries, 4)

	// Пороги фактора 5/2, не путать с таблицей внимания 5/3
	assert.Equal(t, domain.FactorEntry{Label: "La Liga", Count: 5, Level: domain.FactorHigh}, entries[0])
	assert.Equal(t, domain.FactorEntry{Label: "Tennis", Count: 2, Level: domain.FactorMedium}, entries[1])
	assert.Equal(t, domain.FactorLow, entries[2].Level)
	assert.Equal(t, domain.FactorLow, entries[3].Level)
}

func TestBreakdown_TiesKeepFirstSeenOrder(t *testing.T) {
	events := []domain.Event{
		{City: "Girona"},
		{City: "Tarragona"},
		{City: "Lleida"},
		{City: "Tarragona"},
		{City: "Girona"},
		{City: "Lleida"},
	}

	entries := analytics.RegionBreakdown(events)

	// Все по 2: стабильная сортировка сохраняет порядок первого появления
	assert.Equal(t, []domain.BreakdownEntry{
		{Label: "Girona", Count: 2},
		{Label: "Tarragona", Count: 2},
		{Label: "Lleida", Count: 2},
	}, entries)
}

func TestBreakdown_EmptyInput(t *testing.T) {
	assert.Empty(t, analytics.SportBreakdown(nil, analytics.DefaultGlyphs()))
	assert.Empty(t, analytics.RegionBreakdown(nil))
	assert.Empty(t, analytics.FactorBreakdown(nil))
}
