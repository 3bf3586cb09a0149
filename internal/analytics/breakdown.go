package analytics

import (
	"sort"
	"strings"

	"github.com/sportops-analytics/internal/domain"
)

// Пороговая таблица уровней фактора (независима от таблицы внимания 5/3)
const (
	factorHighMin   = 5
	factorMediumMin = 2
)

// FallbackLabel - метка группы по умолчанию для разбивок по региону и фактору
const FallbackLabel = "Other"

// countGroup - промежуточная группа агрегации
type countGroup struct {
	label string
	count int
}

// groupByLabel считает события по меткам, сохраняя порядок первого появления.
// Стабильный порядок групп нужен для детерминированного tie-break при
// последующей сортировке по убыванию.
func groupByLabel(events []domain.Event, labelOf func(domain.Event) string) []countGroup {
	index := make(map[string]int, len(events))
	groups := make([]countGroup, 0, len(events))

	for _, e := range events {
		label := labelOf(e)
		if i, ok := index[label]; ok {
			groups[i].count++
			continue
		}
		index[label] = len(groups)
		groups = append(groups, countGroup{label: label, count: 1})
	}

	return groups
}

// sortDescending сортирует группы по убыванию количества.
// SliceStable сохраняет first-seen порядок для равных счётчиков.
func sortDescending(groups []countGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})
}

// SportBreakdown группирует события по виду спорта (в нижнем регистре,
// "other" при отсутствии) и прикрепляет display glyph из внешнего справочника.
func SportBreakdown(events []domain.Event, glyphs GlyphLookup) []domain.BreakdownEntry {
	groups := groupByLabel(events, func(e domain.Event) string {
		if e.Sport == "" {
			return "other"
		}
		return strings.ToLower(e.Sport)
	})
	sortDescending(groups)

	entries := make([]domain.BreakdownEntry, len(groups))
	for i, g := range groups {
		entries[i] = domain.BreakdownEntry{
			Label: g.label,
			Count: g.count,
			Glyph: glyphs.Glyph(g.label),
		}
	}
	return entries
}

// RegionBreakdown группирует события по городу с fallback на регион
func RegionBreakdown(events []domain.Event) []domain.BreakdownEntry {
	groups := groupByLabel(events, func(e domain.Event) string {
		switch {
		case e.City != "":
			return e.City
		case e.Region != "":
			return e.Region
		default:
			return FallbackLabel
		}
	})
	sortDescending(groups)

	entries := make([]domain.BreakdownEntry, len(groups))
	for i, g := range groups {
		entries[i] = domain.BreakdownEntry{Label: g.label, Count: g.count}
	}
	return entries
}

// FactorBreakdown группирует события по обобщённому "фактору" активности:
// competition -> sport -> city -> "Other". Уровень группы классифицируется
// по таблице 5/2.
func FactorBreakdown(events []domain.Event) []domain.FactorEntry {
	groups := groupByLabel(events, func(e domain.Event) string {
		switch {
		case e.Competition != "":
			return e.Competition
		case e.Sport != "":
			return e.Sport
		case e.City != "":
			return e.City
		default:
			return FallbackLabel
		}
	})
	sortDescending(groups)

	entries := make([]domain.FactorEntry, len(groups))
	for i, g := range groups {
		entries[i] = domain.FactorEntry{
			Label: g.label,
			Count: g.count,
			Level: factorLevel(g.count),
		}
	}
	return entries
}

// factorLevel классифицирует группу фактора по количеству событий
func factorLevel(count int) string {
	switch {
	case count >= factorHighMin:
		return domain.FactorHigh
	case count >= factorMediumMin:
		return domain.FactorMedium
	default:
		return domain.FactorLow
	}
}
