package analytics

// DefaultGlyph - glyph для видов спорта, отсутствующих в справочнике
const DefaultGlyph = "🏅"

// GlyphLookup - внешний справочник display glyph по виду спорта.
// Ключ - вид спорта в нижнем регистре.
type GlyphLookup interface {
	Glyph(sport string) string
}

// MapGlyphLookup - справочник glyph на основе map с fallback по умолчанию
type MapGlyphLookup map[string]string

// Glyph возвращает glyph вида спорта или DefaultGlyph для неизвестных
func (m MapGlyphLookup) Glyph(sport string) string {
	if g, ok := m[sport]; ok {
		return g
	}
	return DefaultGlyph
}

// DefaultGlyphs возвращает встроенный справочник основных видов спорта
func DefaultGlyphs() MapGlyphLookup {
	return MapGlyphLookup{
		"football":   "⚽",
		"basketball": "🏀",
		"tennis":     "🎾",
		"rugby":      "🏉",
		"hockey":     "🏒",
		"volleyball": "🏐",
		"handball":   "🤾",
		"baseball":   "⚾",
		"golf":       "⛳",
		"running":    "🏃",
		"cycling":    "🚴",
		"swimming":   "🏊",
	}
}
