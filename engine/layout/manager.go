package layout

import (
	"strings"

	"github.com/crosswovenscript/glint/core"
	"github.com/crosswovenscript/glint/core/dimen"
	"github.com/crosswovenscript/glint/core/font"
	"github.com/crosswovenscript/glint/core/utext"
	"github.com/crosswovenscript/glint/engine/atlas"
	"github.com/crosswovenscript/glint/engine/shaper"
)

// invalidFontLineHeightNumerator/Denominator give the invalid sentinel
// font's constant contribution to line spacing: glyph_res_px * 6/5 (spec
// §4.5 step 4).
const invalidFontLineHeightNumerator = 6
const invalidFontLineHeightDenominator = 5

// Manager is the Layout Manager of spec §4.5: it owns a Font Registry and
// a Glyph Atlas, drives the Shaper, and assembles the final positioned
// Lines. Not safe for concurrent use (spec §5): all calls must be
// serialized by the caller.
type Manager struct {
	registry *font.Registry
	atlas    *atlas.Atlas
	shaper   *shaper.Shaper
}

// NewManager constructs a Manager with its own Font Registry, Glyph Atlas
// and Shaper, wiring the atlas's observer callbacks as given (spec §4.5,
// "added: Observer registration shape"). Either callback may be nil.
func NewManager(glyphResPX, atlasSizePX, sdfOffsetPX int, onNewAtlas atlas.NewAtlasFunc, onNewGlyph atlas.NewGlyphFunc) (*Manager, error) {
	registry := font.NewRegistry(glyphResPX)
	a := atlas.NewAtlas(atlasSizePX, glyphResPX, sdfOffsetPX, onNewAtlas, onNewGlyph)
	return &Manager{
		registry: registry,
		atlas:    a,
		shaper:   shaper.NewShaper(registry),
	}, nil
}

// AddFont registers a font with the Registry and subscribes it with the
// Atlas (spec §4.5, "add_font").
func (m *Manager) AddFont(name string, fontBytes []byte) (int, error) {
	idx, err := m.registry.AddFont(name, fontBytes)
	if err != nil {
		return 0, err
	}
	if err := m.atlas.AddFont(idx, m.registry.Lookup(idx)); err != nil {
		return 0, err
	}
	tracer().Infof("manager added font %q at index %d", name, idx)
	return idx, nil
}

// CreateHint parses prioCSV against the registry and builds a Hint (spec
// §4.5, "create_hint"). Fonts named in prioCSV, in the order named, become
// PrioFonts; every other registered font becomes a FallbackFonts entry, in
// registry order. Fails with core.ENOFONTSAVAILABLE if no font has been
// registered yet.
func (m *Manager) CreateHint(prioCSV string, fontSearch shaper.FontSearchMode, direction shaper.DirectionMode, script shaper.ScriptMode) (*shaper.Hint, error) {
	if m.registry.Len() <= 1 {
		return nil, core.Error(core.ENOFONTSAVAILABLE, "CreateHint: registry has no fonts")
	}
	prioSet := make(map[int]bool)
	var prioFonts []int
	for _, name := range strings.Split(prioCSV, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if idx := m.registry.IndexByName(name); idx != 0 {
			if !prioSet[idx] {
				prioFonts = append(prioFonts, idx)
				prioSet[idx] = true
			}
		}
	}
	var fallbackFonts []int
	for i := 1; i < m.registry.Len(); i++ {
		if !prioSet[i] {
			fallbackFonts = append(fallbackFonts, i)
		}
	}
	return &shaper.Hint{
		PrioFonts:      prioFonts,
		FallbackFonts:  fallbackFonts,
		FontSearch:     fontSearch,
		Direction:      direction,
		Script:         script,
		MaxLineWidthPX: dimen.Infinity,
		GlyphResPX:     m.registry.GlyphResPX(),
	}, nil
}

// GetGlyphs drives the Shaper and Atlas over utf16Text under hint and
// returns the positioned Lines (spec §4.5, "get_glyphs"). Short-circuits
// to (nil, nil) on empty text; fails with core.EHINTINVALID if hint names
// no usable font.
func (m *Manager) GetGlyphs(utf16Text []uint16, hint *shaper.Hint) ([]Line, error) {
	if len(utf16Text) == 0 {
		return nil, nil
	}
	if hint == nil || !hint.HasFonts() {
		return nil, core.Error(core.EHINTINVALID, "GetGlyphs: hint has no usable font")
	}
	shapedLines, err := m.shaper.GetGlyphs(utf16Text, hint)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(shapedLines))
	for _, sl := range shapedLines {
		line, err := m.layoutLine(&sl)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// layoutLine implements spec §4.5 step "get_glyphs", sub-steps 1-5 for a
// single ShapedLine: resolve each glyph's atlas image, walk the pen
// cursor, accumulate the bounding box, and compute spacing from the
// distinct fonts used.
func (m *Manager) layoutLine(sl *shaper.ShapedLine) (Line, error) {
	line := Line{Start: sl.Start, End: sl.End, RTL: sl.RTL}
	var penX dimen.Dimen
	fontsUsed := make(map[int]bool)
	first := true

	for i, gi := range sl.Glyphs {
		off := sl.Offsets[i]
		f := m.registry.Lookup(gi.Font)
		desc, err := m.atlas.GetGlyph(gi.Font, gi.GlyphIndex, f, gi.ZeroWidth)
		if err != nil {
			// A real rasterizer failure is fatal to the call (spec §4.5,
			// "Failure semantics"); zero-width and missing-glyph paths
			// never reach here since Atlas.GetGlyph resolves them itself.
			tracer().Errorf("layoutLine: glyph %d/%d: %v", gi.Font, gi.GlyphIndex, err)
			return Line{}, err
		}

		x0 := penX + off.OffsetX + desc.BearingX
		x1 := x0 + desc.Width
		y1 := off.OffsetY + desc.BearingY
		y0 := y1 - desc.Height
		penX += off.AdvanceX

		line.ListGlyphs = append(line.ListGlyphs, Glyph{
			Cluster:   gi.Cluster,
			AtlasPage: desc.Page,
			TexX:      desc.TexX,
			TexY:      desc.TexY,
			SDFX:      desc.SDFX,
			SDFY:      desc.SDFY,
			X0:        x0,
			Y0:        y0,
			X1:        x1,
			Y1:        y1,
		})
		line.addAtlasPage(desc.Page)
		line.bounds(dimen.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}, first)
		first = false
		fontsUsed[gi.Font] = true
	}

	line.Spacing = m.lineSpacing(fontsUsed)
	line.Ascent = dimen.Max(0, line.YMax)
	line.Descent = dimen.Max(0, -line.YMin)
	return line, nil
}

// lineSpacing implements spec §4.5 step 4: the maximum designer line
// height across the distinct fonts used in the line. The invalid font
// (index 0) contributes a constant glyph_res_px*6/5 rather than a real
// face metric, since it has none.
func (m *Manager) lineSpacing(fontsUsed map[int]bool) dimen.Dimen {
	var spacing dimen.Dimen
	glyphRes := dimen.Dimen(m.registry.GlyphResPX())
	for idx := range fontsUsed {
		var h dimen.Dimen
		if idx == 0 {
			h = glyphRes * invalidFontLineHeightNumerator / invalidFontLineHeightDenominator
		} else {
			h = m.registry.Lookup(idx).LineHeightPX()
		}
		spacing = dimen.Max(spacing, h)
	}
	return spacing
}

// ConvertUTF8ToUTF16 delegates to the Unicode conversion helpers (spec
// §4.5, "convert_utf8_to_utf16").
func ConvertUTF8ToUTF16(s string) []uint16 {
	return utext.ToUTF16(s)
}

// ConvertUTF16ToUTF8 delegates to the Unicode conversion helpers.
func ConvertUTF16ToUTF8(u []uint16) string {
	return utext.FromUTF16(u)
}

// ConvertUTF32ToUTF8 delegates to the Unicode conversion helpers (spec
// §4.5, "convert_utf32_to_utf8").
func ConvertUTF32ToUTF8(runes []rune) string {
	return utext.FromUTF32(runes)
}

// Close releases the Manager's registry (spec §4.5, "added: teardown"),
// decrementing the shared rasterizer-context refcount. After Close, the
// Manager must not be used again.
func (m *Manager) Close() error {
	return m.registry.Close()
}
