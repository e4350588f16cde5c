package font

import (
	"strings"
	"sync"
)

// Registry is an ordered sequence of fonts (spec §3, "Font Registry").
// Index is permanent for the registry's lifetime: index 0 is always the
// reserved invalid-font sentinel, indices 1..N are user-added in the
// order they were registered. All lookups elsewhere in the engine use
// these indices, never names.
type Registry struct {
	mu          sync.Mutex
	fonts       []*Font
	byName      map[string]int // normalized name -> index, for AddFont idempotency
	glyphRes    int
	glyphResSet bool
}

// NewRegistry creates an empty registry. glyphResPx is fixed for the
// registry's lifetime (spec §4.2 invariant): every font added to it is
// sized at glyphResPx square, 72dpi.
func NewRegistry(glyphResPx int) *Registry {
	r := &Registry{
		byName:      make(map[string]int),
		glyphRes:    glyphResPx,
		glyphResSet: true,
	}
	r.fonts = append(r.fonts, invalidFont())
	r.byName[""] = 0
	return r
}

// GlyphResPX returns the glyph pixel resolution fixed at construction.
func (r *Registry) GlyphResPX() int {
	return r.glyphRes
}

// AddFont loads fbytes as a font named name and appends it to the
// registry, returning its permanent index. Adding the same normalized
// name twice returns the existing index rather than duplicating the
// font — carried forward from the original ks::text::Font map/vector
// pairing (spec §4.2, SPEC_FULL §4.2).
//
// Fails with core.EFONTFILEINVALID when fbytes is empty, or with
// core.EFONTLOADFAILED / core.ECHARMAPMISSING when the rasterizer
// rejects the bytes or the font has no Unicode charmap.
func (r *Registry) AddFont(name string, fbytes []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := normalizeName(name)
	if idx, ok := r.byName[key]; ok && idx != 0 {
		return idx, nil
	}
	f, err := loadFont(name, fbytes, r.glyphRes)
	if err != nil {
		return 0, err
	}
	acquireRasterizerContext()
	idx := len(r.fonts)
	r.fonts = append(r.fonts, f)
	r.byName[key] = idx
	tracer().Infof("registry added font %q at index %d", name, idx)
	return idx, nil
}

// Lookup returns the font at index, or the invalid sentinel (index 0) if
// the index is out of range.
func (r *Registry) Lookup(index int) *Font {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.fonts) {
		return r.fonts[0]
	}
	return r.fonts[index]
}

// Len returns the number of entries, including the invalid sentinel
// (so an empty registry has Len() == 1).
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fonts)
}

// NamesInOrder returns the names of all user-added fonts (indices 1..N),
// as they were passed to AddFont, in registration order.
func (r *Registry) NamesInOrder() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.fonts)-1)
	for _, f := range r.fonts[1:] {
		names = append(names, f.Name)
	}
	return names
}

// IndexByName returns the index of a registered font by (unnormalized)
// name, or 0 (the invalid sentinel) if not found.
func (r *Registry) IndexByName(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx, ok := r.byName[normalizeName(name)]; ok {
		return idx
	}
	return 0
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// --- process-wide rasterizer context refcount -------------------------
//
// The shaping-engine handle created per font (spec §5) stands in for the
// process-wide, reference-counted rasterizer library context: one
// reference is acquired for every font loaded into any registry in the
// process, and a registry's references are released on its Close. Mirrors the teacher's sync.Once/sync.Mutex singleton idiom
// (core/font/font.go's GlobalRegistry / fallbackFontLoading).

var (
	rasterizerMu    sync.Mutex
	rasterizerCount int
)

func acquireRasterizerContext() {
	rasterizerMu.Lock()
	defer rasterizerMu.Unlock()
	rasterizerCount++
}

func releaseRasterizerContext() {
	rasterizerMu.Lock()
	defer rasterizerMu.Unlock()
	if rasterizerCount > 0 {
		rasterizerCount--
	}
}

// Close releases this registry's share of the process-wide rasterizer
// context. After Close, the registry must not be used again.
func (r *Registry) Close() error {
	r.mu.Lock()
	n := len(r.fonts) - 1
	r.mu.Unlock()
	for i := 0; i < n; i++ {
		releaseRasterizerContext()
	}
	return nil
}

// RasterizerContextRefs returns the current process-wide rasterizer
// context refcount. Exposed for tests verifying Close's bookkeeping.
func RasterizerContextRefs() int {
	rasterizerMu.Lock()
	defer rasterizerMu.Unlock()
	return rasterizerCount
}
