package scenery

import "sort"

// Glyph holds the layout metrics of one character inside a font atlas.
type Glyph struct {
	Code      rune    `yaml:"code" toml:"code"`
	PositionX float32 `yaml:"position_x" toml:"position_x"`
	PositionY float32 `yaml:"position_y" toml:"position_y"`
	Width     float32 `yaml:"width" toml:"width"`
	Height    float32 `yaml:"height" toml:"height"`
	BearingX  float32 `yaml:"bearing_x" toml:"bearing_x"`
	BearingY  float32 `yaml:"bearing_y" toml:"bearing_y"`
	Advance   float32 `yaml:"advance" toml:"advance"`
}

// Font is a pooled font resource. The core only carries its metrics;
// rasterising and packing the atlas happen elsewhere.
type Font struct {
	Name         string  `yaml:"name" toml:"name"`
	AtlasWidth   int     `yaml:"atlas_width" toml:"atlas_width"`
	AtlasHeight  int     `yaml:"atlas_height" toml:"atlas_height"`
	SpaceAdvance float32 `yaml:"space_advance" toml:"space_advance"`
	Glyphs       []Glyph `yaml:"glyphs" toml:"glyphs"`
}

// SortGlyphs orders glyphs by code so Glyph can binary search them.
func (f *Font) SortGlyphs() {
	sort.Slice(f.Glyphs, func(i, j int) bool { return f.Glyphs[i].Code < f.Glyphs[j].Code })
}

// Glyph looks up the metrics of code. Glyphs must be sorted.
func (f *Font) Glyph(code rune) (Glyph, bool) {
	i := sort.Search(len(f.Glyphs), func(i int) bool { return f.Glyphs[i].Code >= code })
	if i < len(f.Glyphs) && f.Glyphs[i].Code == code {
		return f.Glyphs[i], true
	}
	return Glyph{}, false
}
