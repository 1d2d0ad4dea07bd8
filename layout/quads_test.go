package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edwinsyarief/scenery"
	"github.com/edwinsyarief/scenery/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFont() *scenery.Font {
	f := &scenery.Font{
		Name:         "test",
		AtlasWidth:   64,
		AtlasHeight:  64,
		SpaceAdvance: 5,
		Glyphs: []scenery.Glyph{
			{Code: 'b', PositionX: 10, Width: 4, Height: 6, BearingX: 1, BearingY: -6, Advance: 6},
			{Code: 'a', PositionX: 0, Width: 4, Height: 6, BearingX: 1, BearingY: -6, Advance: 6},
		},
	}
	f.SortGlyphs()
	return f
}

func TestQuadsLayout(t *testing.T) {
	indices, attributes, err := layout.Quads{}.Layout(testFont(), "a b", nil, nil)
	require.NoError(t, err)
	require.Len(t, indices, 2*layout.IndicesPerGlyph)
	require.Len(t, attributes, 2*layout.FloatsPerGlyph)

	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, indices)
	// first glyph at the origin plus bearing
	assert.Equal(t, []float32{
		1, -6, 0, 0,
		5, -6, 4, 0,
		5, 0, 4, 6,
		1, 0, 0, 6,
	}, attributes[:16])
	// 'a' advance (6) plus one space (5) plus bearing (1)
	assert.Equal(t, float32(12), attributes[16])
	assert.Equal(t, float32(10), attributes[18])
}

func TestQuadsReusesBuffers(t *testing.T) {
	indices := make([]uint16, 0, 64)
	attributes := make([]float32, 0, 128)
	out, _, err := layout.Quads{}.Layout(testFont(), "ab", indices, attributes)
	require.NoError(t, err)
	assert.Same(t, &indices[:1][0], &out[0])
}

func TestQuadsMissingGlyph(t *testing.T) {
	_, _, err := layout.Quads{}.Layout(testFont(), "abc", nil, nil)
	require.ErrorIs(t, err, scenery.ErrGlyphNotFound)
}

func TestQuadsWithTextList(t *testing.T) {
	em := scenery.NewEntityManager(4)
	texts := scenery.NewTextList(em)
	fonts := scenery.NewPool[scenery.Font](1)
	font := fonts.Add(*testFont())
	e := em.MustCreate()
	require.NoError(t, texts.Add(e, scenery.NewText(font, "ab a")))

	require.NoError(t, texts.GenerateDirties(fonts, layout.Quads{}))
	txt, err := texts.Get(e)
	require.NoError(t, err)
	assert.Len(t, txt.Indices(), 3*layout.IndicesPerGlyph)
	assert.Len(t, txt.Attributes(), 3*layout.FloatsPerGlyph)
}

func TestLoadFont(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "mono.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
name: mono
atlas_width: 128
atlas_height: 64
space_advance: 4
glyphs:
  - {code: 98, width: 3, advance: 4}
  - {code: 97, width: 3, advance: 4}
`), 0o600))
	tomlPath := filepath.Join(dir, "mono.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`
name = "mono"
atlas_width = 128
atlas_height = 64
space_advance = 4.0

[[glyphs]]
code = 98
width = 3.0
advance = 4.0

[[glyphs]]
code = 97
width = 3.0
advance = 4.0
`), 0o600))

	for _, path := range []string{yamlPath, tomlPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			font, err := layout.LoadFont(path)
			require.NoError(t, err)
			assert.Equal(t, "mono", font.Name)
			assert.Equal(t, 128, font.AtlasWidth)
			assert.Equal(t, float32(4), font.SpaceAdvance)
			require.Len(t, font.Glyphs, 2)
			assert.Equal(t, 'a', font.Glyphs[0].Code)
			g, ok := font.Glyph('b')
			require.True(t, ok)
			assert.Equal(t, float32(3), g.Width)
		})
	}
}

func TestParseFontErrors(t *testing.T) {
	_, err := layout.ParseFont([]byte("name: x\n"), ".yaml")
	require.Error(t, err)
	_, err = layout.ParseFont(nil, ".json")
	require.Error(t, err)
	_, err = layout.LoadFont(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
