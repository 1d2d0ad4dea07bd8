// Package layout turns strings into textured glyph quads and loads the font
// metrics they are built from.
package layout

import (
	"github.com/edwinsyarief/scenery"
	"github.com/rotisserie/eris"
)

const (
	// IndicesPerGlyph is the number of triangle indices emitted per glyph.
	IndicesPerGlyph = 6
	// FloatsPerGlyph is four vertices of (x, y, u, v).
	FloatsPerGlyph = 16
)

// Quads lays text out on a single line, one textured quad per glyph. Atlas
// coordinates are emitted in texels.
type Quads struct{}

var _ scenery.TextLayouter = Quads{}

// Layout appends the quads of s to indices and attributes. Spaces advance
// the cursor by the font's space advance and emit nothing.
func (Quads) Layout(font *scenery.Font, s string, indices []uint16, attributes []float32) ([]uint16, []float32, error) {
	var (
		glyphs uint16
		cursor float32
	)
	for _, c := range s {
		if c == ' ' {
			cursor += font.SpaceAdvance
			continue
		}
		g, ok := font.Glyph(c)
		if !ok {
			return indices, attributes, eris.Wrapf(scenery.ErrGlyphNotFound, "font %q has no glyph for %q", font.Name, c)
		}
		base := glyphs * 4
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
		x := cursor + g.BearingX
		attributes = append(attributes,
			x, g.BearingY, g.PositionX, g.PositionY,
			x+g.Width, g.BearingY, g.PositionX+g.Width, g.PositionY,
			x+g.Width, g.BearingY+g.Height, g.PositionX+g.Width, g.PositionY+g.Height,
			x, g.BearingY+g.Height, g.PositionX, g.PositionY+g.Height,
		)
		glyphs++
		cursor += g.Advance
	}
	return indices, attributes, nil
}
