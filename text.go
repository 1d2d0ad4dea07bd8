package scenery

// Text is a string drawn with a pooled font. The vertex buffers are produced
// by a TextLayouter; the component only records that they are stale.
type Text struct {
	Font Handle[Font]

	str        string
	indices    []uint16
	attributes []float32
	dirty      bool
}

// NewText creates a text component whose buffers still need generating.
func NewText(font Handle[Font], s string) Text {
	return Text{Font: font, str: s, dirty: true}
}

// String returns the displayed string.
func (t *Text) String() string {
	return t.str
}

// SetString replaces the string and marks the buffers stale.
func (t *Text) SetString(s string) {
	if s == t.str {
		return
	}
	t.str = s
	t.dirty = true
}

// Dirty reports whether the buffers no longer match the string.
func (t *Text) Dirty() bool {
	return t.dirty
}

// Indices returns the triangle indices, six per glyph.
func (t *Text) Indices() []uint16 {
	return t.indices
}

// Attributes returns the interleaved vertex attributes, (x, y, u, v) for each
// of four vertices per glyph.
func (t *Text) Attributes() []float32 {
	return t.attributes
}

// SetBuffers stores freshly generated buffers and clears the dirty flag.
func (t *Text) SetBuffers(indices []uint16, attributes []float32) {
	t.indices = indices
	t.attributes = attributes
	t.dirty = false
}
