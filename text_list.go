package scenery

import (
	"iter"

	"github.com/rotisserie/eris"
)

// TextLayouter turns a string into glyph quads using a font's metrics. The
// previous buffers are passed in so they can be reused.
type TextLayouter interface {
	Layout(font *Font, s string, indices []uint16, attributes []float32) ([]uint16, []float32, error)
}

// TextList stores text components and queues the ones whose buffers must be
// regenerated.
type TextList struct {
	list    *ComponentList[Text]
	pending []Entity
}

// NewTextList creates a text list bound to em.
func NewTextList(em *EntityManager) *TextList {
	return &TextList{
		list: newNamedComponentList[Text](em, "Text"),
	}
}

// Add attaches t to e and queues its generation.
func (l *TextList) Add(e Entity, t Text) error {
	t.dirty = true
	if _, err := l.list.Add(e, t); err != nil {
		return eris.Wrap(err, "cannot add text")
	}
	l.pending = append(l.pending, e)
	return nil
}

// Remove detaches the text of e.
func (l *TextList) Remove(e Entity) error {
	if err := l.list.Remove(e); err != nil {
		return eris.Wrap(err, "cannot remove text")
	}
	return nil
}

// Get returns the text of e for reading. Changing its string through this
// pointer is still picked up by the next GenerateDirties.
func (l *TextList) Get(e Entity) (*Text, error) {
	return l.list.Get(e)
}

// GetMut returns the text of e and queues it for regeneration.
func (l *TextList) GetMut(e Entity) (*Text, error) {
	t, err := l.list.GetMut(e)
	if err != nil {
		return nil, err
	}
	l.pending = append(l.pending, e)
	return t, nil
}

// TryGet returns the text of e for reading, or false.
func (l *TextList) TryGet(e Entity) (*Text, bool) {
	return l.list.TryGet(e)
}

// TryGetMut returns the text of e and queues it for regeneration, or false.
func (l *TextList) TryGetMut(e Entity) (*Text, bool) {
	t, ok := l.list.TryGetMut(e)
	if ok {
		l.pending = append(l.pending, e)
	}
	return t, ok
}

// Pending returns the number of queued regenerations, duplicates included.
func (l *TextList) Pending() int {
	return len(l.pending)
}

// GenerateDirties hands every queued text that is still dirty to layouter
// and stores the resulting buffers. Entries whose entity lost its text since
// being queued are dropped. Once the queue is drained, texts that became
// dirty without being queued are laid out too. On error the failing entry
// and the rest of the queue are kept.
func (l *TextList) GenerateDirties(fonts *Pool[Font], layouter TextLayouter) error {
	for len(l.pending) > 0 {
		e := l.pending[len(l.pending)-1]
		t, ok := l.list.TryGet(e)
		if ok && t.dirty {
			if err := l.generate(e, t, fonts, layouter); err != nil {
				return err
			}
		}
		l.pending = l.pending[:len(l.pending)-1]
	}
	for i := range l.list.components {
		t := &l.list.components[i]
		if !t.dirty {
			continue
		}
		if err := l.generate(l.list.entities[i], t, fonts, layouter); err != nil {
			return err
		}
	}
	return nil
}

func (l *TextList) generate(e Entity, t *Text, fonts *Pool[Font], layouter TextLayouter) error {
	font, ok := fonts.Get(t.Font)
	if !ok {
		return eris.Wrapf(ErrInvalidHandle, "font of text entity %s", e)
	}
	indices, attributes, err := layouter.Layout(font, t.str, t.indices[:0], t.attributes[:0])
	if err != nil {
		return eris.Wrapf(err, "cannot lay out text of entity %s", e)
	}
	t.SetBuffers(indices, attributes)
	return nil
}

// Len returns the number of texts.
func (l *TextList) Len() int {
	return l.list.Len()
}

// ID returns the identifier of the underlying component list.
func (l *TextList) ID() ListID {
	return l.list.ID()
}

// All yields every text for reading in dense order.
func (l *TextList) All() iter.Seq2[Entity, *Text] {
	return l.list.All()
}
