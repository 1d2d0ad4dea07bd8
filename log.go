package scenery

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a JSON logger writing to w at level, with timestamps.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func componentsArray(infos []ComponentInfo) *zerolog.Array {
	arr := zerolog.Arr()
	for _, info := range infos {
		arr = arr.Dict(zerolog.Dict().
			Int("list_id", int(info.ID)).
			Str("list_name", info.Name))
	}
	return arr
}

func entityEvent(ev *zerolog.Event, e Entity, infos []ComponentInfo) *zerolog.Event {
	return ev.
		Uint32("entity_index", e.Index).
		Uint32("entity_generation", e.Generation).
		Int("total_components", len(infos)).
		Array("components", componentsArray(infos))
}
