package scenery

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// World bundles an entity manager with the engine's standard component
// lists, resource pools, singletons and event bus.
type World struct {
	Entities      *EntityManager
	Transforms3D  *Transform3DList
	Transforms2D  *Transform2DList
	Meshes        *ComponentList[Mesh]
	SharedMeshes  *MultiComponentList[Mesh]
	Lights        *ComponentList[Light]
	Texts         *TextList
	BoundsHelpers *ComponentList[MeshBoundsHelper]
	BoundsSystem  BoundsHelperSystem
	Geometries    *Pool[Geometry]
	Fonts         *Pool[Font]
	Resources     Resources
	Events        EventBus

	cfg    Config
	logger *zerolog.Logger
}

// Option configures a World at construction.
type Option func(*World)

// WithLogger makes the world log to l, filtered at the configured level,
// instead of discarding its output.
func WithLogger(l *zerolog.Logger) Option {
	return func(w *World) {
		leveled := l.Level(w.cfg.Level())
		w.logger = &leveled
	}
}

// NewWorld creates a world sized by cfg.MaxEntityCount.
func NewWorld(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	em := NewEntityManager(cfg.MaxEntityCount)
	nop := zerolog.Nop()
	w := &World{
		Entities:      em,
		Transforms3D:  NewTransform3DList(em),
		Transforms2D:  NewTransform2DList(em),
		Meshes:        newNamedComponentList[Mesh](em, "Mesh"),
		SharedMeshes:  newNamedMultiComponentList[Mesh](em, "SharedMesh"),
		Lights:        newNamedComponentList[Light](em, "Light"),
		Texts:         NewTextList(em),
		BoundsHelpers: newNamedComponentList[MeshBoundsHelper](em, "MeshBoundsHelper"),
		Geometries:    NewPool[Geometry](64),
		Fonts:         NewPool[Font](4),
		cfg:           cfg,
		logger:        &nop,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// InjectLogger replaces the world's logger as is.
func (w *World) InjectLogger(l *zerolog.Logger) {
	w.logger = l
}

// Logger returns the logger the world writes to.
func (w *World) Logger() *zerolog.Logger {
	return w.logger
}

// Config returns the configuration the world was created with.
func (w *World) Config() Config {
	return w.cfg
}

// CreateEntity allocates an entity and publishes EntityCreated.
func (w *World) CreateEntity() (Entity, error) {
	e, err := w.Entities.Create()
	if err != nil {
		w.logger.Error().Err(err).Int("capacity", w.Entities.Capacity()).Msg("entity capacity exhausted")
		return Entity{}, err
	}
	w.logger.Debug().Uint32("entity_index", e.Index).Uint32("entity_generation", e.Generation).Msg("entity created")
	Publish(&w.Events, EntityCreated{Entity: e})
	return e, nil
}

// DestroyEntity releases e and publishes EntityDestroyed. Its components must
// have been removed first.
func (w *World) DestroyEntity(e Entity) error {
	if err := w.Entities.Destroy(e); err != nil {
		return err
	}
	w.BoundsSystem.Untrack(e)
	w.logger.Debug().Uint32("entity_index", e.Index).Uint32("entity_generation", e.Generation).Msg("entity destroyed")
	Publish(&w.Events, EntityDestroyed{Entity: e})
	return nil
}

// Update recomputes every 3D and 2D transform, refreshes the bounds helpers
// and publishes TransformsUpdated.
func (w *World) Update() error {
	visited, err := w.Transforms3D.UpdateAll()
	if err != nil {
		return eris.Wrap(err, "cannot update 3D transforms")
	}
	visited += w.Transforms2D.UpdateAll()
	if err := w.BoundsSystem.Update(w.Transforms3D, w.Meshes, w.Geometries, w.BoundsHelpers); err != nil {
		return err
	}
	Publish(&w.Events, TransformsUpdated{Visited: visited})
	return nil
}

// EndFrame checks that no transform was left dirty when DebugChecks is on.
func (w *World) EndFrame() error {
	if !w.cfg.DebugChecks {
		return nil
	}
	for _, check := range []func() error{w.Transforms3D.CheckForDirties, w.Transforms2D.CheckForDirties} {
		if err := check(); err != nil {
			w.logger.Warn().Err(err).Msg("dirty transforms at end of frame")
			return err
		}
	}
	return nil
}

// LogEntity logs e with the component lists it is attached to.
func (w *World) LogEntity(level zerolog.Level, e Entity) {
	if !w.Entities.Valid(e) {
		w.logger.Error().Err(ErrStaleEntity).Msgf("cannot log entity %s", e)
		return
	}
	entityEvent(w.logger.WithLevel(level), e, w.Entities.Components(e)).Send()
}

// LogSummary logs entity usage and the size of each standard list.
func (w *World) LogSummary(level zerolog.Level) {
	w.logger.WithLevel(level).
		Int("alive_entities", w.Entities.Alive()).
		Int("capacity", w.Entities.Capacity()).
		Int("transforms_3d", w.Transforms3D.Len()).
		Int("transforms_2d", w.Transforms2D.Len()).
		Int("meshes", w.Meshes.Len()).
		Int("shared_meshes", w.SharedMeshes.Len()).
		Int("lights", w.Lights.Len()).
		Int("texts", w.Texts.Len()).
		Int("geometries", w.Geometries.PresentLen()).
		Int("fonts", w.Fonts.PresentLen()).
		Int("resources", w.Resources.Len()).
		Send()
}
