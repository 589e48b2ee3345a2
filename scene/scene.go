// Package scene binds one orbit Field and its visitor into a visualization instance
package scene

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ZenXLab/cropxoninnovations-sub001/catalog"
	"github.com/ZenXLab/cropxoninnovations-sub001/orbit"
	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
	"github.com/ZenXLab/cropxoninnovations-sub001/visitor"
)

// Options configures a Scene
type Options struct {
	Tuning  orbit.Tuning
	Visitor visitor.Config
	Seed    uint64
	Logger  *zap.Logger
}

// DefaultOptions returns parameter defaults with a fixed seed
func DefaultOptions() Options {
	return Options{
		Tuning:  orbit.DefaultTuning(),
		Visitor: visitor.DefaultConfig(),
		Seed:    1,
	}
}

// Scene owns all mutable state of one visualization; it is not safe for concurrent use
type Scene struct {
	ID      string
	Field   *orbit.Field
	Visitor *visitor.Agent

	log *zap.Logger

	// Last-write-wins outputs for the detail panel
	highlight string
	visiting  string
	lastVisit string

	onLand func(e *catalog.Entity)
}

// New creates a scene sized w x h world units
func New(cat *catalog.Catalog, w, h float64, opts Options) *Scene {
	id := uuid.NewString()
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("scene", id))

	field := orbit.New(cat, opts.Tuning, log)
	field.Resize(w, h)

	s := &Scene{
		ID:      id,
		Field:   field,
		Visitor: visitor.New(opts.Visitor, opts.Seed, field.Center()),
		log:     log,
	}

	field.OnHighlight(func(id string, ok bool) {
		s.highlight = id
	})
	s.Visitor.OnVisit(func(index int, ok bool) {
		if !ok {
			s.visiting = ""
			return
		}
		e := s.Field.Entity(index)
		s.visiting = e.ID
		s.lastVisit = e.ID
		s.log.Debug("visitor landed",
			zap.String("entity", e.ID),
			zap.Uint64("visits", s.Visitor.Visits()))
		if s.onLand != nil {
			s.onLand(e)
		}
	})

	log.Info("scene created", zap.Int("entities", cat.Len()), zap.Float64("width", w), zap.Float64("height", h))
	return s
}

// OnLand registers a callback fired once per visitor rest
func (s *Scene) OnLand(fn func(e *catalog.Entity)) { s.onLand = fn }

// Tick advances field then visitor by dt
func (s *Scene) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	s.Field.Tick(dt)
	s.Visitor.Step(float64(dt)/float64(parameter.FrameDuration), s.Field)
}

// Resize re-lays the ring; the visitor keeps flying toward its target's new slot
func (s *Scene) Resize(w, h float64) {
	s.Field.Resize(w, h)
}

// SetCatalog replaces the entity list
func (s *Scene) SetCatalog(cat *catalog.Catalog) {
	s.Field.SetCatalog(cat)
	// Indices shift with the new list, so the visitor picks again,
	// avoiding the entity it last rested on
	skip := -1
	if s.lastVisit != "" {
		skip = cat.Index(s.lastVisit)
	}
	s.Visitor.Retarget(cat.Len(), skip)
	s.log.Info("scene catalog replaced", zap.Int("entities", cat.Len()))
}

// Detail returns the entity the detail panel should show:
// highlighted if any, else the entity the visitor rests on
func (s *Scene) Detail() (*catalog.Entity, bool) {
	cat := s.Field.Catalog()
	if s.highlight != "" {
		return cat.Find(s.highlight)
	}
	if s.visiting != "" {
		return cat.Find(s.visiting)
	}
	return nil, false
}

// HighlightID returns the last highlight notification, empty when none
func (s *Scene) HighlightID() string { return s.highlight }

// VisitingID returns the entity under the resting visitor, empty when none
func (s *Scene) VisitingID() string { return s.visiting }
