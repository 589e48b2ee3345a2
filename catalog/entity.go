// Package catalog holds the static platform list orbiting the hub
// Entities are immutable after Load; runtime state lives in package orbit
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrEmpty       = errors.New("catalog: no entities")
	ErrDuplicateID = errors.New("catalog: duplicate entity id")
	ErrSlot        = errors.New("catalog: invalid slot")
	ErrColor       = errors.New("catalog: invalid color")
	ErrSchema      = errors.New("catalog: schema violation")
)

// Entity is one platform on the ring
type Entity struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Tagline     string  `yaml:"tagline,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Slot        *int    `yaml:"slot,omitempty"`
	Radius      float64 `yaml:"radius,omitempty"`
	Color       string  `yaml:"color"`
}

// SlotIndex returns the fixed angular slot, valid after Normalize
func (e *Entity) SlotIndex() int {
	if e.Slot == nil {
		return 0
	}
	return *e.Slot
}

// RGB parses Color, falling back to white for malformed values
func (e *Entity) RGB() colorful.Color {
	c, err := colorful.Hex(e.Color)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// Catalog is an ordered, validated entity list
type Catalog struct {
	Entities []Entity `yaml:"entities"`
}

// Len returns entity count
func (c *Catalog) Len() int { return len(c.Entities) }

// Find returns the entity with the given id
func (c *Catalog) Find(id string) (*Entity, bool) {
	i := c.Index(id)
	if i < 0 {
		return nil, false
	}
	return &c.Entities[i], true
}

// Index returns the position of id in Entities, or -1
func (c *Catalog) Index(id string) int {
	for i := range c.Entities {
		if c.Entities[i].ID == id {
			return i
		}
	}
	return -1
}

// Normalize fills defaults, validates and orders entities by slot
func (c *Catalog) Normalize(defaultRadius float64) error {
	n := len(c.Entities)
	if n == 0 {
		return ErrEmpty
	}

	ids := make(map[string]struct{}, n)
	slots := make(map[int]string, n)
	for i := range c.Entities {
		e := &c.Entities[i]
		if e.ID == "" {
			return fmt.Errorf("entity %d: empty id: %w", i, ErrSchema)
		}
		if _, dup := ids[e.ID]; dup {
			return fmt.Errorf("%q: %w", e.ID, ErrDuplicateID)
		}
		ids[e.ID] = struct{}{}

		if e.Slot == nil {
			slot := i
			e.Slot = &slot
		}
		s := *e.Slot
		if s < 0 || s >= n {
			return fmt.Errorf("%q slot %d outside [0,%d): %w", e.ID, s, n, ErrSlot)
		}
		if other, taken := slots[s]; taken {
			return fmt.Errorf("%q and %q share slot %d: %w", other, e.ID, s, ErrSlot)
		}
		slots[s] = e.ID

		if e.Radius <= 0 {
			e.Radius = defaultRadius
		}
		if _, err := colorful.Hex(e.Color); err != nil {
			return fmt.Errorf("%q color %q: %w", e.ID, e.Color, ErrColor)
		}
		if e.Name == "" {
			e.Name = e.ID
		}
	}

	sort.SliceStable(c.Entities, func(a, b int) bool {
		return *c.Entities[a].Slot < *c.Entities[b].Slot
	})
	return nil
}
