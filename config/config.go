// Package config loads run-time tuning from YAML; CLI flags override file values
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ZenXLab/cropxoninnovations-sub001/input"
	"github.com/ZenXLab/cropxoninnovations-sub001/orbit"
	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
	"github.com/ZenXLab/cropxoninnovations-sub001/scene"
	"github.com/ZenXLab/cropxoninnovations-sub001/visitor"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	FPS     int     `yaml:"fps"`
	Seed    uint64  `yaml:"seed"`
	Mute    bool    `yaml:"mute"`
	Catalog string  `yaml:"catalog"`
	Watch   bool    `yaml:"watch"`
	Volume  float64 `yaml:"volume"`

	Orbit   Orbit   `yaml:"orbit"`
	Visitor Visitor `yaml:"visitor"`

	// Keys rebinds keys to actions; "none" unbinds
	Keys map[string]string `yaml:"keys"`
}

type Orbit struct {
	SpringK           float64 `yaml:"spring_k"`
	Damping           float64 `yaml:"damping"`
	AngularSpeed      float64 `yaml:"angular_speed"`
	InteractionRadius float64 `yaml:"interaction_radius"`
	AttractionForce   float64 `yaml:"attraction_force"`
	HoverFactor       float64 `yaml:"hover_factor"`
	OrbitFill         float64 `yaml:"orbit_fill"`
	NodeRadius        float64 `yaml:"node_radius"`
}

type Visitor struct {
	WaitFrames   float64 `yaml:"wait_frames"`
	RestFrames   float64 `yaml:"rest_frames"`
	SpringK      float64 `yaml:"spring_k"`
	Damping      float64 `yaml:"damping"`
	MaxSpeed     float64 `yaml:"max_speed"`
	HoverOffset  float64 `yaml:"hover_offset"`
	LandDistance float64 `yaml:"land_distance"`
}

// Default mirrors the parameter package
func Default() Config {
	return Config{
		FPS:    parameter.DefaultFPS,
		Seed:   1,
		Watch:  true,
		Volume: parameter.ChimeVolume,
		Orbit: Orbit{
			SpringK:           parameter.SpringK,
			Damping:           parameter.Damping,
			AngularSpeed:      parameter.AngularSpeed,
			InteractionRadius: parameter.InteractionRadius,
			AttractionForce:   parameter.AttractionForce,
			HoverFactor:       parameter.HoverFactor,
			OrbitFill:         parameter.OrbitFill,
			NodeRadius:        parameter.DefaultNodeRadius,
		},
		Visitor: Visitor{
			WaitFrames:   parameter.VisitorWaitFrames,
			RestFrames:   parameter.VisitorRestFrames,
			SpringK:      parameter.VisitorSpringK,
			Damping:      parameter.VisitorDamping,
			MaxSpeed:     parameter.VisitorMaxSpeed,
			HoverOffset:  parameter.VisitorHoverOffset,
			LandDistance: parameter.VisitorLandDistance,
		},
	}
}

// Load overlays the YAML file at path onto Default; keys absent from the file keep defaults
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the integrator cannot run with
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.FPS > 0 && c.FPS <= 240, "fps %d outside 1..240", c.FPS)
	check(c.Volume >= 0 && c.Volume <= 1, "volume %g outside [0,1]", c.Volume)

	o := c.Orbit
	check(o.SpringK > 0 && o.SpringK < 1, "orbit.spring_k %g outside (0,1)", o.SpringK)
	check(o.Damping > 0 && o.Damping < 1, "orbit.damping %g outside (0,1)", o.Damping)
	check(o.AngularSpeed >= 0, "orbit.angular_speed %g negative", o.AngularSpeed)
	check(o.InteractionRadius > 0, "orbit.interaction_radius %g not positive", o.InteractionRadius)
	check(o.AttractionForce >= 0, "orbit.attraction_force %g negative", o.AttractionForce)
	check(o.HoverFactor > 0, "orbit.hover_factor %g not positive", o.HoverFactor)
	check(o.OrbitFill > 0 && o.OrbitFill <= 1, "orbit.orbit_fill %g outside (0,1]", o.OrbitFill)
	check(o.NodeRadius > 0, "orbit.node_radius %g not positive", o.NodeRadius)

	v := c.Visitor
	check(v.WaitFrames >= 0, "visitor.wait_frames %g negative", v.WaitFrames)
	check(v.RestFrames >= 0, "visitor.rest_frames %g negative", v.RestFrames)
	check(v.SpringK > 0 && v.SpringK < 1, "visitor.spring_k %g outside (0,1)", v.SpringK)
	check(v.Damping > 0 && v.Damping < 1, "visitor.damping %g outside (0,1)", v.Damping)
	check(v.MaxSpeed > 0, "visitor.max_speed %g not positive", v.MaxSpeed)
	check(v.LandDistance > 0, "visitor.land_distance %g not positive", v.LandDistance)

	if _, err := input.LoadKeyConfig(c.Keys); err != nil {
		check(false, "keys: %v", err)
	}

	return errors.Join(errs...)
}

// KeyTable returns the default bindings with Keys applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("%w: keys: %v", ErrInvalid, err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// SceneOptions converts to scene construction options
func (c Config) SceneOptions() scene.Options {
	opts := scene.DefaultOptions()
	opts.Seed = c.Seed
	opts.Tuning = orbit.Tuning{
		SpringK:           c.Orbit.SpringK,
		Damping:           c.Orbit.Damping,
		AngularSpeed:      c.Orbit.AngularSpeed,
		InteractionRadius: c.Orbit.InteractionRadius,
		AttractionForce:   c.Orbit.AttractionForce,
		HoverFactor:       c.Orbit.HoverFactor,
		OrbitFill:         c.Orbit.OrbitFill,
	}

	vc := visitor.DefaultConfig()
	vc.WaitFrames = c.Visitor.WaitFrames
	vc.RestFrames = c.Visitor.RestFrames
	vc.SpringK = c.Visitor.SpringK
	vc.Damping = c.Visitor.Damping
	vc.MaxSpeed = c.Visitor.MaxSpeed
	vc.HoverOffset = c.Visitor.HoverOffset
	vc.LandDistance = c.Visitor.LandDistance
	opts.Visitor = vc
	return opts
}
