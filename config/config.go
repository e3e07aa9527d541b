// Package config holds runtime settings, seeded from parameter defaults and
// optionally overlaid from a TOML or YAML file
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-galaxy/parameter"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete runtime configuration
type Config struct {
	Galaxy     Galaxy     `toml:"galaxy" yaml:"galaxy"`
	Kinematics Kinematics `toml:"kinematics" yaml:"kinematics"`
	Camera     Camera     `toml:"camera" yaml:"camera"`
	Lens       Lens       `toml:"lens" yaml:"lens"`
	Render     Render     `toml:"render" yaml:"render"`
	Audio      Audio      `toml:"audio" yaml:"audio"`
}

// Galaxy controls population generation
type Galaxy struct {
	// Seed of zero means seed from the clock
	Seed     uint64 `toml:"seed" yaml:"seed"`
	Bodies   int    `toml:"bodies" yaml:"bodies"`
	Twinkles int    `toml:"twinkles" yaml:"twinkles"`
	Rogues   int    `toml:"rogues" yaml:"rogues"`
}

// Kinematics selects the rotation curve and time scaling
type Kinematics struct {
	Curve            string  `toml:"curve" yaml:"curve"`
	Mass             float64 `toml:"mass" yaml:"mass"`
	Gain             float64 `toml:"gain" yaml:"gain"`
	RadiusFloor      float64 `toml:"radius_floor" yaml:"radius_floor"`
	HaloSpeedFloor   float64 `toml:"halo_speed_floor" yaml:"halo_speed_floor"`
	TimeAcceleration float64 `toml:"time_acceleration" yaml:"time_acceleration"`
	SimStep          float64 `toml:"sim_step" yaml:"sim_step"`
}

// Camera holds projection and view control
type Camera struct {
	Distance        float64 `toml:"distance" yaml:"distance"`
	Focal           float64 `toml:"focal" yaml:"focal"`
	ReferenceHeight float64 `toml:"reference_height" yaml:"reference_height"`
	Tilt            float64 `toml:"tilt" yaml:"tilt"`
	Spin            float64 `toml:"spin" yaml:"spin"`
	AutoSpin        float64 `toml:"auto_spin" yaml:"auto_spin"`
	DragSensitivity float64 `toml:"drag_sensitivity" yaml:"drag_sensitivity"`
}

// Lens configures the screen-space light bending
type Lens struct {
	Enabled       bool    `toml:"enabled" yaml:"enabled"`
	Strength      float64 `toml:"strength" yaml:"strength"`
	Normalization float64 `toml:"normalization" yaml:"normalization"`
}

// Render covers surface and asset options
type Render struct {
	Width  int  `toml:"width" yaml:"width"`
	Height int  `toml:"height" yaml:"height"`
	Legend bool `toml:"legend" yaml:"legend"`
	// Sprites maps companion galaxy names to optional image files
	Sprites map[string]string `toml:"sprites" yaml:"sprites"`
}

// Audio configures the ambient soundtrack
type Audio struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"`
}

// Default returns the configuration built from parameter constants
func Default() *Config {
	return &Config{
		Galaxy: Galaxy{
			Bodies:   parameter.GalaxyBodyCount,
			Twinkles: parameter.TwinkleCount,
			Rogues:   parameter.RogueCount,
		},
		Kinematics: Kinematics{
			Curve:            parameter.CurveKepler,
			Mass:             parameter.CompactMass,
			Gain:             parameter.OrbitGain,
			RadiusFloor:      parameter.OrbitRadiusFloor,
			HaloSpeedFloor:   parameter.HaloSpeedFloor,
			TimeAcceleration: parameter.TimeAcceleration,
			SimStep:          parameter.SimStep,
		},
		Camera: Camera{
			Distance:        parameter.CameraDistance,
			Focal:           parameter.FocalLength,
			ReferenceHeight: parameter.ReferenceHeight,
			Tilt:            parameter.InitialTilt,
			Spin:            parameter.InitialSpin,
			AutoSpin:        parameter.AutoSpinRate,
			DragSensitivity: parameter.DragSensitivity,
		},
		Lens: Lens{
			Enabled:       true,
			Strength:      parameter.LensStrength,
			Normalization: parameter.LensNormalization,
		},
		Render: Render{
			Width:   1200,
			Height:  800,
			Legend:  true,
			Sprites: map[string]string{},
		},
		Audio: Audio{
			Enabled: true,
			Volume:  parameter.AmbientVolume,
		},
	}
}

// Load reads path over the defaults; the format follows the file extension
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Galaxy.Bodies >= 0, "galaxy.bodies must be >= 0, got %d", c.Galaxy.Bodies)
	check(c.Galaxy.Twinkles >= 0, "galaxy.twinkles must be >= 0, got %d", c.Galaxy.Twinkles)
	check(c.Galaxy.Rogues >= 0, "galaxy.rogues must be >= 0, got %d", c.Galaxy.Rogues)

	check(c.Kinematics.Curve == parameter.CurveKepler || c.Kinematics.Curve == parameter.CurveFlat,
		"kinematics.curve must be %q or %q, got %q", parameter.CurveKepler, parameter.CurveFlat, c.Kinematics.Curve)
	check(c.Kinematics.Mass > 0, "kinematics.mass must be > 0")
	check(c.Kinematics.RadiusFloor > 0, "kinematics.radius_floor must be > 0")
	check(c.Kinematics.HaloSpeedFloor >= 0, "kinematics.halo_speed_floor must be >= 0")
	check(c.Kinematics.SimStep > 0, "kinematics.sim_step must be > 0")

	check(c.Camera.Distance > 0, "camera.distance must be > 0")
	check(c.Camera.Focal > 0, "camera.focal must be > 0")
	check(c.Camera.ReferenceHeight > 0, "camera.reference_height must be > 0")

	check(c.Lens.Strength >= 0, "lens.strength must be >= 0")
	check(c.Lens.Normalization > 0, "lens.normalization must be > 0")

	check(c.Render.Width > 0 && c.Render.Height > 0, "render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)

	return errors.Join(errs...)
}
