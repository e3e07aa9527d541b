package scene

import (
	"github.com/lixenwraith/vi-galaxy/camera"
	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/galaxy"
	"github.com/lixenwraith/vi-galaxy/lens"
	"github.com/lixenwraith/vi-galaxy/status"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	State *galaxy.State
	Frame camera.Frame
	Lens  lens.Lens

	// Compact is the compact body's projection, the lens center
	Compact camera.Projection

	Width, Height int

	// Stats feeds the HUD line, nil when the frontend keeps none
	Stats *status.Stats
}

// NewContext builds this frame's camera and lens for a width x height surface
func NewContext(cfg *config.Config, s *galaxy.State, width, height int) Context {
	frame := camera.NewView(cfg.Camera, width, height).Frame(s.Tilt, s.Spin)
	compact := frame.Project(vmath.Vec3F{})
	return Context{
		State:   s,
		Frame:   frame,
		Lens:    lens.New(cfg.Lens, compact.X, compact.Y),
		Compact: compact,
		Width:   width,
		Height:  height,
	}
}
