package parameter

import "time"

// Projection
const (
	// CameraDistance is the camera offset from the galactic center along view Z
	CameraDistance = 600.0

	// FocalLength is the projection constant at the reference viewport height
	FocalLength = 500.0

	// ReferenceHeight is the viewport height FocalLength was tuned for
	ReferenceHeight = 800.0
)

// View control
const (
	InitialTilt = 0.9
	InitialSpin = 0.0

	// AutoSpinRate is the spin increment per frame while not dragging
	AutoSpinRate = 0.002

	// DragSensitivity converts pointer pixels to radians
	DragSensitivity = 0.005
)

// Frame pacing
const (
	TargetFPS     = 60
	FrameInterval = time.Second / TargetFPS
)

// CellDragScale converts terminal cell motion to approximate screen pixels
const CellDragScale = 8.0
