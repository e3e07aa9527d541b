package scene

// Priority determines render order. Lower values render first
type Priority int

const (
	// PriorityBackdrop is the twinkle layer, behind everything
	PriorityBackdrop Priority = iota * 100
	// PriorityGalaxy is the depth-sorted body, compact body and companion pass
	PriorityGalaxy
	// PriorityUI is the legend and help overlay
	PriorityUI
)
