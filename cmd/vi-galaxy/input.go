package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-galaxy/galaxy"
	"github.com/lixenwraith/vi-galaxy/parameter"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionNextTrack
	actionMute
	actionVolumeUp
	actionVolumeDown
)

// controller folds terminal events into one galaxy.Input per frame
type controller struct {
	pending galaxy.Input

	dragging         bool
	lastCol, lastRow int
}

func newController() *controller {
	return &controller{}
}

// key records toggles and returns actions handled outside the simulation
func (c *controller) key(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return actionQuit
		case ' ':
			c.pending.Reset = true
		case 'l':
			c.pending.ToggleLegend = !c.pending.ToggleLegend
		case 'n':
			return actionNextTrack
		case 'm':
			return actionMute
		case '+', '=':
			return actionVolumeUp
		case '-':
			return actionVolumeDown
		}
	}
	return actionNone
}

// mouse tracks primary-button drags; cell motion is scaled to screen pixels
// Rows count double since each cell holds two pixels vertically
func (c *controller) mouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 {
		c.dragging = false
		return
	}

	if c.dragging {
		c.pending.DX += float64(col-c.lastCol) * parameter.CellDragScale
		c.pending.DY += float64(row-c.lastRow) * 2 * parameter.CellDragScale
	}
	c.dragging = true
	c.lastCol, c.lastRow = col, row
}

// frameInput returns accumulated input and clears one-shot fields
func (c *controller) frameInput() galaxy.Input {
	in := c.pending
	in.Dragging = c.dragging
	c.pending = galaxy.Input{}
	return in
}
