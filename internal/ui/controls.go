package ui

import (
	"fmt"

	"conway/internal/life"
)

// Controls maps user actions onto a session and tracks the pointer tool.
type Controls struct {
	Session *life.Session
	Tool    Tool
}

// NewControls starts with the pencil selected.
func NewControls(s *life.Session) *Controls {
	return &Controls{Session: s, Tool: ToolPencil}
}

// Do performs a. Starting or resuming a run selects the hand tool; pausing or
// aborting goes back to the pencil. Invalid transitions return the session
// error and change nothing.
func (c *Controls) Do(a Action) error {
	s := c.Session
	switch a {
	case ActionStart:
		if err := s.Start(); err != nil {
			return err
		}
		c.Tool = ToolHand
	case ActionPauseResume:
		switch s.State() {
		case life.Idle:
			return c.Do(ActionStart)
		case life.Running:
			if err := s.Pause(); err != nil {
				return err
			}
			c.Tool = ToolPencil
		case life.Paused:
			if err := s.Resume(); err != nil {
				return err
			}
			c.Tool = ToolHand
		}
	case ActionAbort, ActionAbortSave:
		if err := s.Abort(a == ActionAbortSave); err != nil {
			return err
		}
		c.Tool = ToolPencil
	case ActionClear:
		s.Clear()
	case ActionStep:
		return s.Step()
	case ActionToolPencil:
		c.Tool = ToolPencil
	case ActionToolEraser:
		c.Tool = ToolEraser
	case ActionToolHand:
		c.Tool = ToolHand
	}
	return nil
}

// Paint applies the pencil or eraser to one cell. It reports whether the
// cell changed.
func (c *Controls) Paint(row, col int) bool {
	switch c.Tool {
	case ToolPencil:
		return c.Session.SetCell(row, col, true)
	case ToolEraser:
		return c.Session.SetCell(row, col, false)
	}
	return false
}

// Status is the one-line summary shown above the grid.
func (c *Controls) Status(v *Viewport) string {
	return fmt.Sprintf("Generation: %d :: Population: %d  [current_tool=%s] [i:%d, j:%d]",
		c.Session.Generation(), c.Session.Population(), c.Tool, v.TopRow, v.TopCol)
}
