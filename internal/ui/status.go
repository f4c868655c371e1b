package ui

import (
	"fmt"

	"psyca/internal/core"
)

// HelpLines lists the key bindings shown under the status block.
var HelpLines = []string{
	"Enter     run/pause",
	"Backspace randomise",
	"+/-       temperature",
	"Wheel     brush size",
	"H         hide panel",
}

// StatusLines flattens a snapshot into "Label: value" rows, one group header
// per group.
func StatusLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range snap.Groups {
		if group.Name != "" {
			lines = append(lines, group.Name)
		}
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// StatusSource supplies the values shown in the panel. Revision must change
// whenever Parameters would return something different.
type StatusSource interface {
	Parameters() core.ParameterSnapshot
	Revision() uint64
}

// statusCache keeps the rendered lines until the source reports a new
// revision.
type statusCache struct {
	lines    []string
	revision uint64
	valid    bool
}

// Lines returns the status rows followed by the key help, rebuilding them
// only when src has moved on.
func (c *statusCache) Lines(src StatusSource) []string {
	rev := src.Revision()
	if c.valid && rev == c.revision {
		return c.lines
	}
	c.lines = append(c.lines[:0], StatusLines(src.Parameters())...)
	c.lines = append(c.lines, "")
	c.lines = append(c.lines, HelpLines...)
	c.revision = rev
	c.valid = true
	return c.lines
}
