package core

// ParamType tells a display how to format a parameter value.
type ParamType uint8

const (
	ParamInt ParamType = iota
	ParamText
)

// Parameter is one labelled value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup is a titled block of parameters.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot is the full set of values a session reports for one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl is an integer parameter the HUD can step up and down.
// Min and Max are inclusive; Max <= Min leaves the value unbounded.
type ParameterControl struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

// Clamp limits v to the control's range.
func (c ParameterControl) Clamp(v int) int {
	if c.Max <= c.Min {
		return v
	}
	return max(c.Min, min(v, c.Max))
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter applies a control change. It reports whether key was
// recognised.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
