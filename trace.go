package scopehint

import (
	"encoding/json"
)

// Trace captures how a field's value compares across the scopes considered
// for override hints.
type Trace struct {
	Path      string       `json:"path"`
	Selection Selection    `json:"selection"`
	Baseline  Provenance   `json:"baseline"`
	Scopes    []Provenance `json:"scopes"`
}

// Provenance details the value a single scope resolves to and whether it
// produced an override line.
type Provenance struct {
	Scope     Scope  `json:"scope"`
	Value     any    `json:"value,omitempty"`
	Text      string `json:"text"`
	Composite bool   `json:"composite,omitempty"`
	Override  bool   `json:"override,omitempty"`
	Filtered  bool   `json:"filtered,omitempty"`
	Line      string `json:"line,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Lines returns the rendered override lines in scope order.
func (t Trace) Lines() []string {
	var lines []string
	for _, entry := range t.Scopes {
		if entry.Line != "" {
			lines = append(lines, entry.Line)
		}
	}
	return lines
}

// ToJSON serialises the trace for logging or transport.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON decodes a payload produced by ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
