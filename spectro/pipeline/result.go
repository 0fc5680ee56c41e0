package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/algo-spectro/spectro/calib"
)

// Step kinds.
const (
	KindRVShift         = "rv_shift"
	KindResolutionMatch = "resolution_match"
)

// Sample is a spectrum on a canonical axis. Sigma is nil when the sample
// carries no uncertainties.
type Sample struct {
	X     []float64
	Y     []float64
	Sigma []float64
}

// Len returns the number of samples.
func (s Sample) Len() int {
	return len(s.X)
}

func (s Sample) validate() error {
	if len(s.Y) != len(s.X) {
		return fmt.Errorf("%w: x has %d samples, y has %d", ErrLengthMismatch, len(s.X), len(s.Y))
	}
	if s.Sigma != nil && len(s.Sigma) != len(s.X) {
		return fmt.Errorf("%w: x has %d samples, sigma has %d", ErrLengthMismatch, len(s.X), len(s.Sigma))
	}
	return nil
}

func (s Sample) clone() Sample {
	return Sample{X: cloneSlice(s.X), Y: cloneSlice(s.Y), Sigma: cloneSlice(s.Sigma)}
}

func cloneSlice(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

// Step records one applied transform and its numeric parameters.
type Step struct {
	Kind   string
	Params map[string]float64
}

// MarshalJSON encodes the step as a flat object: {"kind": ..., <param>: ...}.
func (s Step) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(s.Params)+1)
	for k, v := range s.Params {
		m[k] = v
	}
	m["kind"] = s.Kind
	return json.Marshal(m)
}

// UnmarshalJSON decodes the flat form written by MarshalJSON.
func (s *Step) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := Step{Params: make(map[string]float64, len(raw))}
	for k, v := range raw {
		if k == "kind" {
			if err := json.Unmarshal(v, &out.Kind); err != nil {
				return fmt.Errorf("pipeline: step kind: %w", err)
			}
			continue
		}
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			return fmt.Errorf("pipeline: step param %q: %w", k, err)
		}
		out.Params[k] = f
	}

	*s = out
	return nil
}

// Metadata is the provenance of one Apply call.
type Metadata struct {
	// Applied is true iff at least one Step was recorded.
	Applied bool `json:"applied"`
	// Steps lists the applied transforms in execution order.
	Steps []Step `json:"steps"`
	// Config is the snapshot the transforms ran against.
	Config calib.Settings `json:"config"`
	// Warnings lists conditions that left the data unchanged.
	Warnings []string `json:"warnings,omitempty"`
	// Backend names the numeric backend, empty when none was available.
	Backend string `json:"backend,omitempty"`
}

// Step returns the first recorded step of the given kind.
func (m Metadata) Step(kind string) (Step, bool) {
	for _, s := range m.Steps {
		if s.Kind == kind {
			return s, true
		}
	}
	return Step{}, false
}

func (m *Metadata) record(kind string, params map[string]float64) {
	m.Steps = append(m.Steps, Step{Kind: kind, Params: params})
	m.Applied = true
}

func (m *Metadata) warn(err error) {
	m.Warnings = append(m.Warnings, err.Error())
}

// Result is the transformed sample plus its provenance.
type Result struct {
	X     []float64
	Y     []float64
	Sigma []float64
	Meta  Metadata
}

// Sample returns the transformed arrays as a Sample.
func (r Result) Sample() Sample {
	return Sample{X: r.X, Y: r.Y, Sigma: r.Sigma}
}
