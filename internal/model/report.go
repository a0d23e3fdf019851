package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Verdict classifies the outcome of a determinism check for one lesson.
type Verdict int

const (
	// Stable indicates every replay produced the expected transcript.
	Stable Verdict = iota
	// Unstable indicates at least two replays disagreed.
	Unstable
	// Failed indicates a replay returned an error.
	Failed
)

// String returns the verdict label used in reports and CLI output.
func (v Verdict) String() string {
	switch v {
	case Stable:
		return "stable"
	case Unstable:
		return "unstable"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// MarshalYAML renders the verdict as its label rather than an integer.
func (v Verdict) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML parses a verdict label back into its value.
func (v *Verdict) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "stable":
		*v = Stable
	case "unstable":
		*v = Unstable
	case "failed":
		*v = Failed
	default:
		return fmt.Errorf("unknown verdict %q", value.Value)
	}

	return nil
}

// CheckReport is the result of checking a single lesson for determinism.
type CheckReport struct {
	Lesson  Name    `yaml:"lesson"`
	Verdict Verdict `yaml:"verdict"`
	Runs    int     `yaml:"runs"`
	Lines   int     `yaml:"lines"`
	Hash    string  `yaml:"sha256"`
	Detail  string  `yaml:"detail,omitempty"`
}

// AllStable reports whether every check in the slice passed.
func AllStable(reports []CheckReport) bool {
	for _, report := range reports {
		if report.Verdict != Stable {
			return false
		}
	}

	return true
}
