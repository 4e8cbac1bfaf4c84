package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Default locations, relative to the IOmapper directory of a CPU
// configuration (Physical/<config>/<cpu>/IOmapper).
const (
	DefaultCatalogPath   = "IOModuleTypes.yml"
	DefaultHardwarePath  = "../../Hardware.hw"
	DefaultTypesPath     = "../../../../Logical/Global.typ"
	DefaultVariablesPath = "../../../../Logical/Global.var"
	DefaultIOMapPath     = "../IoMap.iom"
)

// Settings is everything a generator run needs besides its inputs' content.
type Settings struct {
	Paths  Paths
	Filter Filter
	Output Output
}

// Paths locates the inputs and the three generated artifacts.
type Paths struct {
	Catalog   string
	Hardware  string
	Types     string
	Variables string
	IOMap     string
}

// Filter is the module inclusion rule.
type Filter struct {
	Family  string
	Exclude []string
}

// Output holds formatting options for written files.
type Output struct {
	LineEnding string // "lf" or "crlf"
}

// Defaults returns the settings used by a bare invocation.
func Defaults() *Settings {
	return &Settings{
		Paths: Paths{
			Catalog:   DefaultCatalogPath,
			Hardware:  DefaultHardwarePath,
			Types:     DefaultTypesPath,
			Variables: DefaultVariablesPath,
			IOMap:     DefaultIOMapPath,
		},
		Filter: Filter{
			Family:  "X20",
			Exclude: []string{"X20TB", "X20BM"},
		},
		Output: Output{LineEnding: "lf"},
	}
}

// ValidationError lists every problem found in a Settings value.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid settings: " + strings.Join(e.Problems, "; ")
}

// Validate checks that all paths are set, the filter is usable and the line
// ending is known.
func (s *Settings) Validate() error {
	var problems []string

	required := []struct {
		name, value string
	}{
		{"paths.catalog", s.Paths.Catalog},
		{"paths.hardware", s.Paths.Hardware},
		{"paths.types", s.Paths.Types},
		{"paths.variables", s.Paths.Variables},
		{"paths.iomap", s.Paths.IOMap},
		{"filter.family", s.Filter.Family},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			problems = append(problems, fmt.Sprintf("%s must not be empty", r.name))
		}
	}
	for i, ex := range s.Filter.Exclude {
		if ex == "" {
			problems = append(problems, fmt.Sprintf("filter.exclude[%d] must not be empty", i))
		}
	}

	outputs := map[string]string{}
	for _, o := range []struct{ name, value string }{
		{"paths.types", s.Paths.Types},
		{"paths.variables", s.Paths.Variables},
		{"paths.iomap", s.Paths.IOMap},
	} {
		if o.value == "" {
			continue
		}
		key := filepath.Clean(o.value)
		if prev, dup := outputs[key]; dup {
			problems = append(problems, fmt.Sprintf("%s and %s name the same file %q", prev, o.name, o.value))
		}
		outputs[key] = o.name
	}

	switch strings.ToLower(s.Output.LineEnding) {
	case "lf", "crlf":
	default:
		problems = append(problems, fmt.Sprintf("output.line_ending %q must be 'lf' or 'crlf'", s.Output.LineEnding))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ErrNoSettingsFile is returned by loaders when the requested file is absent.
var ErrNoSettingsFile = errors.New("settings file not found")
