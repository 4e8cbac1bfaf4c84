package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/iomapper/internal/config"
	"github.com/vk/iomapper/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the variables exposed as env.<NAME>.
	Environ func() []string
}

// NewLoader creates a loader that exposes the process environment.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// Load parses the settings file at path and overlays it on config.Defaults().
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", config.ErrNoSettingsFile, path)
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	settings, err := l.Parse(src, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("HCL settings loaded.", "catalog", settings.Paths.Catalog, "hardware", settings.Paths.Hardware, "family", settings.Filter.Family)
	return settings, nil
}

// Parse decodes settings from src. filename is used in diagnostics and to
// derive config_dir.
func (l *Loader) Parse(src []byte, filename string) (*config.Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", filename, diags)
	}

	evalCtx := l.evalContext(filename)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", filename, diags)
	}

	settings := config.Defaults()
	if p := root.Paths; p != nil {
		overlay(&settings.Paths.Catalog, p.Catalog)
		overlay(&settings.Paths.Hardware, p.Hardware)
		overlay(&settings.Paths.Types, p.Types)
		overlay(&settings.Paths.Variables, p.Variables)
		overlay(&settings.Paths.IOMap, p.IOMap)
	}
	if f := root.Filter; f != nil {
		overlay(&settings.Filter.Family, f.Family)
		exclude, set, err := decodeStringList(f.Exclude, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to decode filter.exclude in %s: %w", filename, err)
		}
		if set {
			settings.Filter.Exclude = exclude
		}
	}
	if o := root.Output; o != nil {
		overlay(&settings.Output.LineEnding, o.LineEnding)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return settings, nil
}

func overlay(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// decodeStringList evaluates expr as a list of strings. set is false when the
// attribute was absent or null.
func decodeStringList(expr hcl.Expression, evalCtx *hcl.EvalContext) (list []string, set bool, err error) {
	if expr == nil {
		return nil, false, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, false, diags
	}
	if val.IsNull() {
		return nil, false, nil
	}

	converted, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, false, fmt.Errorf("cannot convert %s to list of string: %w", val.Type().FriendlyName(), err)
	}
	if converted.LengthInt() == 0 {
		return []string{}, true, nil
	}
	if err := gocty.FromCtyValue(converted, &list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

// evalContext exposes env and config_dir, plus a few string functions.
func (l *Loader) evalContext(filename string) *hcl.EvalContext {
	env := map[string]cty.Value{}
	if l.Environ != nil {
		for _, kv := range l.Environ() {
			name, value, ok := strings.Cut(kv, "=")
			if !ok || name == "" {
				continue
			}
			env[name] = cty.StringVal(value)
		}
	}
	envVal := cty.MapValEmpty(cty.String)
	if len(env) > 0 {
		envVal = cty.MapVal(env)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env":        envVal,
			"config_dir": cty.StringVal(filepath.ToSlash(filepath.Dir(filename))),
		},
		Functions: map[string]function.Function{
			"join":  stdlib.JoinFunc,
			"lower": stdlib.LowerFunc,
			"upper": stdlib.UpperFunc,
		},
	}
}
