package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/iomapper/internal/catalog"
	"github.com/vk/iomapper/internal/ctxlog"
	"github.com/vk/iomapper/internal/emit"
	"github.com/vk/iomapper/internal/output"
	"github.com/vk/iomapper/internal/topology"
)

// ErrDiagnostics is returned in strict mode when a run completed but reported
// at least one diagnostic.
var ErrDiagnostics = errors.New("generation reported diagnostics")

// Report summarizes a finished run.
type Report struct {
	Types       int
	Modules     int
	Included    int
	Emitted     int
	Skipped     int
	Diagnostics []emit.Diagnostic
}

// Run generates the three artifacts. The type file is written before the
// hardware tree is read, so a topology error leaves a fresh type file behind
// and does not touch the variable or map file.
func (a *App) Run(ctx context.Context) (*Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	s := a.settings
	a.logger.Info("IO mapper started.", "catalog", s.Paths.Catalog, "hardware", s.Paths.Hardware)

	cat, err := catalog.Load(ctx, s.Paths.Catalog)
	if err != nil {
		return nil, err
	}
	report := &Report{Types: cat.Len()}

	if err := a.writer.Write(ctx, s.Paths.Types, output.Overwrite, output.TypeDocument(emit.Types(cat))); err != nil {
		return nil, err
	}
	a.logger.Info("Type declarations written.", "path", s.Paths.Types, "types", cat.Len())

	filter := topology.Filter{Family: s.Filter.Family, Exclude: s.Filter.Exclude}
	instances, err := topology.Load(ctx, s.Paths.Hardware, filter)
	if err != nil {
		return nil, err
	}
	report.Modules = len(instances)
	for _, inst := range instances {
		if inst.Included {
			report.Included++
		} else {
			a.logger.Debug("Module skipped by filter.", "name", inst.InstanceName, "type", inst.DeclaredType)
		}
	}

	res := emit.Instances(instances, cat)
	report.Emitted = len(res.Mappings)
	report.Skipped = res.Skipped
	report.Diagnostics = res.Diagnostics

	for _, block := range res.Mappings {
		a.logger.Info("Module mapped.", "name", block.Instance.InstanceName, "type", block.Instance.DeclaredType, "fields", len(block.Bindings))
	}
	for _, d := range res.Diagnostics {
		a.logger.Warn(d.String(), d.LogAttrs()...)
	}

	if err := a.writer.Write(ctx, s.Paths.Variables, output.Append, output.VariableDocument(res.Variables)); err != nil {
		return report, err
	}
	if err := a.writer.Write(ctx, s.Paths.IOMap, output.Append, output.MappingDocuments(res.Mappings)...); err != nil {
		return report, err
	}

	a.logger.Info("IO mapper finished.",
		"types", report.Types,
		"modules", report.Modules,
		"included", report.Included,
		"emitted", report.Emitted,
		"skipped", report.Skipped,
		"diagnostics", len(report.Diagnostics),
	)

	if a.config.Strict && len(report.Diagnostics) > 0 {
		return report, fmt.Errorf("%w: %d diagnostic(s)", ErrDiagnostics, len(report.Diagnostics))
	}
	return report, nil
}
