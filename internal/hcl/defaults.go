package hcl

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/iomapper/internal/config"
)

// Render returns s as a settings file that Parse reads back unchanged.
func Render(s *config.Settings) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	paths := root.AppendNewBlock("paths", nil).Body()
	paths.SetAttributeValue("catalog", cty.StringVal(s.Paths.Catalog))
	paths.SetAttributeValue("hardware", cty.StringVal(s.Paths.Hardware))
	paths.SetAttributeValue("types", cty.StringVal(s.Paths.Types))
	paths.SetAttributeValue("variables", cty.StringVal(s.Paths.Variables))
	paths.SetAttributeValue("iomap", cty.StringVal(s.Paths.IOMap))
	root.AppendNewline()

	filter := root.AppendNewBlock("filter", nil).Body()
	filter.SetAttributeValue("family", cty.StringVal(s.Filter.Family))
	exclude := cty.ListValEmpty(cty.String)
	if len(s.Filter.Exclude) > 0 {
		vals := make([]cty.Value, len(s.Filter.Exclude))
		for i, ex := range s.Filter.Exclude {
			vals[i] = cty.StringVal(ex)
		}
		exclude = cty.ListVal(vals)
	}
	filter.SetAttributeValue("exclude", exclude)
	root.AppendNewline()

	output := root.AppendNewBlock("output", nil).Body()
	output.SetAttributeValue("line_ending", cty.StringVal(s.Output.LineEnding))

	return f.Bytes()
}

// WriteDefaults writes the default settings to path, refusing to replace an
// existing file.
func WriteDefaults(path string, w io.Writer) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	if _, err := f.Write(Render(config.Defaults())); err != nil {
		f.Close()
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close settings file %s: %w", path, err)
	}
	if w != nil {
		fmt.Fprintf(w, "Default settings written to %s\n", path)
	}
	return nil
}
