// Package catalog loads the module-type catalog: a YAML document mapping each
// module type name to an ordered mapping of field name to scalar type name.
//
//	X20DI6371:
//	  ModuleOk: BOOL
//	  SerialNumber: UDINT
//	  DigitalInput01: BOOL
//
// Document order is kept for both types and fields. It is decoded through
// yaml.Node rather than a Go map for that reason.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/iomapper/internal/ctxlog"
	"github.com/vk/iomapper/internal/fsutil"
	"github.com/vk/iomapper/internal/model"
)

// ParseError reports a catalog that is unreadable or malformed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the catalog at path. A directory is searched recursively for
// .yml and .yaml files, which are merged in lexical path order.
func Load(ctx context.Context, path string) (*model.Catalog, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".yml", ".yaml")
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		if len(files) == 0 {
			return nil, &ParseError{Path: path, Err: errors.New("directory contains no .yml or .yaml files")}
		}
	}
	logger.Debug("Catalog files discovered.", "path", path, "count", len(files))

	cat := model.NewCatalog()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, &ParseError{Path: file, Err: err}
		}
		if err := Decode(cat, file, data); err != nil {
			return nil, err
		}
	}

	logger.Debug("Catalog loaded.", "types", cat.Len())
	return cat, nil
}

// Decode parses one catalog document and appends its types to cat. source
// names the document in errors and in ModuleTypeSpec.Source.
func Decode(cat *model.Catalog, source string, data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &ParseError{Path: source, Err: err}
	}

	// An empty or comment-only input decodes to a zero node or a document
	// without content.
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return nil
	}
	if doc.Kind != yaml.DocumentNode {
		return &ParseError{Path: source, Err: errors.New("expected a YAML document")}
	}

	root := resolve(doc.Content[0])
	if isNull(root) {
		return nil
	}
	if root.Kind != yaml.MappingNode {
		return &ParseError{Path: source, Err: fmt.Errorf("line %d: top level must be a mapping of module types", root.Line)}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], resolve(root.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			return &ParseError{Path: source, Err: fmt.Errorf("line %d: module type name must be a scalar", keyNode.Line)}
		}

		spec, err := decodeType(source, keyNode.Value, valNode)
		if err != nil {
			return &ParseError{Path: source, Err: err}
		}
		if err := cat.Add(spec); err != nil {
			return &ParseError{Path: source, Err: fmt.Errorf("line %d: %w", keyNode.Line, err)}
		}
	}
	return nil
}

func decodeType(source, typeName string, node *yaml.Node) (*model.ModuleTypeSpec, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: module type %q must map field names to scalar types", node.Line, typeName)
	}

	spec := &model.ModuleTypeSpec{
		TypeName: typeName,
		Fields:   make([]model.FieldSpec, 0, len(node.Content)/2),
		Source:   source,
	}
	seen := make(map[string]int, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], resolve(node.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: field name in %q must be a scalar", keyNode.Line, typeName)
		}
		if valNode.Kind != yaml.ScalarNode || isNull(valNode) {
			return nil, fmt.Errorf("line %d: field %s.%s must have a scalar type name", valNode.Line, typeName, keyNode.Value)
		}
		if line, dup := seen[keyNode.Value]; dup {
			return nil, fmt.Errorf("line %d: field %s.%s already defined at line %d", keyNode.Line, typeName, keyNode.Value, line)
		}
		seen[keyNode.Value] = keyNode.Line

		spec.Fields = append(spec.Fields, model.FieldSpec{
			Name:       keyNode.Value,
			ScalarType: model.ScalarType(valNode.Value),
		})
	}
	return spec, nil
}

// resolve follows YAML aliases to the anchored node.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
