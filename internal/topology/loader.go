// Package topology reads the hardware tree (Automation Studio Hardware.hw)
// and extracts the module instances that the I/O mapping is generated for.
//
// The document is parsed into a generic element tree instead of a schema
// struct; only Module elements and their Name and Type attributes matter,
// wherever they sit in the tree.
package topology

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/vk/iomapper/internal/ctxlog"
	"github.com/vk/iomapper/internal/model"
)

// moduleElement is the element name of a hardware module node.
const moduleElement = "Module"

// ParseError reports a hardware tree that is unreadable or malformed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("hardware topology %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []*xmlNode `xml:",any"`
}

func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Load reads the hardware tree at path and returns every module node in
// document order, with Included set by filter.
func Load(ctx context.Context, path string, filter Filter) ([]model.ModuleInstance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	instances, err := Decode(data, filter)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	included := 0
	for _, inst := range instances {
		if inst.Included {
			included++
		}
	}
	ctxlog.FromContext(ctx).Debug("Hardware topology loaded.", "path", path, "modules", len(instances), "included", included)
	return instances, nil
}

// Decode parses a hardware tree document. A document without module nodes
// yields an empty result.
func Decode(data []byte, filter Filter) ([]model.ModuleInstance, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	// Hardware.hw files normally declare utf-8. Other declared encodings,
	// such as ISO-8859-1, are decoded to UTF-8.
	dec.CharsetReader = charset.NewReaderLabel

	var root xmlNode
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("document has no root element")
		}
		return nil, err
	}
	// Trailing content after the root element is not well-formed XML.
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch tok.(type) {
		case xml.StartElement, xml.EndElement:
			return nil, errors.New("content after the root element")
		}
	}

	var instances []model.ModuleInstance
	collectModules(&root, filter, &instances)
	return instances, nil
}

// collectModules walks the tree depth-first in document order.
func collectModules(n *xmlNode, filter Filter, out *[]model.ModuleInstance) {
	if n.XMLName.Local == moduleElement {
		typeName := n.attr("Type")
		*out = append(*out, model.ModuleInstance{
			InstanceName: n.attr("Name"),
			DeclaredType: typeName,
			Included:     filter.Includes(typeName),
		})
	}
	for _, c := range n.Children {
		collectModules(c, filter, out)
	}
}
