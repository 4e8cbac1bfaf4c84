// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"fmt"
	"strings"
)

// TypeSuffix is appended to every generated record-type identifier.
const TypeSuffix = "_TYP"

// FieldSpec is one scalar field of a module type.
type FieldSpec struct {
	Name       string
	ScalarType ScalarType
}

// ModuleTypeSpec describes the data layout of one hardware module type.
type ModuleTypeSpec struct {
	TypeName string
	Fields   []FieldSpec
	// Source is the catalog file the type was read from.
	Source string
}

// Identifier returns the declared record-type identifier for the type.
func (m *ModuleTypeSpec) Identifier() string {
	return TypeIdentifier(m.TypeName)
}

// SanitizeName rewrites a catalog type name into a legal identifier stem.
// Hyphens are the only characters the catalog uses that the PLC language
// forbids in identifiers.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// TypeIdentifier returns the sanitized name with TypeSuffix appended.
func TypeIdentifier(typeName string) string {
	return SanitizeName(typeName) + TypeSuffix
}

// Catalog is the ordered collection of module types with a lookup by name.
type Catalog struct {
	types []*ModuleTypeSpec
	index map[string]*ModuleTypeSpec
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]*ModuleTypeSpec)}
}

// Add appends a type. A name that is already present is rejected; the
// existing entry is left untouched.
func (c *Catalog) Add(spec *ModuleTypeSpec) error {
	if prev, ok := c.index[spec.TypeName]; ok {
		return fmt.Errorf("module type %q already defined in %s", spec.TypeName, prev.Source)
	}
	c.types = append(c.types, spec)
	c.index[spec.TypeName] = spec
	return nil
}

// Types returns the types in catalog order.
func (c *Catalog) Types() []*ModuleTypeSpec {
	return c.types
}

// Lookup resolves a type by its catalog name.
func (c *Catalog) Lookup(typeName string) (*ModuleTypeSpec, bool) {
	spec, ok := c.index[typeName]
	return spec, ok
}

// Len returns the number of types.
func (c *Catalog) Len() int {
	return len(c.types)
}
