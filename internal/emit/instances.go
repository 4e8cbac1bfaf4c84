package emit

import (
	"fmt"

	"github.com/vk/iomapper/internal/addrspace"
	"github.com/vk/iomapper/internal/model"
)

// Binding ties one field of one instance variable to an input address. The
// address is symbolic: the hardware node name and field name, resolved to a
// real offset later by the PLC configuration tool.
type Binding struct {
	Instance string
	Field    string
	Tag      addrspace.Tag
}

// String renders the binding statement.
//
//	::IOMapping_DI1.Ch0 AT %IX."DI1".Ch0;
func (b Binding) String() string {
	return fmt.Sprintf("::%s%s.%s AT %s.\"%s\".%s;", model.VariablePrefix, b.Instance, b.Field, b.Tag, b.Instance, b.Field)
}

// MappingBlock holds the bindings of one instance. Each block becomes its own
// VAR_CONFIG section.
type MappingBlock struct {
	Instance model.ModuleInstance
	Bindings []Binding
}

// Lines renders the binding statements of the block.
func (m MappingBlock) Lines() []string {
	lines := make([]string, len(m.Bindings))
	for i, b := range m.Bindings {
		lines[i] = b.String()
	}
	return lines
}

// InstanceResult is the output of Instances.
type InstanceResult struct {
	// Variables holds one declaration line per emitted instance.
	Variables []string
	// Mappings holds one block per emitted instance, in the same order.
	Mappings []MappingBlock
	// Skipped counts included instances left out by a diagnostic.
	Skipped     int
	Diagnostics []Diagnostic
}

// Instances renders the variables and bindings for every included instance,
// in topology order, with fields in catalog order.
func Instances(instances []model.ModuleInstance, cat *model.Catalog) *InstanceResult {
	res := &InstanceResult{}
	seen := make(map[string]struct{}, len(instances))

	for _, inst := range instances {
		if !inst.Included {
			continue
		}

		spec, ok := cat.Lookup(inst.DeclaredType)
		if !ok {
			res.Skipped++
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:     UnknownModuleType,
				Instance: inst.InstanceName,
				TypeName: inst.DeclaredType,
			})
			continue
		}
		if _, dup := seen[inst.InstanceName]; dup {
			res.Skipped++
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:     DuplicateInstance,
				Instance: inst.InstanceName,
				TypeName: inst.DeclaredType,
			})
			continue
		}
		seen[inst.InstanceName] = struct{}{}

		res.Variables = append(res.Variables, fmt.Sprintf("%s : %s;", inst.VariableName(), spec.Identifier()))

		block := MappingBlock{Instance: inst, Bindings: make([]Binding, 0, len(spec.Fields))}
		for _, f := range spec.Fields {
			tag, ok := addrspace.Resolve(f.ScalarType)
			if !ok {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Kind:       UnmappedScalarType,
					Instance:   inst.InstanceName,
					TypeName:   spec.TypeName,
					Field:      f.Name,
					ScalarType: string(f.ScalarType),
				})
			}
			block.Bindings = append(block.Bindings, Binding{Instance: inst.InstanceName, Field: f.Name, Tag: tag})
		}
		res.Mappings = append(res.Mappings, block)
	}
	return res
}
