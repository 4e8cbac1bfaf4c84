package emit

import "fmt"

// DiagnosticKind classifies an anomaly found during emission.
type DiagnosticKind int

const (
	// UnknownModuleType: an included instance names a type missing from the
	// catalog. The instance is left out of the variable and mapping output.
	UnknownModuleType DiagnosticKind = iota
	// UnmappedScalarType: a field type has no address-space tag. The binding
	// is still written, with an empty tag.
	UnmappedScalarType
	// DuplicateInstance: a second module node uses an instance name that was
	// already emitted. The later node is left out.
	DuplicateInstance
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnknownModuleType:
		return "UnknownModuleType"
	case UnmappedScalarType:
		return "UnmappedScalarType"
	case DuplicateInstance:
		return "DuplicateInstance"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is one recovered anomaly. Field and ScalarType are set only for
// UnmappedScalarType.
type Diagnostic struct {
	Kind       DiagnosticKind
	Instance   string
	TypeName   string
	Field      string
	ScalarType string
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case UnknownModuleType:
		return fmt.Sprintf("%s: instance %q declares type %q which is not in the catalog", d.Kind, d.Instance, d.TypeName)
	case UnmappedScalarType:
		return fmt.Sprintf("%s: %s.%s of instance %q has type %q with no address space", d.Kind, d.TypeName, d.Field, d.Instance, d.ScalarType)
	case DuplicateInstance:
		return fmt.Sprintf("%s: instance name %q (type %q) is already mapped", d.Kind, d.Instance, d.TypeName)
	}
	return d.Kind.String()
}

// LogAttrs returns the diagnostic as slog key/value pairs.
func (d Diagnostic) LogAttrs() []any {
	attrs := []any{"kind", d.Kind.String(), "instance", d.Instance, "type", d.TypeName}
	if d.Kind == UnmappedScalarType {
		attrs = append(attrs, "field", d.Field, "scalar_type", d.ScalarType)
	}
	return attrs
}
