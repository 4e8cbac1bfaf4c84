package topology

import "strings"

const (
	// DefaultFamily is the X20 I/O system type prefix.
	DefaultFamily = "X20"
	// BusTerminalPrefix marks X20 terminal blocks.
	BusTerminalPrefix = "X20TB"
	// BusModulePrefix marks X20 bus-module carriers.
	BusModulePrefix = "X20BM"
)

// Filter selects the module nodes that get a variable and a mapping. It is a
// plain textual prefix test on the declared type name.
type Filter struct {
	Family  string
	Exclude []string
}

// DefaultFilter returns the X20 filter without terminal blocks and bus modules.
func DefaultFilter() Filter {
	return Filter{
		Family:  DefaultFamily,
		Exclude: []string{BusTerminalPrefix, BusModulePrefix},
	}
}

// Includes reports whether typeName starts with the family prefix and with
// none of the exclusion prefixes.
func (f Filter) Includes(typeName string) bool {
	if !strings.HasPrefix(typeName, f.Family) {
		return false
	}
	for _, ex := range f.Exclude {
		if strings.HasPrefix(typeName, ex) {
			return false
		}
	}
	return true
}
