// Package addrspace maps field scalar types to the access-width tag of the
// controller's input address space.
package addrspace

import "github.com/vk/iomapper/internal/model"

// Tag is the address-space prefix used in an AT binding.
type Tag string

const (
	Bit        Tag = "%IX"
	Byte       Tag = "%IB"
	Word       Tag = "%IW"
	DoubleWord Tag = "%ID"
	// Unmapped is returned for types outside the table.
	Unmapped Tag = ""
)

// Signedness does not change the access width, so signed and unsigned
// variants share a tag.
var table = map[model.ScalarType]Tag{
	model.Bool:  Bit,
	model.Sint:  Byte,
	model.Usint: Byte,
	model.Int:   Word,
	model.Uint:  Word,
	model.Dint:  DoubleWord,
	model.Udint: DoubleWord,
}

// Resolve returns the tag for a scalar type. The lookup is case-sensitive.
// ok is false when the type has no tag, in which case Unmapped is returned.
func Resolve(t model.ScalarType) (tag Tag, ok bool) {
	tag, ok = table[t]
	if !ok {
		return Unmapped, false
	}
	return tag, true
}

// String returns the tag text.
func (t Tag) String() string {
	return string(t)
}
