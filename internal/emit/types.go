package emit

import (
	"fmt"

	"github.com/vk/iomapper/internal/model"
)

// Types renders one STRUCT record per catalog type, in catalog order.
//
//	X20DI_001_TYP : STRUCT
//	Ch0 : BOOL;
//	END_STRUCT;
func Types(cat *model.Catalog) []string {
	var lines []string
	for _, spec := range cat.Types() {
		lines = append(lines, fmt.Sprintf("%s : STRUCT", spec.Identifier()))
		for _, f := range spec.Fields {
			lines = append(lines, fmt.Sprintf("%s : %s;", f.Name, f.ScalarType))
		}
		lines = append(lines, "END_STRUCT;")
	}
	return lines
}
