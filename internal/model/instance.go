// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// VariablePrefix starts the identifier of every generated global variable.
const VariablePrefix = "IOMapping_"

// ModuleInstance is one module node of the hardware tree.
type ModuleInstance struct {
	InstanceName string
	DeclaredType string
	// Included reports whether the declared type passed the inclusion filter.
	Included bool
}

// VariableName returns the identifier of the global variable that mirrors
// the instance.
func (m ModuleInstance) VariableName() string {
	return VariablePrefix + m.InstanceName
}
