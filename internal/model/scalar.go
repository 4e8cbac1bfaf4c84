// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// ScalarType is the IEC 61131-3 elementary type name of a field, exactly as
// written in the catalog. Names outside the recognized set are kept verbatim
// so they still appear in the type declaration.
type ScalarType string

const (
	Bool  ScalarType = "BOOL"
	Sint  ScalarType = "SINT"
	Usint ScalarType = "USINT"
	Int   ScalarType = "INT"
	Uint  ScalarType = "UINT"
	Dint  ScalarType = "DINT"
	Udint ScalarType = "UDINT"
)

// KnownScalarTypes lists the recognized types in width order.
var KnownScalarTypes = []ScalarType{Bool, Sint, Usint, Int, Uint, Dint, Udint}

// String returns the type name.
func (s ScalarType) String() string {
	return string(s)
}
