// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory representation of the two generator
// inputs: the module-type catalog and the list of physical module instances
// found in the hardware tree.
//
// # Core Concepts
//
//   - Catalog: the ordered set of ModuleTypeSpec values loaded from the
//     catalog document, plus a name index. Order follows the document and
//     drives the order of the generated type file.
//
//   - ModuleTypeSpec: one hardware module type and its ordered fields.
//
//   - FieldSpec: one scalar field. Its ScalarType decides the address space
//     the field is bound to.
//
//   - ModuleInstance: one module node from the hardware tree. Instances refer
//     to their type by name only; the Catalog resolves the reference.
//
// All values are built once by the loaders and never mutated afterwards, so
// the emitters can treat them as plain read-only data.
package model
