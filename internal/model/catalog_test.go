// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no hyphen", input: "X20DI6371", expected: "X20DI6371"},
		{name: "single hyphen", input: "X20DI-6371", expected: "X20DI_6371"},
		{name: "many hyphens", input: "X20DI-001-B", expected: "X20DI_001_B"},
		{name: "leading and trailing", input: "-X20-", expected: "_X20_"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeName(tc.input)
			assert.Equal(t, tc.expected, got)
			assert.NotContains(t, got, "-")
			assert.Equal(t, got, SanitizeName(got), "sanitizing twice must not change the result")
		})
	}
}

func TestTypeIdentifier(t *testing.T) {
	assert.Equal(t, "X20_DI_001_TYP", TypeIdentifier("X20-DI-001"))
	assert.Equal(t, "X20DI_001_TYP", TypeIdentifier("X20DI-001"), "only hyphens are replaced, no separator is inserted")
	assert.Equal(t, "X20DI6371_TYP", (&ModuleTypeSpec{TypeName: "X20DI6371"}).Identifier())
}

func TestCatalog_AddLookupOrder(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Add(&ModuleTypeSpec{TypeName: "B", Source: "a.yml"}))
	require.NoError(t, c.Add(&ModuleTypeSpec{TypeName: "A", Source: "a.yml"}))

	spec, ok := c.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "A", spec.TypeName)

	_, ok = c.Lookup("C")
	assert.False(t, ok)

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "B", c.Types()[0].TypeName, "insertion order must be preserved")
	assert.Equal(t, "A", c.Types()[1].TypeName)
}

func TestCatalog_AddDuplicate(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Add(&ModuleTypeSpec{TypeName: "A", Source: "first.yml"}))

	err := c.Add(&ModuleTypeSpec{TypeName: "A", Source: "second.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first.yml")

	spec, _ := c.Lookup("A")
	assert.Equal(t, "first.yml", spec.Source, "the first definition must be kept")
	assert.Equal(t, 1, c.Len())
}

func TestModuleInstance_VariableName(t *testing.T) {
	assert.Equal(t, "IOMapping_113KF16", ModuleInstance{InstanceName: "113KF16"}.VariableName())
}
