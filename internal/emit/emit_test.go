package emit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/iomapper/internal/addrspace"
	"github.com/vk/iomapper/internal/model"
)

func newCatalog(t *testing.T, specs ...*model.ModuleTypeSpec) *model.Catalog {
	t.Helper()
	cat := model.NewCatalog()
	for _, s := range specs {
		require.NoError(t, cat.Add(s))
	}
	return cat
}

func diSpec() *model.ModuleTypeSpec {
	return &model.ModuleTypeSpec{
		TypeName: "X20DI-001",
		Fields: []model.FieldSpec{
			{Name: "Ch0", ScalarType: model.Bool},
			{Name: "Ch1", ScalarType: model.Bool},
		},
	}
}

func TestTypes(t *testing.T) {
	cat := newCatalog(t, diSpec(), &model.ModuleTypeSpec{
		TypeName: "X20AT6402",
		Fields: []model.FieldSpec{
			{Name: "ModuleOk", ScalarType: model.Bool},
			{Name: "Temperature01", ScalarType: model.Int},
			{Name: "Resistance01", ScalarType: "REAL"},
		},
	})

	expected := []string{
		"X20DI_001_TYP : STRUCT",
		"Ch0 : BOOL;",
		"Ch1 : BOOL;",
		"END_STRUCT;",
		"X20AT6402_TYP : STRUCT",
		"ModuleOk : BOOL;",
		"Temperature01 : INT;",
		"Resistance01 : REAL;",
		"END_STRUCT;",
	}
	if diff := cmp.Diff(expected, Types(cat)); diff != "" {
		t.Errorf("Types() mismatch (-want +got):\n%s", diff)
	}
}

func TestTypes_OneRecordPerEntry(t *testing.T) {
	cat := newCatalog(t,
		&model.ModuleTypeSpec{TypeName: "A"},
		&model.ModuleTypeSpec{TypeName: "B", Fields: []model.FieldSpec{{Name: "x", ScalarType: model.Dint}}},
		&model.ModuleTypeSpec{TypeName: "C-1"},
	)

	lines := Types(cat)
	var structs int
	for _, l := range lines {
		if l == "END_STRUCT;" {
			structs++
		}
	}
	assert.Equal(t, cat.Len(), structs)
	assert.Equal(t, "C_1_TYP : STRUCT", lines[len(lines)-2])
}

func TestTypes_Empty(t *testing.T) {
	assert.Empty(t, Types(model.NewCatalog()))
}

func TestInstances_Scenario(t *testing.T) {
	cat := newCatalog(t, diSpec())
	instances := []model.ModuleInstance{
		{InstanceName: "DI1", DeclaredType: "X20DI-001", Included: true},
	}

	res := Instances(instances, cat)

	assert.Equal(t, []string{"IOMapping_DI1 : X20DI_001_TYP;"}, res.Variables)
	require.Len(t, res.Mappings, 1)
	expected := []string{
		`::IOMapping_DI1.Ch0 AT %IX."DI1".Ch0;`,
		`::IOMapping_DI1.Ch1 AT %IX."DI1".Ch1;`,
	}
	if diff := cmp.Diff(expected, res.Mappings[0].Lines()); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, res.Diagnostics)
	assert.Zero(t, res.Skipped)
}

func TestInstances_ExcludedNodesProduceNothing(t *testing.T) {
	cat := newCatalog(t, diSpec(), &model.ModuleTypeSpec{TypeName: "X20TB12", Fields: []model.FieldSpec{{Name: "x", ScalarType: model.Bool}}})
	instances := []model.ModuleInstance{
		{InstanceName: "TB1", DeclaredType: "X20TB12", Included: false},
	}

	res := Instances(instances, cat)
	assert.Empty(t, res.Variables)
	assert.Empty(t, res.Mappings)
	assert.Empty(t, res.Diagnostics)
}

func TestInstances_OrderFollowsTopology(t *testing.T) {
	cat := newCatalog(t,
		&model.ModuleTypeSpec{TypeName: "X20DO6322", Fields: []model.FieldSpec{{Name: "DigitalOutput01", ScalarType: model.Bool}}},
		&model.ModuleTypeSpec{TypeName: "X20AI4622", Fields: []model.FieldSpec{
			{Name: "AnalogInput01", ScalarType: model.Int},
			{Name: "StatusInput01", ScalarType: model.Usint},
			{Name: "SerialNumber", ScalarType: model.Udint},
		}},
	)
	instances := []model.ModuleInstance{
		{InstanceName: "112KF15", DeclaredType: "X20AI4622", Included: true},
		{InstanceName: "114KF24", DeclaredType: "X20DO6322", Included: true},
	}

	res := Instances(instances, cat)

	assert.Equal(t, []string{
		"IOMapping_112KF15 : X20AI4622_TYP;",
		"IOMapping_114KF24 : X20DO6322_TYP;",
	}, res.Variables)
	require.Len(t, res.Mappings, 2)
	assert.Equal(t, []Binding{
		{Instance: "112KF15", Field: "AnalogInput01", Tag: addrspace.Word},
		{Instance: "112KF15", Field: "StatusInput01", Tag: addrspace.Byte},
		{Instance: "112KF15", Field: "SerialNumber", Tag: addrspace.DoubleWord},
	}, res.Mappings[0].Bindings)
	assert.Equal(t, "114KF24", res.Mappings[1].Instance.InstanceName)
}

func TestInstances_UnknownModuleType(t *testing.T) {
	cat := newCatalog(t, diSpec())
	instances := []model.ModuleInstance{
		{InstanceName: "X1", DeclaredType: "X20XX9999", Included: true},
		{InstanceName: "DI1", DeclaredType: "X20DI-001", Included: true},
	}

	res := Instances(instances, cat)

	assert.Equal(t, []string{"IOMapping_DI1 : X20DI_001_TYP;"}, res.Variables)
	require.Len(t, res.Mappings, 1)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, Diagnostic{Kind: UnknownModuleType, Instance: "X1", TypeName: "X20XX9999"}, res.Diagnostics[0])
	assert.Contains(t, res.Diagnostics[0].String(), "not in the catalog")
}

func TestInstances_UnmappedScalarType(t *testing.T) {
	cat := newCatalog(t, &model.ModuleTypeSpec{
		TypeName: "X20AI4622",
		Fields: []model.FieldSpec{
			{Name: "ModuleOk", ScalarType: model.Bool},
			{Name: "AnalogInput01", ScalarType: "REAL"},
		},
	})
	instances := []model.ModuleInstance{{InstanceName: "AI1", DeclaredType: "X20AI4622", Included: true}}

	res := Instances(instances, cat)

	require.Len(t, res.Mappings, 1)
	assert.Equal(t, []string{
		`::IOMapping_AI1.ModuleOk AT %IX."AI1".ModuleOk;`,
		`::IOMapping_AI1.AnalogInput01 AT ."AI1".AnalogInput01;`,
	}, res.Mappings[0].Lines())
	assert.Zero(t, res.Skipped, "an unmapped field does not skip the instance")
	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, UnmappedScalarType, d.Kind)
	assert.Equal(t, "AnalogInput01", d.Field)
	assert.Equal(t, "REAL", d.ScalarType)
	assert.Contains(t, d.LogAttrs(), "scalar_type")
}

func TestInstances_DuplicateInstance(t *testing.T) {
	cat := newCatalog(t, diSpec())
	instances := []model.ModuleInstance{
		{InstanceName: "DI1", DeclaredType: "X20DI-001", Included: true},
		{InstanceName: "DI1", DeclaredType: "X20DI-001", Included: true},
	}

	res := Instances(instances, cat)

	assert.Len(t, res.Variables, 1)
	assert.Len(t, res.Mappings, 1)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, DuplicateInstance, res.Diagnostics[0].Kind)
}

func TestInstances_Deterministic(t *testing.T) {
	cat := newCatalog(t, diSpec())
	instances := []model.ModuleInstance{
		{InstanceName: "DI1", DeclaredType: "X20DI-001", Included: true},
		{InstanceName: "DI2", DeclaredType: "X20DI-001", Included: true},
	}

	first := Instances(instances, cat)
	second := Instances(instances, cat)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated runs differ (-first +second):\n%s", diff)
	}
}

func TestDiagnosticKind_String(t *testing.T) {
	assert.Equal(t, "UnknownModuleType", UnknownModuleType.String())
	assert.Equal(t, "UnmappedScalarType", UnmappedScalarType.String())
	assert.Equal(t, "DuplicateInstance", DuplicateInstance.String())
	assert.Equal(t, "DiagnosticKind(42)", DiagnosticKind(42).String())
}
