package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_Valid(t *testing.T) {
	s := Defaults()
	require.NoError(t, s.Validate())
	assert.Equal(t, "IOModuleTypes.yml", s.Paths.Catalog)
	assert.Equal(t, "X20", s.Filter.Family)
	assert.Equal(t, []string{"X20TB", "X20BM"}, s.Filter.Exclude)
}

func TestDefaults_Independent(t *testing.T) {
	a := Defaults()
	a.Filter.Exclude[0] = "changed"
	assert.Equal(t, "X20TB", Defaults().Filter.Exclude[0])
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	s := Defaults()
	s.Paths.Catalog = ""
	s.Filter.Family = " "
	s.Filter.Exclude = []string{"X20TB", ""}
	s.Output.LineEnding = "cr"
	s.Paths.IOMap = s.Paths.Variables

	err := s.Validate()
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Problems, 5)
	assert.Contains(t, err.Error(), "paths.catalog must not be empty")
	assert.Contains(t, err.Error(), "filter.family must not be empty")
	assert.Contains(t, err.Error(), "filter.exclude[1]")
	assert.Contains(t, err.Error(), "output.line_ending")
	assert.Contains(t, err.Error(), "name the same file")
}

func TestValidate_LineEndingCaseInsensitive(t *testing.T) {
	s := Defaults()
	s.Output.LineEnding = "CRLF"
	assert.NoError(t, s.Validate())
}

func TestValidate_SameOutputFileDifferentSpelling(t *testing.T) {
	testCases := []struct {
		name      string
		types     string
		variables string
	}{
		{name: "dot prefix", types: "./Global.var", variables: "Global.var"},
		{name: "redundant separator", types: "Logical//Global.var", variables: "Logical/Global.var"},
		{name: "parent segment", types: "../Logical/../Logical/Global.var", variables: "../Logical/Global.var"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Defaults()
			s.Paths.Types = tc.types
			s.Paths.Variables = tc.variables

			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "paths.types and paths.variables name the same file")
		})
	}
}
