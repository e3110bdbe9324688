package sorting

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
		warnings string
	}{
		{
			name:     "defaults",
			args:     nil,
			expected: Options{SortingType: "natural", DataType: "word"},
		},
		{
			name: "all flags",
			args: []string{"-sortingType", "count", "-dataType", "long", "-inputFile", "in.txt", "-outputFile", "out.txt"},
			expected: Options{
				SortingType: "count",
				DataType:    "long",
				InputFile:   strPtr("in.txt"),
				OutputFile:  strPtr("out.txt"),
			},
		},
		{
			name:     "order independent",
			args:     []string{"-dataType", "line", "-sortingType", "count"},
			expected: Options{SortingType: "count", DataType: "line"},
		},
		{
			name:     "unknown flag and its value are skipped",
			args:     []string{"-foo", "bar", "-dataType", "line"},
			expected: Options{SortingType: "natural", DataType: "line"},
			warnings: "-foo is not a valid parameter. It will be skipped.\n" +
				"bar is not a valid parameter. It will be skipped.\n",
		},
		{
			name:     "value of unknown flag is re-examined",
			args:     []string{"-foo", "-sortingType", "count"},
			expected: Options{SortingType: "count", DataType: "word"},
			warnings: "-foo is not a valid parameter. It will be skipped.\n",
		},
		{
			name:     "empty values are kept",
			args:     []string{"-dataType", "", "-sortingType", "", "-inputFile", ""},
			expected: Options{InputFile: strPtr("")},
		},
		{
			name:     "later value wins",
			args:     []string{"-dataType", "line", "-dataType", "long"},
			expected: Options{SortingType: "natural", DataType: "long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warn bytes.Buffer
			opts, err := ParseOptions(tt.args, &warn)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
			assert.Equal(t, tt.warnings, warn.String())
		})
	}
}

func strPtr(s string) *string {
	return &s
}

func TestParseOptions_DefaultsWhenAbsent(t *testing.T) {
	opts, err := ParseOptions([]string{"-inputFile", "in.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSortingType, opts.SortingType)
	assert.Equal(t, DefaultDataType, opts.DataType)
	assert.Nil(t, opts.OutputFile)
}

func TestParseOptions_MissingValue(t *testing.T) {
	tests := []struct {
		args []string
		msg  string
	}{
		{[]string{"-sortingType"}, "No sorting type defined!"},
		{[]string{"-dataType"}, "No data type defined!"},
		{[]string{"-dataType", "line", "-inputFile"}, "No input file defined!"},
		{[]string{"-outputFile"}, "No output file defined!"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			_, err := ParseOptions(tt.args, &bytes.Buffer{})
			require.EqualError(t, err, tt.msg)

			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}
