package calculator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeJSON(t *testing.T) {
	cases := map[string]struct {
		includes string
		excludes string
		expected []string
	}{
		"Normal": {
			includes: `[{"start": 10, "end": 100}]`,
			excludes: `[{"start": 20, "end": 30}]`,
			expected: []string{"10-19", "31-100"},
		},
		"EmptyLists": {
			includes: `[]`,
			excludes: `[]`,
			expected: []string{},
		},
		"IntegralFloats": {
			includes: `[{"start": 1e1, "end": 2.0E1}]`,
			excludes: `[]`,
			expected: []string{"10-20"},
		},
		"ExtraFieldsIgnored": {
			includes: `[{"start": 1, "end": 5, "label": "a"}]`,
			excludes: `[{"end": 3, "start": 2}]`,
			expected: []string{"1-1", "4-5"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ComputeJSON([]byte(tc.includes), []byte(tc.excludes))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, strs(got)); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestComputeJSONErrors(t *testing.T) {
	type report struct {
		Kind  Kind
		Side  Side
		Index int
	}
	cases := map[string]struct {
		includes string
		excludes string
		expected []report
	}{
		"IncludesNotArray": {
			includes: `{"start": 1, "end": 2}`,
			excludes: `[]`,
			expected: []report{{InvalidArgumentType, SideInclude, -1}},
		},
		"BothNotArray": {
			includes: `null`,
			excludes: `"1-5"`,
			expected: []report{
				{InvalidArgumentType, SideInclude, -1},
				{InvalidArgumentType, SideExclude, -1},
			},
		},
		"MalformedJSON": {
			includes: `[{"start": 1,`,
			excludes: `[]`,
			expected: []report{{InvalidArgumentType, SideInclude, -1}},
		},
		"StringStart": {
			includes: `[{"start": "a", "end": 5}]`,
			excludes: `[]`,
			expected: []report{{InvalidInterval, SideInclude, 0}},
		},
		"OnePerElementBothSides": {
			includes: `[{"start": 1, "end": 5}, {"start": "a", "end": "b"}, {"start": 10, "end": 5}]`,
			excludes: `[null, 7, {"start": 1.5, "end": 3}, {"start": 1}]`,
			expected: []report{
				{InvalidInterval, SideInclude, 1},
				{InvalidInterval, SideInclude, 2},
				{InvalidInterval, SideExclude, 0},
				{InvalidInterval, SideExclude, 1},
				{InvalidInterval, SideExclude, 2},
				{InvalidInterval, SideExclude, 3},
			},
		},
		"ArgumentAndElementErrors": {
			includes: `5`,
			excludes: `[{"start": 3, "end": 1}]`,
			expected: []report{
				{InvalidArgumentType, SideInclude, -1},
				{InvalidInterval, SideExclude, 0},
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ComputeJSON([]byte(tc.includes), []byte(tc.excludes))
			require.Error(t, err)
			assert.Nil(t, got)

			var errs Errors
			require.True(t, errors.As(err, &errs))
			reported := make([]report, 0, len(errs))
			for _, e := range errs {
				reported = append(reported, report{e.Kind, e.Side, e.Index})
				assert.NotEmpty(t, e.Detail)
			}
			if diff := cmp.Diff(tc.expected, reported); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}
