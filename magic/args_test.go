package magic

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseArgs(t *testing.T) {
	type testCase struct {
		name           string
		give           string
		expectedResult *Args
		expectedError  string
	}

	testCases := []testCase{
		{
			name:           "empty line uses defaults",
			give:           "",
			expectedResult: &Args{TargetVariable: "_df"},
		},
		{
			name:           "target variable",
			give:           "results",
			expectedResult: &Args{TargetVariable: "results"},
		},
		{
			name:           "long suppression flag",
			give:           "--no-display big_df",
			expectedResult: &Args{TargetVariable: "big_df", NoDisplay: true},
		},
		{
			name:           "short suppression flag",
			give:           "-q",
			expectedResult: &Args{TargetVariable: "_df", NoDisplay: true},
		},
		{
			name:           "flag after variable",
			give:           "big_df -q",
			expectedResult: &Args{TargetVariable: "big_df", NoDisplay: true},
		},
		{
			name:          "unrecognized flag",
			give:          "--verbose",
			expectedError: `unrecognized flag "--verbose"`,
		},
		{
			name:          "too many positional arguments",
			give:          "first second",
			expectedError: `unexpected argument "second"`,
		},
		{
			name:          "invalid variable name",
			give:          "1bad",
			expectedError: `invalid variable name "1bad"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseArgs(tc.give)
			if tc.expectedError != "" {
				assert.ErrorContains(t, err, tc.expectedError)
				return
			}

			assert.NilError(t, err)
			assert.DeepEqual(t, tc.expectedResult, parsed)
		})
	}
}

func TestSplitAssignment(t *testing.T) {
	type testCase struct {
		name             string
		give             string
		expectedVariable string
		expectedQuery    string
		expectedOk       bool
	}

	testCases := []testCase{
		{
			name:             "assignment form",
			give:             "result = SELECT count(*) FROM users",
			expectedVariable: "result",
			expectedQuery:    "SELECT count(*) FROM users",
			expectedOk:       true,
		},
		{
			name:       "plain query",
			give:       "SELECT count(*) FROM users",
			expectedOk: false,
		},
		{
			name:       "equals inside a condition is not an assignment",
			give:       "SELECT * FROM users WHERE id = 1",
			expectedOk: false,
		},
		{
			name:             "no spaces around equals",
			give:             "n=SELECT 1",
			expectedVariable: "n",
			expectedQuery:    "SELECT 1",
			expectedOk:       true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			variable, query, ok := SplitAssignment(tc.give)

			assert.Equal(t, tc.expectedOk, ok)
			if tc.expectedOk {
				assert.Equal(t, tc.expectedVariable, variable)
				assert.Equal(t, tc.expectedQuery, query)
			}
		})
	}
}
