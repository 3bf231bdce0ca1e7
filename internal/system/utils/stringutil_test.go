/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type StringUtilTestSuite struct {
	suite.Suite
}

func TestStringUtilSuite(t *testing.T) {
	suite.Run(t, new(StringUtilTestSuite))
}

func (suite *StringUtilTestSuite) TestParseStringArray() {
	testCases := []struct {
		name     string
		input    string
		sep      string
		expected []string
	}{
		{
			name:     "EmptyString",
			input:    "",
			sep:      ",",
			expected: []string{},
		},
		{
			name:     "SingleStepName",
			input:    "build",
			sep:      ",",
			expected: []string{"build"},
		},
		{
			name:     "DependencyList",
			input:    "build,test,package",
			sep:      ",",
			expected: []string{"build", "test", "package"},
		},
		{
			name:     "DependencyListWithSpaces",
			input:    "build, test , package",
			sep:      ",",
			expected: []string{"build", "test", "package"},
		},
		{
			name:     "CustomSeparator",
			input:    "staging|production",
			sep:      "|",
			expected: []string{"staging", "production"},
		},
		{
			name:     "EmptySeparatorDefaultsToComma",
			input:    "lint,vet",
			sep:      "",
			expected: []string{"lint", "vet"},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			result := ParseStringArray(tc.input, tc.sep)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func (suite *StringUtilTestSuite) TestParseTypedStringArray() {
	type agentType string

	result := ParseTypedStringArray[agentType]("default, reviewer", ",")
	assert.Equal(suite.T(), []agentType{"default", "reviewer"}, result)

	empty := ParseTypedStringArray[agentType]("", ",")
	assert.Equal(suite.T(), []agentType{}, empty)
}

func (suite *StringUtilTestSuite) TestStringifyStringArray() {
	testCases := []struct {
		name     string
		input    []string
		sep      string
		expected string
	}{
		{
			name:     "EmptySlice",
			input:    []string{},
			sep:      ",",
			expected: "",
		},
		{
			name:     "SingleElement",
			input:    []string{"deploy"},
			sep:      ",",
			expected: "deploy",
		},
		{
			name:     "ExecutionOrder",
			input:    []string{"build", "test", "deploy"},
			sep:      ", ",
			expected: "build, test, deploy",
		},
		{
			name:     "EmptySeparatorDefaultsToComma",
			input:    []string{"build", "test"},
			sep:      "",
			expected: "build,test",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			result := StringifyStringArray(tc.input, tc.sep)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func (suite *StringUtilTestSuite) TestParseStringifyRoundTrip() {
	original := "build,test,deploy"
	parsed := ParseStringArray(original, ",")
	assert.Equal(suite.T(), original, StringifyStringArray(parsed, ","))
}

type testStringer struct{}

func (s testStringer) String() string {
	return "test-stringer"
}

func (suite *StringUtilTestSuite) TestConvertInterfaceValueToString() {
	testCases := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{
			name:     "NilValue",
			input:    nil,
			expected: "",
		},
		{
			name:     "StringValue",
			input:    "production",
			expected: "production",
		},
		{
			name:     "BoolValue",
			input:    true,
			expected: "true",
		},
		{
			name:     "IntValue",
			input:    42,
			expected: "42",
		},
		{
			name:     "FloatValue",
			input:    float64(3.14),
			expected: "3.14",
		},
		{
			name:     "ByteSlice",
			input:    []byte("release"),
			expected: "release",
		},
		{
			name:     "StringSlice",
			input:    []string{"us-east", "eu-west"},
			expected: "us-east,eu-west",
		},
		{
			name:     "IntSlice",
			input:    []int{1, 2, 3},
			expected: "1,2,3",
		},
		{
			name:     "MixedSlice",
			input:    []interface{}{1, "two", true},
			expected: "1,two,true",
		},
		{
			name:     "EmptySlice",
			input:    []string{},
			expected: "",
		},
		{
			name:     "NilSlice",
			input:    ([]string)(nil),
			expected: "",
		},
		{
			name:     "StringerValue",
			input:    testStringer{},
			expected: "test-stringer",
		},
		{
			name:     "StructValue",
			input:    struct{ X int }{X: 5},
			expected: "{5}",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			result := ConvertInterfaceValueToString(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}
