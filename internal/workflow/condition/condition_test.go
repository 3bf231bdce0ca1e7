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

package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ConditionTestSuite struct {
	suite.Suite
}

func TestConditionSuite(t *testing.T) {
	suite.Run(t, new(ConditionTestSuite))
}

func (suite *ConditionTestSuite) TestEvaluate() {
	testCases := []struct {
		name      string
		condition string
		input     map[string]interface{}
		expected  bool
	}{
		{
			name:      "EmptyCondition",
			condition: "",
			input:     map[string]interface{}{"env": "prod"},
			expected:  true,
		},
		{
			name:      "BlankCondition",
			condition: "   ",
			input:     nil,
			expected:  true,
		},
		{
			name:      "AlwaysLiteral",
			condition: "always",
			input:     nil,
			expected:  true,
		},
		{
			name:      "AlwaysLiteralCaseInsensitive",
			condition: " ALWAYS ",
			input:     nil,
			expected:  true,
		},
		{
			name:      "NeverLiteral",
			condition: "never",
			input:     map[string]interface{}{"env": "prod"},
			expected:  false,
		},
		{
			name:      "NeverLiteralCaseInsensitive",
			condition: "Never",
			input:     nil,
			expected:  false,
		},
		{
			name:      "EqualityMatch",
			condition: `input.env == "prod"`,
			input:     map[string]interface{}{"env": "prod"},
			expected:  true,
		},
		{
			name:      "EqualityMismatch",
			condition: `input.env == "prod"`,
			input:     map[string]interface{}{"env": "staging"},
			expected:  false,
		},
		{
			name:      "StrictEqualityMatch",
			condition: `input.env === "prod"`,
			input:     map[string]interface{}{"env": "prod"},
			expected:  true,
		},
		{
			name:      "StrictEqualityMismatch",
			condition: `input.env === "prod"`,
			input:     map[string]interface{}{"env": "staging"},
			expected:  false,
		},
		{
			name:      "EqualitySingleQuotes",
			condition: `input.env == 'prod'`,
			input:     map[string]interface{}{"env": "prod"},
			expected:  true,
		},
		{
			name:      "EqualityUnquotedLiteral",
			condition: `input.env == prod`,
			input:     map[string]interface{}{"env": "prod"},
			expected:  true,
		},
		{
			name:      "EqualityAgainstMissingField",
			condition: `input.env == "prod"`,
			input:     map[string]interface{}{},
			expected:  false,
		},
		{
			name:      "EqualityNumericValue",
			condition: `input.count == "3"`,
			input:     map[string]interface{}{"count": 3},
			expected:  true,
		},
		{
			name:      "EqualityBooleanValue",
			condition: `input.enabled == "true"`,
			input:     map[string]interface{}{"enabled": true},
			expected:  true,
		},
		{
			name:      "InequalityMatch",
			condition: `input.env != "prod"`,
			input:     map[string]interface{}{"env": "staging"},
			expected:  true,
		},
		{
			name:      "InequalityMismatch",
			condition: `input.env != "prod"`,
			input:     map[string]interface{}{"env": "prod"},
			expected:  false,
		},
		{
			name:      "StrictInequalityMatch",
			condition: `input.env !== "prod"`,
			input:     map[string]interface{}{"env": "staging"},
			expected:  true,
		},
		{
			name:      "InequalityAgainstMissingField",
			condition: `input.env != "prod"`,
			input:     map[string]interface{}{},
			expected:  true,
		},
		{
			name:      "TruthyStringField",
			condition: "input.env",
			input:     map[string]interface{}{"env": "prod"},
			expected:  true,
		},
		{
			name:      "FalsyEmptyStringField",
			condition: "input.env",
			input:     map[string]interface{}{"env": ""},
			expected:  false,
		},
		{
			name:      "FalsyMissingField",
			condition: "input.env",
			input:     map[string]interface{}{},
			expected:  false,
		},
		{
			name:      "TruthyBooleanField",
			condition: "input.enabled",
			input:     map[string]interface{}{"enabled": true},
			expected:  true,
		},
		{
			name:      "FalsyBooleanField",
			condition: "input.enabled",
			input:     map[string]interface{}{"enabled": false},
			expected:  false,
		},
		{
			name:      "FalsyZeroField",
			condition: "input.count",
			input:     map[string]interface{}{"count": 0},
			expected:  false,
		},
		{
			name:      "FalsyFloatZeroField",
			condition: "input.count",
			input:     map[string]interface{}{"count": 0.0},
			expected:  false,
		},
		{
			name:      "TruthyNumberField",
			condition: "input.count",
			input:     map[string]interface{}{"count": 7},
			expected:  true,
		},
		{
			name:      "TruthyNonEmptySliceField",
			condition: "input.items",
			input:     map[string]interface{}{"items": []interface{}{"a"}},
			expected:  true,
		},
		{
			name:      "FalsyEmptySliceField",
			condition: "input.items",
			input:     map[string]interface{}{"items": []interface{}{}},
			expected:  false,
		},
		{
			name:      "FalsyEmptyMapField",
			condition: "input.meta",
			input:     map[string]interface{}{"meta": map[string]interface{}{}},
			expected:  false,
		},
		{
			name:      "FalsyNilField",
			condition: "input.env",
			input:     map[string]interface{}{"env": nil},
			expected:  false,
		},
		{
			name:      "UnrecognizedConditionDefaultsToTrue",
			condition: "when the moon is full",
			input:     map[string]interface{}{},
			expected:  true,
		},
		{
			name:      "UnrecognizedOperatorDefaultsToTrue",
			condition: `input.count > "3"`,
			input:     map[string]interface{}{"count": 1},
			expected:  true,
		},
		{
			name:      "MissingInputPrefixDefaultsToTrue",
			condition: `env == "prod"`,
			input:     map[string]interface{}{"env": "staging"},
			expected:  true,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Evaluate(tc.condition, tc.input))
		})
	}
}
