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

// Package condition evaluates workflow step conditions against execution input.
//
// The condition language is a small fixed set of string patterns, not a
// general expression parser: the literals "always" and "never", equality and
// inequality checks of the form `input.<field> == "<value>"` (single or
// triple operators, single or double quotes), and bare `input.<field>`
// truthiness checks. Any condition that matches none of the patterns
// evaluates to true, so a mistyped condition never blocks a step.
package condition

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/asgardeo/cascade/internal/system/utils"
)

var (
	comparisonPattern = regexp.MustCompile(`^input\.(\w+)\s*(===|!==|==|!=)\s*["']?([^"']*)["']?$`)
	fieldPattern      = regexp.MustCompile(`^input\.(\w+)$`)
)

// Evaluate resolves a step condition against the execution input. An empty
// condition always evaluates to true.
func Evaluate(cond string, input map[string]interface{}) bool {
	trimmed := strings.TrimSpace(cond)
	if trimmed == "" {
		return true
	}

	switch strings.ToLower(trimmed) {
	case "always":
		return true
	case "never":
		return false
	}

	if matches := comparisonPattern.FindStringSubmatch(trimmed); matches != nil {
		field, operator, literal := matches[1], matches[2], matches[3]
		value, exists := input[field]
		equal := exists && utils.ConvertInterfaceValueToString(value) == literal
		if operator == "!=" || operator == "!==" {
			return !equal
		}
		return equal
	}

	if matches := fieldPattern.FindStringSubmatch(trimmed); matches != nil {
		return isTruthy(input[matches[1]])
	}

	return true
}

// isTruthy reports whether a value counts as true: nil, false, empty strings,
// numeric zero, and empty slices or maps are falsy, everything else is truthy.
func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return reflected.Len() > 0
	default:
		return true
	}
}
