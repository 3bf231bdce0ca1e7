/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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
	"fmt"
	"reflect"
	"strings"
)

// ParseStringArray parses a separated string into a slice of strings.
// Elements are trimmed of surrounding whitespace. An empty separator defaults to a comma.
func ParseStringArray(value string, sep string) []string {
	return ParseTypedStringArray[string](value, sep)
}

// ParseTypedStringArray parses a separated string into a slice of the given string type.
func ParseTypedStringArray[T ~string](value string, sep string) []T {
	if sep == "" {
		sep = ","
	}
	if value == "" {
		return []T{}
	}
	parts := strings.Split(value, sep)
	result := make([]T, 0, len(parts))
	for _, part := range parts {
		result = append(result, T(strings.TrimSpace(part)))
	}
	return result
}

// StringifyStringArray joins a slice of strings with the given separator.
// An empty separator defaults to a comma.
func StringifyStringArray(values []string, sep string) string {
	if sep == "" {
		sep = ","
	}
	return strings.Join(values, sep)
}

// ConvertInterfaceValueToString renders an arbitrary value as a string.
// Slices are rendered as comma-separated values and nil renders as an empty string.
func ConvertInterfaceValueToString(value interface{}) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if rv.Len() == 0 {
			return ""
		}
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, ConvertInterfaceValueToString(rv.Index(i).Interface()))
		}
		return strings.Join(parts, ",")
	}

	return fmt.Sprintf("%v", value)
}
