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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"html"
	"net/http"
	"net/url"
	"strings"
	"unicode"
)

// DecodeJSONBody decodes the JSON body of an HTTP request into the given type.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	var decoded T
	if err := json.NewDecoder(r.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	return &decoded, nil
}

// ParseURL parses the given URL string and returns a URL object.
func ParseURL(urlStr string) (*url.URL, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, err
	}
	return parsedURL, nil
}

// SanitizeString trims the string and escapes characters unsafe for logging or output.
// Tabs and newlines inside the string are preserved; other control characters are removed.
func SanitizeString(input string) string {
	sanitized := strings.TrimSpace(input)
	sanitized = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, sanitized)
	return html.EscapeString(sanitized)
}

// SanitizeStringSlice sanitizes each element of the given string slice.
func SanitizeStringSlice(input []string) []string {
	if input == nil {
		return nil
	}
	sanitized := make([]string, 0, len(input))
	for _, value := range input {
		sanitized = append(sanitized, SanitizeString(value))
	}
	return sanitized
}
