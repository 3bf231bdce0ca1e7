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
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HTTPUtilTestSuite struct {
	suite.Suite
}

func TestHTTPUtilSuite(t *testing.T) {
	suite.Run(t, new(HTTPUtilTestSuite))
}

func (suite *HTTPUtilTestSuite) TestParseURL() {
	testCases := []struct {
		name        string
		url         string
		expectError bool
	}{
		{
			name:        "ValidURL",
			url:         "https://example.com/path?query=value",
			expectError: false,
		},
		{
			name:        "ValidURLWithPort",
			url:         "http://localhost:8080/api",
			expectError: false,
		},
		{
			name:        "InvalidURL",
			url:         "://invalid-url",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			parsedURL, err := ParseURL(tc.url)

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, parsedURL)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, parsedURL)
				assert.Equal(t, tc.url, parsedURL.String())
			}
		})
	}
}

type testStruct struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBody() {
	testCases := []struct {
		name        string
		jsonBody    string
		expected    testStruct
		expectError bool
	}{
		{
			name:        "ValidJSON",
			jsonBody:    `{"name":"test","value":123}`,
			expected:    testStruct{Name: "test", Value: 123},
			expectError: false,
		},
		{
			name:        "EmptyJSON",
			jsonBody:    `{}`,
			expected:    testStruct{},
			expectError: false,
		},
		{
			name:        "InvalidJSON",
			jsonBody:    `{"name":"test","value":}`,
			expected:    testStruct{},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.jsonBody))
			req.Header.Set("Content-Type", "application/json")

			result, err := DecodeJSONBody[testStruct](req)

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tc.expected.Name, result.Name)
				assert.Equal(t, tc.expected.Value, result.Value)
			}
		})
	}
}

func (suite *HTTPUtilTestSuite) TestSanitizeString() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "NormalString",
			input:    "Normal string",
			expected: "Normal string",
		},
		{
			name:     "StringWithHTML",
			input:    "String with <script>alert('XSS')</script> HTML",
			expected: "String with &lt;script&gt;alert(&#39;XSS&#39;)&lt;/script&gt; HTML",
		},
		{
			name:     "StringWithControlChars",
			input:    "String with control \x00 chars",
			expected: "String with control  chars",
		},
		{
			name:     "StringWithWhitespace",
			input:    "  Whitespace  ",
			expected: "Whitespace",
		},
		{
			name:     "EmptyString",
			input:    "",
			expected: "",
		},
		{
			name:     "OnlyWhitespace",
			input:    "   \t\n  ",
			expected: "",
		},
		{
			name:     "TabAndNewlinesPreserved",
			input:    "Line 1\nLine 2\tTabbed",
			expected: "Line 1\nLine 2\tTabbed",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			result := SanitizeString(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func (suite *HTTPUtilTestSuite) TestSanitizeStringSlice() {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "NilSlice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "EmptySlice",
			input:    []string{},
			expected: []string{},
		},
		{
			name: "SliceWithStringsNeedingSanitizing",
			input: []string{
				"  value with spaces  ",
				"<script>alert('XSS')</script>",
				"Control\x00Char",
			},
			expected: []string{
				"value with spaces",
				"&lt;script&gt;alert(&#39;XSS&#39;)&lt;/script&gt;",
				"ControlChar",
			},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			result := SanitizeStringSlice(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}
