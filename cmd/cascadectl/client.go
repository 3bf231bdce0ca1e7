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

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	serverconst "github.com/asgardeo/cascade/internal/system/constants"
	"github.com/asgardeo/cascade/internal/system/error/apierror"
	httpservice "github.com/asgardeo/cascade/internal/system/http"
)

// apiClient wraps the outbound HTTP client service with the Cascade server base URL.
type apiClient struct {
	baseURL string
	client  httpservice.HTTPClientInterface
}

// newAPIClient creates an API client for the given base URL.
func newAPIClient(baseURL string, skipTLSVerify bool) *apiClient {
	client := httpservice.GetHTTPClient()
	if skipTLSVerify {
		client = httpservice.NewHTTPClientWithConfig(&http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402
			},
		})
	}

	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// get issues a GET request and prints the response envelope.
func (c *apiClient) get(apiPath string) error {
	resp, err := c.client.Get(c.baseURL + apiPath)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", c.baseURL, err)
	}
	return c.render(resp)
}

// post issues a POST request with a JSON payload and prints the response envelope.
func (c *apiClient) post(apiPath string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request payload: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+apiPath, serverconst.ContentTypeJSON, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", c.baseURL, err)
	}
	return c.render(resp)
}

// delete issues a DELETE request and prints the response envelope if one is returned.
func (c *apiClient) delete(apiPath string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+apiPath, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", c.baseURL, err)
	}
	return c.render(resp)
}

// render prints a successful response body to stdout, or converts an error
// response into a command error.
func (c *apiClient) render(resp *http.Response) error {
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp apierror.ErrorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr != nil || errResp.Code == "" {
			return fmt.Errorf("request failed with status %s", resp.Status)
		}
		return fmt.Errorf("%s (%s): %s", errResp.Code, resp.Status, errResp.Description)
	}

	if len(body) == 0 {
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return nil
	}
	fmt.Println(pretty.String())

	return nil
}
