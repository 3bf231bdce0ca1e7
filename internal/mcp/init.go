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

// Package mcp exposes the workflow actions as MCP tools over SSE.
package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/asgardeo/cascade/internal/system/log"
	"github.com/asgardeo/cascade/internal/workflow"
)

const (
	serverName      = "Cascade Workflow Orchestrator"
	serverVersion   = "1.0.0"
	defaultBasePath = "/mcp"
)

// Initialize creates the MCP tool server and mounts its SSE endpoints on the
// given mux. The caller decides, based on configuration, whether to mount the
// surface at all.
func Initialize(mux *http.ServeMux, workflowService workflow.WorkflowServiceInterface,
	basePath string) *server.MCPServer {
	if basePath == "" {
		basePath = defaultBasePath
	}

	toolServer := newWorkflowToolServer(workflowService)
	sseServer := server.NewSSEServer(toolServer.mcpServer, server.WithStaticBasePath(basePath))

	mux.HandleFunc(basePath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			sseServer.ServeHTTP(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	mux.HandleFunc(basePath+"/sse", sseServer.ServeHTTP)
	mux.HandleFunc(basePath+"/message", sseServer.ServeHTTP)

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, mcpLoggerComponentName))
	logger.Info("MCP tool server mounted", log.String("basePath", basePath))

	return toolServer.mcpServer
}
