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
	"net/http"

	"github.com/asgardeo/cascade/internal/mcp"
	"github.com/asgardeo/cascade/internal/system/config"
	"github.com/asgardeo/cascade/internal/system/healthcheck"
	"github.com/asgardeo/cascade/internal/workflow"
	"github.com/asgardeo/cascade/internal/workflow/engine"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, cfg *config.Config) {
	executionEngine := engine.NewExecutionEngine(engine.NewSimulatedStepExecutor())
	workflowService, checkers := workflow.Initialize(mux, executionEngine)

	_ = healthcheck.Initialize(mux, checkers...)

	if cfg.MCP.Enabled {
		_ = mcp.Initialize(mux, workflowService, cfg.MCP.BasePath)
	}
}
