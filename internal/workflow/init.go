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

// Package workflow provides workflow definition management and execution.
package workflow

import (
	"net/http"

	"github.com/asgardeo/cascade/internal/system/healthcheck"
	"github.com/asgardeo/cascade/internal/system/middleware"
	"github.com/asgardeo/cascade/internal/workflow/engine"
)

// Initialize initializes the workflow service and registers its routes.
// It returns the service together with the health checkers for the
// workflow catalog and the execution history.
func Initialize(mux *http.ServeMux, executionEngine engine.ExecutionEngineInterface) (
	WorkflowServiceInterface, []healthcheck.ServiceChecker) {
	store := newWorkflowStore()
	workflowService := newWorkflowService(store, executionEngine)
	workflowHandler := newWorkflowHandler(workflowService)
	registerRoutes(mux, workflowHandler)

	checkers := []healthcheck.ServiceChecker{
		newStoreChecker("WorkflowCatalog", store.CheckCatalogHealth),
		newStoreChecker("ExecutionHistory", store.CheckHistoryHealth),
	}
	return workflowService, checkers
}

// registerRoutes registers the routes for workflow management operations.
func registerRoutes(mux *http.ServeMux, workflowHandler *workflowHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /workflows",
		workflowHandler.HandleWorkflowPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /workflows",
		workflowHandler.HandleWorkflowListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /workflows",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /workflows/{id}",
		workflowHandler.HandleWorkflowGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /workflows/{id}",
		workflowHandler.HandleWorkflowDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /workflows/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /workflows/{id}/steps",
		workflowHandler.HandleStepPostRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /workflows/{id}/steps",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))

	opts4 := middleware.CORSOptions{
		AllowedMethods:   "DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("DELETE /workflows/{id}/steps/{stepName}",
		workflowHandler.HandleStepDeleteRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /workflows/{id}/steps/{stepName}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts4))

	mux.HandleFunc(middleware.WithCORS("POST /workflows/{id}/execute",
		workflowHandler.HandleWorkflowExecuteRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /workflows/{id}/execute",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))
}
