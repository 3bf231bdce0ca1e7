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

package workflow

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	serverconst "github.com/asgardeo/cascade/internal/system/constants"
	"github.com/asgardeo/cascade/internal/system/error/apierror"
	"github.com/asgardeo/cascade/internal/system/error/serviceerror"
	"github.com/asgardeo/cascade/internal/system/log"
	sysutils "github.com/asgardeo/cascade/internal/system/utils"
	"github.com/asgardeo/cascade/internal/workflow/constants"
	"github.com/asgardeo/cascade/internal/workflow/model"
)

const workflowHandlerLoggerComponentName = "WorkflowHandler"

// workflowHandler is the handler for workflow management operations.
//
// Request fields are passed through to the service unescaped. Step names,
// tasks and conditions must round-trip exactly as submitted; escaping a
// condition string would change its meaning during evaluation.
type workflowHandler struct {
	workflowService WorkflowServiceInterface
}

// newWorkflowHandler creates a new instance of workflowHandler.
func newWorkflowHandler(workflowService WorkflowServiceInterface) *workflowHandler {
	return &workflowHandler{
		workflowService: workflowService,
	}
}

// HandleWorkflowPostRequest handles the workflow creation request.
func (h *workflowHandler) HandleWorkflowPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowHandlerLoggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.CreateWorkflowRequest](r)
	if err != nil {
		writeInvalidRequestFormat(w, logger)
		return
	}

	result, svcErr := h.workflowService.CreateWorkflow(*createRequest)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	if !writeJSONResponse(w, logger, http.StatusCreated, result) {
		return
	}

	logger.Debug("Successfully created workflow", log.String("workflowID", result.WorkflowID))
}

// HandleWorkflowListRequest handles the workflow list request.
func (h *workflowHandler) HandleWorkflowListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowHandlerLoggerComponentName))

	result, svcErr := h.workflowService.ListWorkflows()
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	if !writeJSONResponse(w, logger, http.StatusOK, result) {
		return
	}

	logger.Debug("Successfully listed workflows", log.Int("count", result.Count))
}

// HandleWorkflowGetRequest handles the workflow status request.
func (h *workflowHandler) HandleWorkflowGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowHandlerLoggerComponentName))

	workflowID, failed := extractWorkflowID(w, r, logger)
	if failed {
		return
	}

	result, svcErr := h.workflowService.GetWorkflowStatus(workflowID)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	if !writeJSONResponse(w, logger, http.StatusOK, result) {
		return
	}

	logger.Debug("Successfully retrieved workflow status", log.String("workflowID", workflowID))
}

// HandleWorkflowDeleteRequest handles the workflow cancellation request.
func (h *workflowHandler) HandleWorkflowDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowHandlerLoggerComponentName))

	workflowID, failed := extractWorkflowID(w, r, logger)
	if failed {
		return
	}

	_, svcErr := h.workflowService.CancelWorkflow(workflowID)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully cancelled workflow", log.String("workflowID", workflowID))
}

// HandleStepPostRequest handles the add step request.
func (h *workflowHandler) HandleStepPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowHandlerLoggerComponentName))

	workflowID, failed := extractWorkflowID(w, r, logger)
	if failed {
		return
	}

	addStepRequest, err := sysutils.DecodeJSONBody[model.AddStepRequest](r)
	if err != nil {
		writeInvalidRequestFormat(w, logger)
		return
	}

	result, svcErr := h.workflowService.AddStep(workflowID, addStepRequest)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	if !writeJSONResponse(w, logger, http.StatusCreated, result) {
		return
	}

	logger.Debug("Successfully added step to workflow",
		log.String("workflowID", workflowID), log.Int("totalSteps", result.TotalSteps))
}

// HandleStepDeleteRequest handles the remove step request.
func (h *workflowHandler) HandleStepDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowHandlerLoggerComponentName))

	workflowID, failed := extractWorkflowID(w, r, logger)
	if failed {
		return
	}
	stepName := r.PathValue("stepName")
	if stepName == "" {
		writeErrorResponse(w, logger, http.StatusBadRequest, constants.ErrorMissingStepName)
		return
	}

	result, svcErr := h.workflowService.RemoveStep(workflowID, stepName)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	if !writeJSONResponse(w, logger, http.StatusOK, result) {
		return
	}

	logger.Debug("Successfully removed step from workflow",
		log.String("workflowID", workflowID), log.Int("remainingSteps", result.RemainingSteps))
}

// HandleWorkflowExecuteRequest handles the workflow execution request.
// An empty request body is accepted and treated as an empty input payload.
func (h *workflowHandler) HandleWorkflowExecuteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowHandlerLoggerComponentName))

	workflowID, failed := extractWorkflowID(w, r, logger)
	if failed {
		return
	}

	executeRequest := model.ExecuteWorkflowRequest{}
	if err := json.NewDecoder(r.Body).Decode(&executeRequest); err != nil && !errors.Is(err, io.EOF) {
		writeInvalidRequestFormat(w, logger)
		return
	}

	result, svcErr := h.workflowService.ExecuteWorkflow(workflowID, executeRequest.Input)
	if svcErr != nil {
		handleError(w, logger, svcErr)
		return
	}

	if !writeJSONResponse(w, logger, http.StatusOK, result) {
		return
	}

	logger.Debug("Successfully executed workflow", log.String("workflowID", workflowID),
		log.String("executionID", result.ExecutionID))
}

// handleError handles service errors and converts them to appropriate HTTP responses.
func handleError(w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError) {
	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
		if svcErr.Code == constants.ErrorWorkflowNotFound.Code || svcErr.Code == constants.ErrorStepNotFound.Code {
			statusCode = http.StatusNotFound
		} else if svcErr.Code == constants.ErrorDuplicateStep.Code {
			statusCode = http.StatusConflict
		}
	} else {
		statusCode = http.StatusInternalServerError
	}

	writeErrorResponse(w, logger, statusCode, *svcErr)
}

// extractWorkflowID extracts and validates the workflow ID from the URL path.
func extractWorkflowID(w http.ResponseWriter, r *http.Request, logger *log.Logger) (string, bool) {
	workflowID := r.PathValue("id")
	if workflowID == "" {
		writeErrorResponse(w, logger, http.StatusBadRequest, constants.ErrorMissingWorkflowID)
		return "", true
	}
	return workflowID, false
}

func writeInvalidRequestFormat(w http.ResponseWriter, logger *log.Logger) {
	svcErr := constants.ErrorInvalidRequestFormat
	svcErr.ErrorDescription = "Failed to parse request body"
	writeErrorResponse(w, logger, http.StatusBadRequest, svcErr)
}

func writeErrorResponse(w http.ResponseWriter, logger *log.Logger, statusCode int,
	svcErr serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

func writeJSONResponse(w http.ResponseWriter, logger *log.Logger, statusCode int, payload interface{}) bool {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return false
	}
	return true
}
