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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/cascade/internal/system/config"
	"github.com/asgardeo/cascade/internal/system/error/apierror"
	"github.com/asgardeo/cascade/internal/system/error/serviceerror"
	"github.com/asgardeo/cascade/internal/workflow/constants"
	"github.com/asgardeo/cascade/internal/workflow/model"
	"github.com/asgardeo/cascade/tests/mocks/workflowmock"
)

type WorkflowHandlerTestSuite struct {
	suite.Suite
	serviceMock *workflowmock.MockWorkflowService
	mux         *http.ServeMux
}

func TestWorkflowHandlerSuite(t *testing.T) {
	suite.Run(t, new(WorkflowHandlerTestSuite))
}

func (suite *WorkflowHandlerTestSuite) SetupSuite() {
	// Runtime config is consumed by the CORS middleware on every route.
	cfg := &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://localhost:9001"},
		},
	}
	config.ResetCascadeRuntime()
	err := config.InitializeCascadeRuntime("/test/cascade/home", cfg)
	if err != nil {
		suite.T().Fatal("Failed to initialize CascadeRuntime:", err)
	}
}

func (suite *WorkflowHandlerTestSuite) TearDownSuite() {
	config.ResetCascadeRuntime()
}

func (suite *WorkflowHandlerTestSuite) SetupTest() {
	suite.serviceMock = &workflowmock.MockWorkflowService{}
	suite.mux = http.NewServeMux()
	registerRoutes(suite.mux, newWorkflowHandler(suite.serviceMock))
}

func (suite *WorkflowHandlerTestSuite) serve(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	return rr
}

func (suite *WorkflowHandlerTestSuite) decodeErrorResponse(rr *httptest.ResponseRecorder) apierror.ErrorResponse {
	var errResp apierror.ErrorResponse
	require.NoError(suite.T(), json.NewDecoder(rr.Body).Decode(&errResp))
	return errResp
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowPostRequest() {
	var captured model.CreateWorkflowRequest
	suite.serviceMock.MockCreateWorkflow = func(request model.CreateWorkflowRequest) (*model.CreateWorkflowResult,
		*serviceerror.ServiceError) {
		captured = request
		return &model.CreateWorkflowResult{
			Success:    true,
			Message:    `Workflow "Deploy" created in sequential mode`,
			WorkflowID: "wf-1",
			Name:       "Deploy",
			Mode:       constants.WorkflowModeSequential,
		}, nil
	}

	rr := suite.serve(http.MethodPost, "/workflows", `{"name":"Deploy","mode":"sequential"}`)

	assert.Equal(suite.T(), http.StatusCreated, rr.Code)
	assert.Equal(suite.T(), "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "Deploy", captured.Name)

	var result model.CreateWorkflowResult
	require.NoError(suite.T(), json.NewDecoder(rr.Body).Decode(&result))
	assert.True(suite.T(), result.Success)
	assert.Equal(suite.T(), "wf-1", result.WorkflowID)
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowPostRequest_InvalidJSON() {
	rr := suite.serve(http.MethodPost, "/workflows", `{"name":`)

	assert.Equal(suite.T(), http.StatusBadRequest, rr.Code)
	errResp := suite.decodeErrorResponse(rr)
	assert.Equal(suite.T(), constants.ErrorInvalidRequestFormat.Code, errResp.Code)
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowPostRequest_ServiceErrors() {
	testCases := []struct {
		name           string
		svcErr         *serviceerror.ServiceError
		expectedStatus int
	}{
		{name: "MissingName", svcErr: &constants.ErrorMissingName, expectedStatus: http.StatusBadRequest},
		{name: "InvalidMode", svcErr: &constants.ErrorInvalidMode, expectedStatus: http.StatusBadRequest},
		{name: "ServerError", svcErr: &constants.ErrorInternalServerError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.serviceMock.MockCreateWorkflow = func(model.CreateWorkflowRequest) (*model.CreateWorkflowResult,
				*serviceerror.ServiceError) {
				return nil, tc.svcErr
			}

			rr := suite.serve(http.MethodPost, "/workflows", `{"name":"Deploy"}`)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			var errResp apierror.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
			assert.Equal(t, tc.svcErr.Code, errResp.Code)
		})
	}
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowListRequest() {
	suite.serviceMock.MockListWorkflows = func() (*model.ListWorkflowsResult, *serviceerror.ServiceError) {
		return &model.ListWorkflowsResult{
			Success:   true,
			Message:   "Found 1 workflows",
			Count:     1,
			Workflows: []model.WorkflowSummary{{ID: "wf-1", Name: "Deploy"}},
		}, nil
	}

	rr := suite.serve(http.MethodGet, "/workflows", "")

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	var result model.ListWorkflowsResult
	require.NoError(suite.T(), json.NewDecoder(rr.Body).Decode(&result))
	assert.Equal(suite.T(), 1, result.Count)
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowGetRequest() {
	suite.serviceMock.MockGetWorkflowStatus = func(workflowID string) (*model.WorkflowStatusResult,
		*serviceerror.ServiceError) {
		assert.Equal(suite.T(), "wf-1", workflowID)
		return &model.WorkflowStatusResult{Success: true, WorkflowID: workflowID, Name: "Deploy"}, nil
	}

	rr := suite.serve(http.MethodGet, "/workflows/wf-1", "")

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	var result model.WorkflowStatusResult
	require.NoError(suite.T(), json.NewDecoder(rr.Body).Decode(&result))
	assert.Equal(suite.T(), "wf-1", result.WorkflowID)
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowGetRequest_NotFound() {
	suite.serviceMock.MockGetWorkflowStatus = func(string) (*model.WorkflowStatusResult,
		*serviceerror.ServiceError) {
		return nil, &constants.ErrorWorkflowNotFound
	}

	rr := suite.serve(http.MethodGet, "/workflows/missing", "")

	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
	errResp := suite.decodeErrorResponse(rr)
	assert.Equal(suite.T(), constants.ErrorWorkflowNotFound.Code, errResp.Code)
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowDeleteRequest() {
	suite.serviceMock.MockCancelWorkflow = func(workflowID string) (*model.CancelWorkflowResult,
		*serviceerror.ServiceError) {
		assert.Equal(suite.T(), "wf-1", workflowID)
		return &model.CancelWorkflowResult{Success: true, WorkflowID: workflowID, Name: "Deploy"}, nil
	}

	rr := suite.serve(http.MethodDelete, "/workflows/wf-1", "")

	assert.Equal(suite.T(), http.StatusNoContent, rr.Code)
	assert.Empty(suite.T(), rr.Body.String())
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowDeleteRequest_NotFound() {
	suite.serviceMock.MockCancelWorkflow = func(string) (*model.CancelWorkflowResult,
		*serviceerror.ServiceError) {
		return nil, &constants.ErrorWorkflowNotFound
	}

	rr := suite.serve(http.MethodDelete, "/workflows/missing", "")

	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
}

func (suite *WorkflowHandlerTestSuite) TestHandleStepPostRequest() {
	suite.serviceMock.MockAddStep = func(workflowID string, request *model.AddStepRequest) (*model.AddStepResult,
		*serviceerror.ServiceError) {
		assert.Equal(suite.T(), "wf-1", workflowID)
		require.NotNil(suite.T(), request)
		assert.Equal(suite.T(), "build", request.Name)
		assert.Equal(suite.T(), []string{"setup"}, request.DependsOn)
		return &model.AddStepResult{
			Success:    true,
			WorkflowID: workflowID,
			StepName:   request.Name,
			TotalSteps: 2,
			Steps:      []string{"setup", "build"},
		}, nil
	}

	rr := suite.serve(http.MethodPost, "/workflows/wf-1/steps",
		`{"name":"build","agentType":"builder","dependsOn":["setup"]}`)

	assert.Equal(suite.T(), http.StatusCreated, rr.Code)
	var result model.AddStepResult
	require.NoError(suite.T(), json.NewDecoder(rr.Body).Decode(&result))
	assert.Equal(suite.T(), 2, result.TotalSteps)
}

func (suite *WorkflowHandlerTestSuite) TestHandleStepPostRequest_ServiceErrors() {
	testCases := []struct {
		name           string
		svcErr         *serviceerror.ServiceError
		expectedStatus int
	}{
		{name: "DuplicateStep", svcErr: &constants.ErrorDuplicateStep, expectedStatus: http.StatusConflict},
		{name: "InvalidDependency", svcErr: &constants.ErrorInvalidDependency, expectedStatus: http.StatusBadRequest},
		{name: "WorkflowNotFound", svcErr: &constants.ErrorWorkflowNotFound, expectedStatus: http.StatusNotFound},
		{name: "MissingStepName", svcErr: &constants.ErrorMissingStepName, expectedStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.serviceMock.MockAddStep = func(string, *model.AddStepRequest) (*model.AddStepResult,
				*serviceerror.ServiceError) {
				return nil, tc.svcErr
			}

			rr := suite.serve(http.MethodPost, "/workflows/wf-1/steps", `{"name":"build"}`)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			var errResp apierror.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
			assert.Equal(t, tc.svcErr.Code, errResp.Code)
		})
	}
}

func (suite *WorkflowHandlerTestSuite) TestHandleStepDeleteRequest() {
	suite.serviceMock.MockRemoveStep = func(workflowID, stepName string) (*model.RemoveStepResult,
		*serviceerror.ServiceError) {
		assert.Equal(suite.T(), "wf-1", workflowID)
		assert.Equal(suite.T(), "build", stepName)
		return &model.RemoveStepResult{
			Success:        true,
			WorkflowID:     workflowID,
			RemovedStep:    stepName,
			RemainingSteps: 0,
			Steps:          []string{},
		}, nil
	}

	rr := suite.serve(http.MethodDelete, "/workflows/wf-1/steps/build", "")

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	var result model.RemoveStepResult
	require.NoError(suite.T(), json.NewDecoder(rr.Body).Decode(&result))
	assert.Equal(suite.T(), "build", result.RemovedStep)
}

func (suite *WorkflowHandlerTestSuite) TestHandleStepDeleteRequest_StepNotFound() {
	suite.serviceMock.MockRemoveStep = func(string, string) (*model.RemoveStepResult,
		*serviceerror.ServiceError) {
		return nil, &constants.ErrorStepNotFound
	}

	rr := suite.serve(http.MethodDelete, "/workflows/wf-1/steps/missing", "")

	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
	errResp := suite.decodeErrorResponse(rr)
	assert.Equal(suite.T(), constants.ErrorStepNotFound.Code, errResp.Code)
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowExecuteRequest() {
	var captured map[string]interface{}
	suite.serviceMock.MockExecuteWorkflow = func(workflowID string, input map[string]interface{}) (
		*model.ExecuteWorkflowResult, *serviceerror.ServiceError) {
		assert.Equal(suite.T(), "wf-1", workflowID)
		captured = input
		return &model.ExecuteWorkflowResult{
			Success:       true,
			ExecutionID:   "exec-1",
			WorkflowID:    workflowID,
			Mode:          constants.WorkflowModeSequential,
			TotalSteps:    1,
			ExecutedSteps: 1,
			Trace:         []model.StepResult{},
		}, nil
	}

	rr := suite.serve(http.MethodPost, "/workflows/wf-1/execute", `{"input":{"env":"prod"}}`)

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Equal(suite.T(), map[string]interface{}{"env": "prod"}, captured)

	var result model.ExecuteWorkflowResult
	require.NoError(suite.T(), json.NewDecoder(rr.Body).Decode(&result))
	assert.Equal(suite.T(), "exec-1", result.ExecutionID)
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowExecuteRequest_EmptyBody() {
	called := false
	suite.serviceMock.MockExecuteWorkflow = func(workflowID string, input map[string]interface{}) (
		*model.ExecuteWorkflowResult, *serviceerror.ServiceError) {
		called = true
		assert.Nil(suite.T(), input)
		return &model.ExecuteWorkflowResult{Success: true, ExecutionID: "exec-1"}, nil
	}

	rr := suite.serve(http.MethodPost, "/workflows/wf-1/execute", "")

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.True(suite.T(), called, "Execution should proceed with an empty request body")
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowExecuteRequest_InvalidJSON() {
	rr := suite.serve(http.MethodPost, "/workflows/wf-1/execute", `{"input":`)

	assert.Equal(suite.T(), http.StatusBadRequest, rr.Code)
	errResp := suite.decodeErrorResponse(rr)
	assert.Equal(suite.T(), constants.ErrorInvalidRequestFormat.Code, errResp.Code)
}

func (suite *WorkflowHandlerTestSuite) TestHandleWorkflowExecuteRequest_ServiceErrors() {
	testCases := []struct {
		name           string
		svcErr         *serviceerror.ServiceError
		expectedStatus int
	}{
		{name: "NoSteps", svcErr: &constants.ErrorNoSteps, expectedStatus: http.StatusBadRequest},
		{name: "CircularDependency", svcErr: &constants.ErrorCircularDependency, expectedStatus: http.StatusBadRequest},
		{name: "WorkflowNotFound", svcErr: &constants.ErrorWorkflowNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.serviceMock.MockExecuteWorkflow = func(string, map[string]interface{}) (
				*model.ExecuteWorkflowResult, *serviceerror.ServiceError) {
				return nil, tc.svcErr
			}

			rr := suite.serve(http.MethodPost, "/workflows/wf-1/execute", `{}`)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			var errResp apierror.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
			assert.Equal(t, tc.svcErr.Code, errResp.Code)
		})
	}
}
