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

// Package workflowmock provides mock implementations of workflow interfaces for testing.
package workflowmock

import (
	"github.com/asgardeo/cascade/internal/system/error/serviceerror"
	"github.com/asgardeo/cascade/internal/workflow/model"
)

// MockWorkflowService is a mock implementation of the WorkflowServiceInterface.
type MockWorkflowService struct {
	// MockCreateWorkflow defines the behavior for the CreateWorkflow method.
	MockCreateWorkflow func(request model.CreateWorkflowRequest) (*model.CreateWorkflowResult,
		*serviceerror.ServiceError)

	// MockAddStep defines the behavior for the AddStep method.
	MockAddStep func(workflowID string, request *model.AddStepRequest) (*model.AddStepResult,
		*serviceerror.ServiceError)

	// MockRemoveStep defines the behavior for the RemoveStep method.
	MockRemoveStep func(workflowID, stepName string) (*model.RemoveStepResult, *serviceerror.ServiceError)

	// MockExecuteWorkflow defines the behavior for the ExecuteWorkflow method.
	MockExecuteWorkflow func(workflowID string, input map[string]interface{}) (*model.ExecuteWorkflowResult,
		*serviceerror.ServiceError)

	// MockGetWorkflowStatus defines the behavior for the GetWorkflowStatus method.
	MockGetWorkflowStatus func(workflowID string) (*model.WorkflowStatusResult, *serviceerror.ServiceError)

	// MockListWorkflows defines the behavior for the ListWorkflows method.
	MockListWorkflows func() (*model.ListWorkflowsResult, *serviceerror.ServiceError)

	// MockCancelWorkflow defines the behavior for the CancelWorkflow method.
	MockCancelWorkflow func(workflowID string) (*model.CancelWorkflowResult, *serviceerror.ServiceError)

	// CreateWorkflowCalls tracks the arguments passed to CreateWorkflow.
	CreateWorkflowCalls []model.CreateWorkflowRequest

	// AddStepCalls tracks the arguments passed to AddStep.
	AddStepCalls []struct {
		WorkflowID string
		Request    *model.AddStepRequest
	}

	// RemoveStepCalls tracks the arguments passed to RemoveStep.
	RemoveStepCalls []struct {
		WorkflowID string
		StepName   string
	}

	// ExecuteWorkflowCalls tracks the arguments passed to ExecuteWorkflow.
	ExecuteWorkflowCalls []struct {
		WorkflowID string
		Input      map[string]interface{}
	}

	// GetWorkflowStatusCalls tracks the arguments passed to GetWorkflowStatus.
	GetWorkflowStatusCalls []string

	// ListWorkflowsCalls tracks the calls to ListWorkflows.
	ListWorkflowsCalls int

	// CancelWorkflowCalls tracks the arguments passed to CancelWorkflow.
	CancelWorkflowCalls []string

	// ResetCalls tracks the calls to Reset.
	ResetCalls int
}

// CreateWorkflow mocks the CreateWorkflow method of the WorkflowServiceInterface.
func (m *MockWorkflowService) CreateWorkflow(request model.CreateWorkflowRequest) (*model.CreateWorkflowResult,
	*serviceerror.ServiceError) {
	m.CreateWorkflowCalls = append(m.CreateWorkflowCalls, request)

	if m.MockCreateWorkflow != nil {
		return m.MockCreateWorkflow(request)
	}
	return &model.CreateWorkflowResult{Success: true}, nil
}

// AddStep mocks the AddStep method of the WorkflowServiceInterface.
func (m *MockWorkflowService) AddStep(workflowID string, request *model.AddStepRequest) (*model.AddStepResult,
	*serviceerror.ServiceError) {
	m.AddStepCalls = append(m.AddStepCalls, struct {
		WorkflowID string
		Request    *model.AddStepRequest
	}{workflowID, request})

	if m.MockAddStep != nil {
		return m.MockAddStep(workflowID, request)
	}
	return &model.AddStepResult{Success: true}, nil
}

// RemoveStep mocks the RemoveStep method of the WorkflowServiceInterface.
func (m *MockWorkflowService) RemoveStep(workflowID, stepName string) (*model.RemoveStepResult,
	*serviceerror.ServiceError) {
	m.RemoveStepCalls = append(m.RemoveStepCalls, struct {
		WorkflowID string
		StepName   string
	}{workflowID, stepName})

	if m.MockRemoveStep != nil {
		return m.MockRemoveStep(workflowID, stepName)
	}
	return &model.RemoveStepResult{Success: true}, nil
}

// ExecuteWorkflow mocks the ExecuteWorkflow method of the WorkflowServiceInterface.
func (m *MockWorkflowService) ExecuteWorkflow(workflowID string, input map[string]interface{}) (
	*model.ExecuteWorkflowResult, *serviceerror.ServiceError) {
	m.ExecuteWorkflowCalls = append(m.ExecuteWorkflowCalls, struct {
		WorkflowID string
		Input      map[string]interface{}
	}{workflowID, input})

	if m.MockExecuteWorkflow != nil {
		return m.MockExecuteWorkflow(workflowID, input)
	}
	return &model.ExecuteWorkflowResult{Success: true}, nil
}

// GetWorkflowStatus mocks the GetWorkflowStatus method of the WorkflowServiceInterface.
func (m *MockWorkflowService) GetWorkflowStatus(workflowID string) (*model.WorkflowStatusResult,
	*serviceerror.ServiceError) {
	m.GetWorkflowStatusCalls = append(m.GetWorkflowStatusCalls, workflowID)

	if m.MockGetWorkflowStatus != nil {
		return m.MockGetWorkflowStatus(workflowID)
	}
	return &model.WorkflowStatusResult{Success: true}, nil
}

// ListWorkflows mocks the ListWorkflows method of the WorkflowServiceInterface.
func (m *MockWorkflowService) ListWorkflows() (*model.ListWorkflowsResult, *serviceerror.ServiceError) {
	m.ListWorkflowsCalls++

	if m.MockListWorkflows != nil {
		return m.MockListWorkflows()
	}
	return &model.ListWorkflowsResult{Success: true, Workflows: []model.WorkflowSummary{}}, nil
}

// CancelWorkflow mocks the CancelWorkflow method of the WorkflowServiceInterface.
func (m *MockWorkflowService) CancelWorkflow(workflowID string) (*model.CancelWorkflowResult,
	*serviceerror.ServiceError) {
	m.CancelWorkflowCalls = append(m.CancelWorkflowCalls, workflowID)

	if m.MockCancelWorkflow != nil {
		return m.MockCancelWorkflow(workflowID)
	}
	return &model.CancelWorkflowResult{Success: true}, nil
}

// Reset mocks the Reset method of the WorkflowServiceInterface.
func (m *MockWorkflowService) Reset() {
	m.ResetCalls++
}
