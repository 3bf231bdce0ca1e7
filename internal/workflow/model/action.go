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

package model

import (
	"time"

	"github.com/asgardeo/cascade/internal/workflow/constants"
)

// CreateWorkflowRequest is the request payload for creating a workflow.
type CreateWorkflowRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Mode        string `json:"mode,omitempty"`
}

// AddStepRequest is the request payload for adding a step to a workflow.
type AddStepRequest struct {
	Name      string   `json:"name"`
	AgentType string   `json:"agentType,omitempty"`
	Task      string   `json:"task,omitempty"`
	DependsOn []string `json:"dependsOn,omitempty"`
	Condition string   `json:"condition,omitempty"`
}

// ExecuteWorkflowRequest is the request payload for executing a workflow.
type ExecuteWorkflowRequest struct {
	Input map[string]interface{} `json:"input,omitempty"`
}

// StepSummary is the step projection returned by catalog queries.
type StepSummary struct {
	Name      string   `json:"name"`
	AgentType string   `json:"agentType"`
	Task      string   `json:"task,omitempty"`
	DependsOn []string `json:"dependsOn,omitempty"`
	Condition string   `json:"condition,omitempty"`
}

// WorkflowSummary is the per-workflow projection returned by list queries.
type WorkflowSummary struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Mode           constants.WorkflowMode `json:"mode"`
	StepCount      int                    `json:"stepCount"`
	ExecutionCount int                    `json:"executionCount"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// LastExecutionSummary summarizes the most recent execution of a workflow.
type LastExecutionSummary struct {
	ExecutionID   string    `json:"executionId"`
	ExecutedSteps int       `json:"executedSteps"`
	SkippedSteps  int       `json:"skippedSteps"`
	StartedAt     time.Time `json:"startedAt"`
	CompletedAt   time.Time `json:"completedAt"`
}

// CreateWorkflowResult is the response payload of the create workflow action.
type CreateWorkflowResult struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	WorkflowID string                 `json:"workflowId"`
	Name       string                 `json:"name"`
	Mode       constants.WorkflowMode `json:"mode"`
}

// AddStepResult is the response payload of the add step action.
type AddStepResult struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	WorkflowID string   `json:"workflowId"`
	StepName   string   `json:"stepName"`
	TotalSteps int      `json:"totalSteps"`
	Steps      []string `json:"steps"`
}

// RemoveStepResult is the response payload of the remove step action.
type RemoveStepResult struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	WorkflowID     string   `json:"workflowId"`
	RemovedStep    string   `json:"removedStep"`
	RemainingSteps int      `json:"remainingSteps"`
	Steps          []string `json:"steps"`
}

// ExecuteWorkflowResult is the response payload of the execute workflow action.
type ExecuteWorkflowResult struct {
	Success       bool                   `json:"success"`
	Message       string                 `json:"message"`
	ExecutionID   string                 `json:"executionId"`
	WorkflowID    string                 `json:"workflowId"`
	Mode          constants.WorkflowMode `json:"mode"`
	TotalSteps    int                    `json:"totalSteps"`
	ExecutedSteps int                    `json:"executedSteps"`
	SkippedSteps  int                    `json:"skippedSteps"`
	Trace         []StepResult           `json:"trace"`
}

// WorkflowStatusResult is the response payload of the get status action.
type WorkflowStatusResult struct {
	Success        bool                   `json:"success"`
	Message        string                 `json:"message"`
	WorkflowID     string                 `json:"workflowId"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description,omitempty"`
	Mode           constants.WorkflowMode `json:"mode"`
	StepCount      int                    `json:"stepCount"`
	ExecutionCount int                    `json:"executionCount"`
	Steps          []StepSummary          `json:"steps"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	LastExecution  *LastExecutionSummary  `json:"lastExecution,omitempty"`
}

// ListWorkflowsResult is the response payload of the list workflows action.
type ListWorkflowsResult struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Count     int               `json:"count"`
	Workflows []WorkflowSummary `json:"workflows"`
}

// CancelWorkflowResult is the response payload of the cancel workflow action.
type CancelWorkflowResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	WorkflowID string `json:"workflowId"`
	Name       string `json:"name"`
}
