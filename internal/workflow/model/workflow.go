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

// Package model defines the data structures for workflow management and execution.
package model

import (
	"time"

	"github.com/asgardeo/cascade/internal/workflow/constants"
)

// Step represents a unit of work within a workflow.
type Step struct {
	Name      string    `json:"name"`
	AgentType string    `json:"agentType"`
	Task      string    `json:"task,omitempty"`
	DependsOn []string  `json:"dependsOn,omitempty"`
	Condition string    `json:"condition,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}

// Workflow represents a named collection of steps with an execution mode.
// Step order in the slice is the catalog insertion order.
type Workflow struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Mode        constants.WorkflowMode `json:"mode"`
	Steps       []Step                 `json:"steps"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// StepResult represents one entry in an execution trace.
//
// Input holds the payload the step received: the caller input, or in
// sequential mode the output of the preceding step. Output is set only for
// completed steps. ParallelGroup is set in parallel mode (1-based level
// number). Condition and ConditionMet are set in conditional mode.
type StepResult struct {
	StepName      string               `json:"stepName"`
	AgentType     string               `json:"agentType"`
	Task          string               `json:"task,omitempty"`
	Order         int                  `json:"order"`
	Status        constants.StepStatus `json:"status"`
	Input         interface{}          `json:"input,omitempty"`
	Output        *string              `json:"output,omitempty"`
	ParallelGroup *int                 `json:"parallelGroup,omitempty"`
	Condition     string               `json:"condition,omitempty"`
	ConditionMet  *bool                `json:"conditionMet,omitempty"`
}

// ExecutionRecord represents the immutable history entry produced by one
// execution request. Mode is a snapshot of the workflow mode at execution time.
type ExecutionRecord struct {
	ExecutionID   string                 `json:"executionId"`
	WorkflowID    string                 `json:"workflowId"`
	WorkflowName  string                 `json:"workflowName"`
	Mode          constants.WorkflowMode `json:"mode"`
	StartedAt     time.Time              `json:"startedAt"`
	CompletedAt   time.Time              `json:"completedAt"`
	TotalSteps    int                    `json:"totalSteps"`
	ExecutedSteps int                    `json:"executedSteps"`
	SkippedSteps  int                    `json:"skippedSteps"`
	Input         map[string]interface{} `json:"input,omitempty"`
	Trace         []StepResult           `json:"trace"`
}
