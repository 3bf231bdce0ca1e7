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

// Package constants defines constants for workflow management and execution.
package constants

// WorkflowMode defines the execution strategy of a workflow.
type WorkflowMode string

const (
	// WorkflowModeSequential executes steps one after another in dependency order.
	WorkflowModeSequential WorkflowMode = "sequential"
	// WorkflowModeParallel groups independent steps into parallel levels.
	WorkflowModeParallel WorkflowMode = "parallel"
	// WorkflowModeConditional gates each step on its condition.
	WorkflowModeConditional WorkflowMode = "conditional"
)

// StepStatus defines the status of a step within an execution trace.
type StepStatus string

const (
	// StepStatusCompleted indicates that the step was executed.
	StepStatusCompleted StepStatus = "completed"
	// StepStatusSkipped indicates that the step was skipped by its condition.
	StepStatusSkipped StepStatus = "skipped"
)

// DefaultAgentType is assigned to steps added without an agent type.
const DefaultAgentType = "default"
