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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asgardeo/cascade/internal/system/error/serviceerror"
	"github.com/asgardeo/cascade/internal/system/log"
	"github.com/asgardeo/cascade/internal/system/utils"
	"github.com/asgardeo/cascade/internal/workflow/constants"
	"github.com/asgardeo/cascade/internal/workflow/engine"
	"github.com/asgardeo/cascade/internal/workflow/model"
)

const workflowLoggerComponentName = "WorkflowService"

// WorkflowServiceInterface defines the service interface for workflow management operations.
type WorkflowServiceInterface interface {
	CreateWorkflow(request model.CreateWorkflowRequest) (*model.CreateWorkflowResult, *serviceerror.ServiceError)
	AddStep(workflowID string, request *model.AddStepRequest) (*model.AddStepResult, *serviceerror.ServiceError)
	RemoveStep(workflowID, stepName string) (*model.RemoveStepResult, *serviceerror.ServiceError)
	ExecuteWorkflow(workflowID string, input map[string]interface{}) (*model.ExecuteWorkflowResult,
		*serviceerror.ServiceError)
	GetWorkflowStatus(workflowID string) (*model.WorkflowStatusResult, *serviceerror.ServiceError)
	ListWorkflows() (*model.ListWorkflowsResult, *serviceerror.ServiceError)
	CancelWorkflow(workflowID string) (*model.CancelWorkflowResult, *serviceerror.ServiceError)
	Reset()
}

// workflowService is the default implementation of the WorkflowServiceInterface.
type workflowService struct {
	store           *workflowStore
	executionEngine engine.ExecutionEngineInterface
}

// newWorkflowService creates a new workflow service.
func newWorkflowService(store *workflowStore, executionEngine engine.ExecutionEngineInterface) WorkflowServiceInterface {
	return &workflowService{
		store:           store,
		executionEngine: executionEngine,
	}
}

// CreateWorkflow registers a new workflow definition with no steps.
func (ws *workflowService) CreateWorkflow(request model.CreateWorkflowRequest) (*model.CreateWorkflowResult,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowLoggerComponentName))

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, &constants.ErrorMissingName
	}
	mode, ok := resolveMode(request.Mode)
	if !ok {
		return nil, &constants.ErrorInvalidMode
	}

	now := time.Now()
	workflow := model.Workflow{
		ID:          utils.GenerateUUID(),
		Name:        name,
		Description: strings.TrimSpace(request.Description),
		Mode:        mode,
		Steps:       []model.Step{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ws.store.CreateWorkflow(workflow)

	logger.Debug("Workflow created", log.String("workflowID", workflow.ID),
		log.String("name", utils.SanitizeString(name)), log.String("mode", string(mode)))

	return &model.CreateWorkflowResult{
		Success:    true,
		Message:    fmt.Sprintf("Workflow %q created in %s mode", name, mode),
		WorkflowID: workflow.ID,
		Name:       name,
		Mode:       mode,
	}, nil
}

// AddStep appends a step to an existing workflow.
func (ws *workflowService) AddStep(workflowID string, request *model.AddStepRequest) (*model.AddStepResult,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowLoggerComponentName))

	workflowID = strings.TrimSpace(workflowID)
	if workflowID == "" {
		return nil, &constants.ErrorMissingWorkflowID
	}
	if request == nil {
		return nil, &constants.ErrorMissingStep
	}
	stepName := strings.TrimSpace(request.Name)
	if stepName == "" {
		return nil, &constants.ErrorMissingStepName
	}

	step := model.Step{
		Name:      stepName,
		AgentType: strings.TrimSpace(request.AgentType),
		Task:      strings.TrimSpace(request.Task),
		DependsOn: request.DependsOn,
		Condition: strings.TrimSpace(request.Condition),
	}
	steps, err := ws.store.AddStep(workflowID, step)
	if err != nil {
		return nil, mapStoreError(err)
	}

	logger.Debug("Step added to workflow", log.String("workflowID", workflowID),
		log.String("stepName", utils.SanitizeString(stepName)), log.Int("totalSteps", len(steps)))

	return &model.AddStepResult{
		Success:    true,
		Message:    fmt.Sprintf("Step %q added to workflow", stepName),
		WorkflowID: workflowID,
		StepName:   stepName,
		TotalSteps: len(steps),
		Steps:      steps,
	}, nil
}

// RemoveStep deletes a step from a workflow. References to the removed step
// are pruned from the dependsOn lists of the remaining steps.
func (ws *workflowService) RemoveStep(workflowID, stepName string) (*model.RemoveStepResult,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowLoggerComponentName))

	workflowID = strings.TrimSpace(workflowID)
	if workflowID == "" {
		return nil, &constants.ErrorMissingWorkflowID
	}
	stepName = strings.TrimSpace(stepName)
	if stepName == "" {
		return nil, &constants.ErrorMissingStepName
	}

	removed, steps, err := ws.store.RemoveStep(workflowID, stepName)
	if err != nil {
		return nil, mapStoreError(err)
	}

	logger.Debug("Step removed from workflow", log.String("workflowID", workflowID),
		log.String("stepName", utils.SanitizeString(removed.Name)), log.Int("remainingSteps", len(steps)))

	return &model.RemoveStepResult{
		Success:        true,
		Message:        fmt.Sprintf("Step %q removed from workflow", removed.Name),
		WorkflowID:     workflowID,
		RemovedStep:    removed.Name,
		RemainingSteps: len(steps),
		Steps:          steps,
	}, nil
}

// ExecuteWorkflow runs a workflow against the given input and records the
// execution in the workflow's history.
func (ws *workflowService) ExecuteWorkflow(workflowID string, input map[string]interface{}) (
	*model.ExecuteWorkflowResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowLoggerComponentName))

	workflowID = strings.TrimSpace(workflowID)
	if workflowID == "" {
		return nil, &constants.ErrorMissingWorkflowID
	}
	if input == nil {
		input = map[string]interface{}{}
	}

	workflow, err := ws.store.GetWorkflow(workflowID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	record, svcErr := ws.executionEngine.Execute(workflow, input)
	if svcErr != nil {
		return nil, svcErr
	}
	if err := ws.store.AddExecutionRecord(workflowID, *record); err != nil {
		return nil, mapStoreError(err)
	}

	logger.Debug("Workflow executed", log.String("workflowID", workflowID),
		log.String("executionID", record.ExecutionID), log.Int("executedSteps", record.ExecutedSteps),
		log.Int("skippedSteps", record.SkippedSteps))

	return &model.ExecuteWorkflowResult{
		Success:       true,
		Message:       fmt.Sprintf("Workflow executed: %d steps completed, %d skipped", record.ExecutedSteps, record.SkippedSteps),
		ExecutionID:   record.ExecutionID,
		WorkflowID:    workflowID,
		Mode:          record.Mode,
		TotalSteps:    record.TotalSteps,
		ExecutedSteps: record.ExecutedSteps,
		SkippedSteps:  record.SkippedSteps,
		Trace:         record.Trace,
	}, nil
}

// GetWorkflowStatus returns the definition and execution summary of a workflow.
func (ws *workflowService) GetWorkflowStatus(workflowID string) (*model.WorkflowStatusResult,
	*serviceerror.ServiceError) {
	workflowID = strings.TrimSpace(workflowID)
	if workflowID == "" {
		return nil, &constants.ErrorMissingWorkflowID
	}

	workflow, err := ws.store.GetWorkflow(workflowID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	records, err := ws.store.GetExecutionRecords(workflowID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	steps := make([]model.StepSummary, 0, len(workflow.Steps))
	for _, step := range workflow.Steps {
		steps = append(steps, model.StepSummary{
			Name:      step.Name,
			AgentType: step.AgentType,
			Task:      step.Task,
			DependsOn: step.DependsOn,
			Condition: step.Condition,
		})
	}

	var lastExecution *model.LastExecutionSummary
	if len(records) > 0 {
		last := records[len(records)-1]
		lastExecution = &model.LastExecutionSummary{
			ExecutionID:   last.ExecutionID,
			ExecutedSteps: last.ExecutedSteps,
			SkippedSteps:  last.SkippedSteps,
			StartedAt:     last.StartedAt,
			CompletedAt:   last.CompletedAt,
		}
	}

	return &model.WorkflowStatusResult{
		Success:        true,
		Message:        fmt.Sprintf("Workflow %q has %d steps and %d executions", workflow.Name, len(steps), len(records)),
		WorkflowID:     workflow.ID,
		Name:           workflow.Name,
		Description:    workflow.Description,
		Mode:           workflow.Mode,
		StepCount:      len(steps),
		ExecutionCount: len(records),
		Steps:          steps,
		CreatedAt:      workflow.CreatedAt,
		UpdatedAt:      workflow.UpdatedAt,
		LastExecution:  lastExecution,
	}, nil
}

// ListWorkflows returns a summary of every defined workflow. Listing never
// fails; an empty catalog yields an empty list.
func (ws *workflowService) ListWorkflows() (*model.ListWorkflowsResult, *serviceerror.ServiceError) {
	workflows := ws.store.ListWorkflows()

	summaries := make([]model.WorkflowSummary, 0, len(workflows))
	for _, workflow := range workflows {
		summaries = append(summaries, model.WorkflowSummary{
			ID:             workflow.ID,
			Name:           workflow.Name,
			Mode:           workflow.Mode,
			StepCount:      len(workflow.Steps),
			ExecutionCount: ws.store.ExecutionCount(workflow.ID),
			CreatedAt:      workflow.CreatedAt,
		})
	}

	return &model.ListWorkflowsResult{
		Success:   true,
		Message:   fmt.Sprintf("Found %d workflows", len(summaries)),
		Count:     len(summaries),
		Workflows: summaries,
	}, nil
}

// CancelWorkflow removes a workflow and its execution history.
func (ws *workflowService) CancelWorkflow(workflowID string) (*model.CancelWorkflowResult,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, workflowLoggerComponentName))

	workflowID = strings.TrimSpace(workflowID)
	if workflowID == "" {
		return nil, &constants.ErrorMissingWorkflowID
	}

	removed, err := ws.store.DeleteWorkflow(workflowID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	logger.Debug("Workflow cancelled", log.String("workflowID", workflowID),
		log.String("name", utils.SanitizeString(removed.Name)))

	return &model.CancelWorkflowResult{
		Success:    true,
		Message:    fmt.Sprintf("Workflow %q cancelled and removed", removed.Name),
		WorkflowID: workflowID,
		Name:       removed.Name,
	}, nil
}

// Reset clears all workflows and execution history. Intended for tests.
func (ws *workflowService) Reset() {
	ws.store.Reset()
}

// resolveMode normalizes the requested execution mode. An empty mode defaults
// to sequential.
func resolveMode(mode string) (constants.WorkflowMode, bool) {
	switch constants.WorkflowMode(strings.ToLower(strings.TrimSpace(mode))) {
	case constants.WorkflowMode(""):
		return constants.WorkflowModeSequential, true
	case constants.WorkflowModeSequential:
		return constants.WorkflowModeSequential, true
	case constants.WorkflowModeParallel:
		return constants.WorkflowModeParallel, true
	case constants.WorkflowModeConditional:
		return constants.WorkflowModeConditional, true
	default:
		return "", false
	}
}

func mapStoreError(err error) *serviceerror.ServiceError {
	switch {
	case errors.Is(err, errWorkflowNotFound):
		return &constants.ErrorWorkflowNotFound
	case errors.Is(err, errDuplicateStep):
		return &constants.ErrorDuplicateStep
	case errors.Is(err, errStepNotFound):
		return &constants.ErrorStepNotFound
	case errors.Is(err, errUnknownDependency):
		return &constants.ErrorInvalidDependency
	default:
		return &constants.ErrorInternalServerError
	}
}
