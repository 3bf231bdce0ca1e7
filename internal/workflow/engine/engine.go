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

// Package engine runs workflows and produces execution traces.
//
// Execution is synchronous and single-threaded per request. Parallel mode
// labels independent steps with their dependency level for a caller's own
// downstream concurrency; the engine itself processes levels and their
// members in a fixed deterministic order.
package engine

import (
	"time"

	"github.com/asgardeo/cascade/internal/system/error/serviceerror"
	"github.com/asgardeo/cascade/internal/system/log"
	"github.com/asgardeo/cascade/internal/system/utils"
	"github.com/asgardeo/cascade/internal/workflow/condition"
	"github.com/asgardeo/cascade/internal/workflow/constants"
	"github.com/asgardeo/cascade/internal/workflow/graph"
	"github.com/asgardeo/cascade/internal/workflow/model"
)

const engineLoggerComponentName = "ExecutionEngine"

// ExecutionEngineInterface defines the interface for workflow execution.
type ExecutionEngineInterface interface {
	Execute(workflow model.Workflow, input map[string]interface{}) (*model.ExecutionRecord, *serviceerror.ServiceError)
}

// executionEngine is the default implementation of the ExecutionEngineInterface.
type executionEngine struct {
	executor StepExecutorInterface
}

// NewExecutionEngine creates a new execution engine with the given step executor.
func NewExecutionEngine(executor StepExecutorInterface) ExecutionEngineInterface {
	return &executionEngine{
		executor: executor,
	}
}

// Execute runs the given workflow snapshot against the caller input and
// returns the execution record. A cycle in the step graph aborts the whole
// execution; no record is produced.
func (ee *executionEngine) Execute(
	workflow model.Workflow,
	input map[string]interface{},
) (*model.ExecutionRecord, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, engineLoggerComponentName),
		log.String(log.LoggerKeyWorkflowID, workflow.ID))

	if len(workflow.Steps) == 0 {
		return nil, &constants.ErrorNoSteps
	}

	// Snapshot the input; execution records must not mutate after they are written.
	input = utils.DeepCopyMapOfAny(input)

	startedAt := time.Now()

	var trace []model.StepResult
	var svcErr *serviceerror.ServiceError
	switch workflow.Mode {
	case constants.WorkflowModeSequential:
		trace, svcErr = ee.runSequential(workflow, input)
	case constants.WorkflowModeParallel:
		trace, svcErr = ee.runParallel(workflow, input)
	case constants.WorkflowModeConditional:
		trace = ee.runConditional(workflow, input)
	default:
		return nil, &constants.ErrorInvalidMode
	}
	if svcErr != nil {
		logger.Error("Workflow execution aborted", log.String("errorCode", svcErr.Code))
		return nil, svcErr
	}

	executedSteps := 0
	skippedSteps := 0
	for _, result := range trace {
		if result.Status == constants.StepStatusCompleted {
			executedSteps++
		} else {
			skippedSteps++
		}
	}

	record := &model.ExecutionRecord{
		ExecutionID:   utils.GenerateUUID(),
		WorkflowID:    workflow.ID,
		WorkflowName:  workflow.Name,
		Mode:          workflow.Mode,
		StartedAt:     startedAt,
		CompletedAt:   time.Now(),
		TotalSteps:    len(workflow.Steps),
		ExecutedSteps: executedSteps,
		SkippedSteps:  skippedSteps,
		Input:         input,
		Trace:         trace,
	}

	logger.Debug("Workflow execution completed",
		log.String(log.LoggerKeyExecutionID, record.ExecutionID),
		log.String("mode", string(record.Mode)),
		log.Int("executedSteps", record.ExecutedSteps),
		log.Int("skippedSteps", record.SkippedSteps))
	return record, nil
}

// runSequential executes steps in topological order with a strictly linear
// hand-off: the first step receives the caller input, every later step
// receives the output of the immediately preceding step regardless of the
// dependency graph's shape.
func (ee *executionEngine) runSequential(
	workflow model.Workflow,
	input map[string]interface{},
) ([]model.StepResult, *serviceerror.ServiceError) {
	names, dependencies := stepGraph(workflow.Steps)
	order, err := graph.TopologicalSort(names, dependencies)
	if err != nil {
		return nil, &constants.ErrorCircularDependency
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, engineLoggerComponentName),
		log.String(log.LoggerKeyWorkflowID, workflow.ID))
	if logger.IsDebugEnabled() {
		logger.Debug("Resolved sequential order",
			log.String("order", utils.StringifyStringArray(utils.SanitizeStringSlice(order), ", ")))
	}

	stepsByName := indexSteps(workflow.Steps)
	trace := make([]model.StepResult, 0, len(order))
	var stepInput interface{} = input
	for i, name := range order {
		step := stepsByName[name]
		output := ee.executor.ExecuteStep(step, stepInput)
		trace = append(trace, model.StepResult{
			StepName:  step.Name,
			AgentType: step.AgentType,
			Task:      step.Task,
			Order:     i + 1,
			Status:    constants.StepStatusCompleted,
			Input:     stepInput,
			Output:    &output,
		})
		stepInput = output
	}

	return trace, nil
}

// runParallel executes steps level by level. Every step receives the original
// caller input and is labeled with its 1-based parallel group number.
func (ee *executionEngine) runParallel(
	workflow model.Workflow,
	input map[string]interface{},
) ([]model.StepResult, *serviceerror.ServiceError) {
	names, dependencies := stepGraph(workflow.Steps)
	levels, err := graph.ComputeParallelLevels(names, dependencies)
	if err != nil {
		return nil, &constants.ErrorCircularDependency
	}

	stepsByName := indexSteps(workflow.Steps)
	trace := make([]model.StepResult, 0, len(workflow.Steps))
	order := 0
	for levelIndex, level := range levels {
		for _, name := range level {
			step := stepsByName[name]
			output := ee.executor.ExecuteStep(step, input)
			parallelGroup := levelIndex + 1
			order++
			trace = append(trace, model.StepResult{
				StepName:      step.Name,
				AgentType:     step.AgentType,
				Task:          step.Task,
				Order:         order,
				Status:        constants.StepStatusCompleted,
				Input:         input,
				Output:        &output,
				ParallelGroup: &parallelGroup,
			})
		}
	}

	return trace, nil
}

// runConditional considers steps in catalog insertion order and gates each on
// its condition. Skipped steps are recorded without output.
func (ee *executionEngine) runConditional(
	workflow model.Workflow,
	input map[string]interface{},
) []model.StepResult {
	trace := make([]model.StepResult, 0, len(workflow.Steps))
	for i, step := range workflow.Steps {
		conditionMet := condition.Evaluate(step.Condition, input)
		result := model.StepResult{
			StepName:     step.Name,
			AgentType:    step.AgentType,
			Task:         step.Task,
			Order:        i + 1,
			Input:        input,
			Condition:    step.Condition,
			ConditionMet: &conditionMet,
		}
		if conditionMet {
			output := ee.executor.ExecuteStep(step, input)
			result.Status = constants.StepStatusCompleted
			result.Output = &output
		} else {
			result.Status = constants.StepStatusSkipped
		}
		trace = append(trace, result)
	}

	return trace
}

// stepGraph projects steps onto the node list and dependency map consumed by
// the graph utilities, preserving catalog insertion order.
func stepGraph(steps []model.Step) ([]string, map[string][]string) {
	names := make([]string, 0, len(steps))
	dependencies := make(map[string][]string, len(steps))
	for _, step := range steps {
		names = append(names, step.Name)
		dependencies[step.Name] = step.DependsOn
	}
	return names, dependencies
}

func indexSteps(steps []model.Step) map[string]model.Step {
	stepsByName := make(map[string]model.Step, len(steps))
	for _, step := range steps {
		stepsByName[step.Name] = step
	}
	return stepsByName
}
