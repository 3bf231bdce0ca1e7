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
	"sync"
	"time"

	"github.com/asgardeo/cascade/internal/system/utils"
	"github.com/asgardeo/cascade/internal/workflow/constants"
	"github.com/asgardeo/cascade/internal/workflow/model"
)

var (
	errWorkflowNotFound  = errors.New("workflow not found")
	errDuplicateStep     = errors.New("step with the same name already exists")
	errStepNotFound      = errors.New("step not found")
	errUnknownDependency = errors.New("dependency references an unknown step")
)

// workflowStore is an in-memory store for workflow definitions and their
// execution history. Workflows are kept in creation order; execution records
// are append-only and removed together with their workflow.
type workflowStore struct {
	mu            sync.RWMutex
	workflows     map[string]*model.Workflow
	workflowOrder []string
	history       map[string][]model.ExecutionRecord
}

// newWorkflowStore creates a new empty workflow store.
func newWorkflowStore() *workflowStore {
	return &workflowStore{
		workflows:     make(map[string]*model.Workflow),
		workflowOrder: make([]string, 0),
		history:       make(map[string][]model.ExecutionRecord),
	}
}

// CreateWorkflow stores a new workflow definition.
func (s *workflowStore) CreateWorkflow(workflow model.Workflow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := copyWorkflow(workflow)
	s.workflows[workflow.ID] = &stored
	s.workflowOrder = append(s.workflowOrder, workflow.ID)
	s.history[workflow.ID] = []model.ExecutionRecord{}
}

// GetWorkflow retrieves a workflow by its ID.
func (s *workflowStore) GetWorkflow(workflowID string) (model.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workflow, exists := s.workflows[workflowID]
	if !exists {
		return model.Workflow{}, errWorkflowNotFound
	}
	return copyWorkflow(*workflow), nil
}

// ListWorkflows returns all stored workflows in creation order.
func (s *workflowStore) ListWorkflows() []model.Workflow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workflows := make([]model.Workflow, 0, len(s.workflowOrder))
	for _, workflowID := range s.workflowOrder {
		if workflow, exists := s.workflows[workflowID]; exists {
			workflows = append(workflows, copyWorkflow(*workflow))
		}
	}
	return workflows
}

// AddStep appends a step to a workflow and returns the resulting step names
// in order. The step name must be unique within the workflow and every
// dependency must reference a step that was added earlier.
func (s *workflowStore) AddStep(workflowID string, step model.Step) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workflow, exists := s.workflows[workflowID]
	if !exists {
		return nil, errWorkflowNotFound
	}

	existingSteps := make(map[string]bool, len(workflow.Steps))
	for _, existing := range workflow.Steps {
		existingSteps[existing.Name] = true
	}
	if existingSteps[step.Name] {
		return nil, errDuplicateStep
	}
	for _, dependency := range step.DependsOn {
		if !existingSteps[dependency] {
			return nil, errUnknownDependency
		}
	}

	if step.AgentType == "" {
		step.AgentType = constants.DefaultAgentType
	}
	step.DependsOn = utils.DeepCopyStringSlice(step.DependsOn)
	step.AddedAt = time.Now()

	workflow.Steps = append(workflow.Steps, step)
	workflow.UpdatedAt = time.Now()
	return stepNames(workflow.Steps), nil
}

// RemoveStep deletes a step from a workflow and prunes references to it from
// the dependsOn lists of the remaining steps. It returns the removed step and
// the remaining step names in order.
func (s *workflowStore) RemoveStep(workflowID, stepName string) (model.Step, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workflow, exists := s.workflows[workflowID]
	if !exists {
		return model.Step{}, nil, errWorkflowNotFound
	}

	stepIndex := -1
	for i, step := range workflow.Steps {
		if step.Name == stepName {
			stepIndex = i
			break
		}
	}
	if stepIndex == -1 {
		return model.Step{}, nil, errStepNotFound
	}

	removed := workflow.Steps[stepIndex]
	workflow.Steps = append(workflow.Steps[:stepIndex], workflow.Steps[stepIndex+1:]...)

	for i := range workflow.Steps {
		dependsOn := workflow.Steps[i].DependsOn
		if len(dependsOn) == 0 {
			continue
		}
		pruned := make([]string, 0, len(dependsOn))
		for _, dependency := range dependsOn {
			if dependency != stepName {
				pruned = append(pruned, dependency)
			}
		}
		workflow.Steps[i].DependsOn = pruned
	}

	workflow.UpdatedAt = time.Now()
	return removed, stepNames(workflow.Steps), nil
}

// DeleteWorkflow removes a workflow and its execution history in a single
// operation and returns the removed workflow.
func (s *workflowStore) DeleteWorkflow(workflowID string) (model.Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workflow, exists := s.workflows[workflowID]
	if !exists {
		return model.Workflow{}, errWorkflowNotFound
	}

	removed := copyWorkflow(*workflow)
	delete(s.workflows, workflowID)
	delete(s.history, workflowID)
	for i, id := range s.workflowOrder {
		if id == workflowID {
			s.workflowOrder = append(s.workflowOrder[:i], s.workflowOrder[i+1:]...)
			break
		}
	}
	return removed, nil
}

// AddExecutionRecord appends an execution record to the workflow's history.
func (s *workflowStore) AddExecutionRecord(workflowID string, record model.ExecutionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.workflows[workflowID]; !exists {
		return errWorkflowNotFound
	}
	s.history[workflowID] = append(s.history[workflowID], record)
	return nil
}

// GetExecutionRecords returns the execution history of a workflow in
// chronological order.
func (s *workflowStore) GetExecutionRecords(workflowID string) ([]model.ExecutionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.workflows[workflowID]; !exists {
		return nil, errWorkflowNotFound
	}
	records := make([]model.ExecutionRecord, len(s.history[workflowID]))
	copy(records, s.history[workflowID])
	return records, nil
}

// ExecutionCount returns the number of recorded executions for a workflow.
func (s *workflowStore) ExecutionCount(workflowID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.history[workflowID])
}

// CheckCatalogHealth reports whether the workflow catalog is usable.
func (s *workflowStore) CheckCatalogHealth() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.workflows != nil && s.workflowOrder != nil
}

// CheckHistoryHealth reports whether the execution history is usable.
func (s *workflowStore) CheckHistoryHealth() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.history != nil
}

// Reset clears all workflows and execution history. Intended for tests.
func (s *workflowStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workflows = make(map[string]*model.Workflow)
	s.workflowOrder = make([]string, 0)
	s.history = make(map[string][]model.ExecutionRecord)
}

func copyWorkflow(workflow model.Workflow) model.Workflow {
	copied := workflow
	copied.Steps = make([]model.Step, len(workflow.Steps))
	for i, step := range workflow.Steps {
		copied.Steps[i] = step
		copied.Steps[i].DependsOn = utils.DeepCopyStringSlice(step.DependsOn)
	}
	return copied
}

func stepNames(steps []model.Step) []string {
	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, step.Name)
	}
	return names
}
