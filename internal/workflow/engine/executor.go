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

package engine

import (
	"fmt"

	"github.com/asgardeo/cascade/internal/system/log"
	"github.com/asgardeo/cascade/internal/system/utils"
	"github.com/asgardeo/cascade/internal/workflow/model"
)

const executorLoggerComponentName = "StepExecutor"

// StepExecutorInterface abstracts the execution of a single workflow step.
// It is the extension point for dispatching steps to real agents; the shipped
// implementation only simulates execution.
type StepExecutorInterface interface {
	ExecuteStep(step model.Step, input interface{}) string
}

// simulatedStepExecutor fabricates deterministic step output without invoking
// any external agent.
type simulatedStepExecutor struct{}

// NewSimulatedStepExecutor creates a step executor that simulates execution.
func NewSimulatedStepExecutor() StepExecutorInterface {
	return &simulatedStepExecutor{}
}

// ExecuteStep returns a deterministic output derived from the step definition.
func (sse *simulatedStepExecutor) ExecuteStep(step model.Step, input interface{}) string {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, executorLoggerComponentName))
	logger.Debug("Simulating step execution", log.String(log.LoggerKeyStepName, utils.SanitizeString(step.Name)),
		log.String("agentType", utils.SanitizeString(step.AgentType)))

	if step.Task == "" {
		return fmt.Sprintf("[%s] completed", step.AgentType)
	}
	return fmt.Sprintf("[%s] completed: %s", step.AgentType, step.Task)
}
