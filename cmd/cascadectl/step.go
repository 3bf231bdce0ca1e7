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

package main

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/asgardeo/cascade/internal/system/utils"
	"github.com/asgardeo/cascade/internal/workflow/model"
)

var (
	addStepName      string
	addStepAgentType string
	addStepTask      string
	addStepDependsOn string
	addStepCondition string
)

// addStepCmd adds a step to an existing workflow.
var addStepCmd = &cobra.Command{
	Use:   "add-step <workflow-id>",
	Short: "Add a step to a workflow",
	Example: `  cascadectl add-step wf-123 --name build --agent-type builder --task "compile sources"
  cascadectl add-step wf-123 --name deploy --depends-on build,test
  cascadectl add-step wf-123 --name notify --condition 'input.env == "prod"'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		request := model.AddStepRequest{
			Name:      addStepName,
			AgentType: addStepAgentType,
			Task:      addStepTask,
			DependsOn: utils.ParseStringArray(addStepDependsOn, ","),
			Condition: addStepCondition,
		}
		return newAPIClient(serverURL, insecure).
			post("/workflows/"+url.PathEscape(args[0])+"/steps", request)
	},
}

// removeStepCmd removes a step from a workflow.
var removeStepCmd = &cobra.Command{
	Use:   "remove-step <workflow-id> <step-name>",
	Short: "Remove a step from a workflow",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newAPIClient(serverURL, insecure).
			delete("/workflows/" + url.PathEscape(args[0]) + "/steps/" + url.PathEscape(args[1]))
	},
}

func init() {
	rootCmd.AddCommand(addStepCmd)
	rootCmd.AddCommand(removeStepCmd)

	addStepCmd.Flags().StringVar(&addStepName, "name", "", "Step name (required)")
	addStepCmd.Flags().StringVar(&addStepAgentType, "agent-type", "", "Agent type that executes the step")
	addStepCmd.Flags().StringVar(&addStepTask, "task", "", "Task description handed to the agent")
	addStepCmd.Flags().StringVar(&addStepDependsOn, "depends-on", "",
		"Comma-separated names of steps this step depends on")
	addStepCmd.Flags().StringVar(&addStepCondition, "condition", "",
		"Condition expression evaluated in conditional workflows")
	_ = addStepCmd.MarkFlagRequired("name")
}
