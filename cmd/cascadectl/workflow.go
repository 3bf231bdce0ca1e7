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

	"github.com/asgardeo/cascade/internal/workflow/model"
)

var (
	createName        string
	createDescription string
	createMode        string
)

// createCmd creates a new workflow definition.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new workflow",
	Example: `  cascadectl create --name deploy-pipeline
  cascadectl create --name fan-out --mode parallel --description "Parallel build"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		request := model.CreateWorkflowRequest{
			Name:        createName,
			Description: createDescription,
			Mode:        createMode,
		}
		return newAPIClient(serverURL, insecure).post("/workflows", request)
	},
}

// listCmd lists all registered workflows.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all workflows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newAPIClient(serverURL, insecure).get("/workflows")
	},
}

// statusCmd shows a workflow definition together with its execution history.
var statusCmd = &cobra.Command{
	Use:   "status <workflow-id>",
	Short: "Show a workflow and its execution history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newAPIClient(serverURL, insecure).get("/workflows/" + url.PathEscape(args[0]))
	},
}

// cancelCmd removes a workflow together with its execution history.
var cancelCmd = &cobra.Command{
	Use:   "cancel <workflow-id>",
	Short: "Cancel a workflow and remove it and its execution history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newAPIClient(serverURL, insecure).delete("/workflows/" + url.PathEscape(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(cancelCmd)

	createCmd.Flags().StringVar(&createName, "name", "", "Workflow name (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Workflow description")
	createCmd.Flags().StringVar(&createMode, "mode", "",
		"Execution mode: sequential, parallel, or conditional (default sequential)")
	_ = createCmd.MarkFlagRequired("name")
}
