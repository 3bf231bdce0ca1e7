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

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/asgardeo/cascade/internal/system/error/serviceerror"
	"github.com/asgardeo/cascade/internal/system/log"
	"github.com/asgardeo/cascade/internal/workflow"
	"github.com/asgardeo/cascade/internal/workflow/model"
)

const mcpLoggerComponentName = "MCPToolServer"

// workflowToolServer exposes the workflow actions as MCP tools. Tool results
// carry the same JSON envelopes as the REST API.
type workflowToolServer struct {
	mcpServer       *server.MCPServer
	workflowService workflow.WorkflowServiceInterface
}

// newWorkflowToolServer creates an MCP server with the workflow tools registered.
func newWorkflowToolServer(workflowService workflow.WorkflowServiceInterface) *workflowToolServer {
	ts := &workflowToolServer{
		mcpServer: server.NewMCPServer(
			serverName,
			serverVersion,
			server.WithToolCapabilities(true),
		),
		workflowService: workflowService,
	}
	ts.registerTools()
	return ts
}

func (ts *workflowToolServer) registerTools() {
	ts.mcpServer.AddTool(
		mcp.NewTool(
			"create_workflow",
			mcp.WithDescription("Create a new workflow definition with no steps"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Display name of the workflow")),
			mcp.WithString("description", mcp.Description("Free-text description of the workflow")),
			mcp.WithString("mode",
				mcp.Description("Execution mode: sequential, parallel or conditional. Defaults to sequential")),
		),
		ts.handleCreateWorkflow,
	)

	ts.mcpServer.AddTool(
		mcp.NewTool(
			"add_step",
			mcp.WithDescription("Add a step to an existing workflow"),
			mcp.WithString("workflowId", mcp.Required(), mcp.Description("ID of the workflow")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Step name, unique within the workflow")),
			mcp.WithString("agentType", mcp.Description("Agent type executing the step. Defaults to default")),
			mcp.WithString("task", mcp.Description("Task description handed to the agent")),
			mcp.WithArray("dependsOn",
				mcp.Description("Names of previously added steps this step depends on"),
				mcp.Items(map[string]interface{}{"type": "string"})),
			mcp.WithString("condition",
				mcp.Description("Condition expression evaluated in conditional mode")),
		),
		ts.handleAddStep,
	)

	ts.mcpServer.AddTool(
		mcp.NewTool(
			"remove_step",
			mcp.WithDescription("Remove a step from a workflow"),
			mcp.WithString("workflowId", mcp.Required(), mcp.Description("ID of the workflow")),
			mcp.WithString("stepName", mcp.Required(), mcp.Description("Name of the step to remove")),
		),
		ts.handleRemoveStep,
	)

	ts.mcpServer.AddTool(
		mcp.NewTool(
			"execute_workflow",
			mcp.WithDescription("Execute a workflow and return the step-by-step trace"),
			mcp.WithString("workflowId", mcp.Required(), mcp.Description("ID of the workflow")),
			mcp.WithObject("input", mcp.Description("Input payload passed to the workflow")),
		),
		ts.handleExecuteWorkflow,
	)

	ts.mcpServer.AddTool(
		mcp.NewTool(
			"get_status",
			mcp.WithDescription("Get the definition and execution summary of a workflow"),
			mcp.WithString("workflowId", mcp.Required(), mcp.Description("ID of the workflow")),
		),
		ts.handleGetStatus,
	)

	ts.mcpServer.AddTool(
		mcp.NewTool(
			"list_workflows",
			mcp.WithDescription("List all defined workflows"),
		),
		ts.handleListWorkflows,
	)

	ts.mcpServer.AddTool(
		mcp.NewTool(
			"cancel_workflow",
			mcp.WithDescription("Cancel a workflow and delete its execution history"),
			mcp.WithString("workflowId", mcp.Required(), mcp.Description("ID of the workflow")),
		),
		ts.handleCancelWorkflow,
	)
}

func (ts *workflowToolServer) handleCreateWorkflow(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error) {
	args, ok := toolArguments(request)
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	result, svcErr := ts.workflowService.CreateWorkflow(model.CreateWorkflowRequest{
		Name:        stringArg(args, "name"),
		Description: stringArg(args, "description"),
		Mode:        stringArg(args, "mode"),
	})
	if svcErr != nil {
		return toolError(svcErr), nil
	}
	return toolResult(result), nil
}

func (ts *workflowToolServer) handleAddStep(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error) {
	args, ok := toolArguments(request)
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	result, svcErr := ts.workflowService.AddStep(stringArg(args, "workflowId"), &model.AddStepRequest{
		Name:      stringArg(args, "name"),
		AgentType: stringArg(args, "agentType"),
		Task:      stringArg(args, "task"),
		DependsOn: stringSliceArg(args, "dependsOn"),
		Condition: stringArg(args, "condition"),
	})
	if svcErr != nil {
		return toolError(svcErr), nil
	}
	return toolResult(result), nil
}

func (ts *workflowToolServer) handleRemoveStep(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error) {
	args, ok := toolArguments(request)
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	result, svcErr := ts.workflowService.RemoveStep(stringArg(args, "workflowId"), stringArg(args, "stepName"))
	if svcErr != nil {
		return toolError(svcErr), nil
	}
	return toolResult(result), nil
}

func (ts *workflowToolServer) handleExecuteWorkflow(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error) {
	args, ok := toolArguments(request)
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	result, svcErr := ts.workflowService.ExecuteWorkflow(stringArg(args, "workflowId"), mapArg(args, "input"))
	if svcErr != nil {
		return toolError(svcErr), nil
	}
	return toolResult(result), nil
}

func (ts *workflowToolServer) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error) {
	args, ok := toolArguments(request)
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	result, svcErr := ts.workflowService.GetWorkflowStatus(stringArg(args, "workflowId"))
	if svcErr != nil {
		return toolError(svcErr), nil
	}
	return toolResult(result), nil
}

func (ts *workflowToolServer) handleListWorkflows(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error) {
	result, svcErr := ts.workflowService.ListWorkflows()
	if svcErr != nil {
		return toolError(svcErr), nil
	}
	return toolResult(result), nil
}

func (ts *workflowToolServer) handleCancelWorkflow(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error) {
	args, ok := toolArguments(request)
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	result, svcErr := ts.workflowService.CancelWorkflow(stringArg(args, "workflowId"))
	if svcErr != nil {
		return toolError(svcErr), nil
	}
	return toolResult(result), nil
}

func toolArguments(request mcp.CallToolRequest) (map[string]interface{}, bool) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, false
	}
	return args, true
}

func stringArg(args map[string]interface{}, key string) string {
	value, ok := args[key].(string)
	if !ok {
		return ""
	}
	return value
}

func stringSliceArg(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}

func mapArg(args map[string]interface{}, key string) map[string]interface{} {
	value, ok := args[key].(map[string]interface{})
	if !ok {
		return nil
	}
	return value
}

func toolError(svcErr *serviceerror.ServiceError) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", svcErr.Code, svcErr.ErrorDescription))
}

func toolResult(payload interface{}) *mcp.CallToolResult {
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, mcpLoggerComponentName))
		logger.Error("Error encoding tool result", log.Error(err))
		return mcp.NewToolResultError("Failed to encode tool result")
	}
	return mcp.NewToolResultText(string(jsonBytes))
}
