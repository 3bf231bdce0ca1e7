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

package constants

import "github.com/asgardeo/cascade/internal/system/error/serviceerror"

// Client errors for workflow management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "INVALID_REQUEST_FORMAT",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorMissingName is the error returned when the workflow name is missing.
	ErrorMissingName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MISSING_NAME",
		Error:            "Missing workflow name",
		ErrorDescription: "Workflow name is required and cannot be blank",
	}
	// ErrorInvalidMode is the error returned when the workflow mode is not recognized.
	ErrorInvalidMode = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "INVALID_MODE",
		Error:            "Invalid workflow mode",
		ErrorDescription: "Workflow mode must be one of sequential, parallel, or conditional",
	}
	// ErrorMissingWorkflowID is the error returned when the workflow ID is missing.
	ErrorMissingWorkflowID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MISSING_WORKFLOW_ID",
		Error:            "Missing workflow ID",
		ErrorDescription: "Workflow ID is required",
	}
	// ErrorWorkflowNotFound is the error returned when a workflow is not found.
	ErrorWorkflowNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WORKFLOW_NOT_FOUND",
		Error:            "Workflow not found",
		ErrorDescription: "The workflow with the specified id does not exist",
	}
	// ErrorMissingStep is the error returned when the step definition is missing.
	ErrorMissingStep = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MISSING_STEP",
		Error:            "Missing step",
		ErrorDescription: "A step definition is required",
	}
	// ErrorMissingStepName is the error returned when the step name is missing.
	ErrorMissingStepName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "MISSING_STEP_NAME",
		Error:            "Missing step name",
		ErrorDescription: "Step name is required and cannot be blank",
	}
	// ErrorDuplicateStep is the error returned when a step name already exists in the workflow.
	ErrorDuplicateStep = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DUPLICATE_STEP",
		Error:            "Duplicate step",
		ErrorDescription: "A step with the same name already exists in the workflow",
	}
	// ErrorInvalidDependency is the error returned when a step depends on an unknown step.
	ErrorInvalidDependency = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "INVALID_DEPENDENCY",
		Error:            "Invalid step dependency",
		ErrorDescription: "Steps can only depend on steps already added to the workflow",
	}
	// ErrorStepNotFound is the error returned when a step is not found in the workflow.
	ErrorStepNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "STEP_NOT_FOUND",
		Error:            "Step not found",
		ErrorDescription: "The workflow does not contain a step with the specified name",
	}
	// ErrorNoSteps is the error returned when an empty workflow is executed.
	ErrorNoSteps = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "NO_STEPS",
		Error:            "Workflow has no steps",
		ErrorDescription: "The workflow cannot be executed because it has no steps",
	}
	// ErrorCircularDependency is the error returned when the step graph contains a cycle.
	ErrorCircularDependency = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CIRCULAR_DEPENDENCY",
		Error:            "Circular dependency detected",
		ErrorDescription: "The workflow step graph contains a dependency cycle",
	}
)

// Server errors for workflow management operations.
var (
	// ErrorInternalServerError is the error returned when an unexpected error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "INTERNAL_SERVER_ERROR",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
