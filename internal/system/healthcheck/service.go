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

package healthcheck

import (
	"github.com/asgardeo/cascade/internal/system/log"
)

const loggerComponentName = "HealthCheckService"

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() ServerStatus
}

// healthCheckService is the default implementation of the HealthCheckServiceInterface.
type healthCheckService struct {
	checkers []ServiceChecker
}

// newHealthCheckService creates a new instance of healthCheckService with the given service checkers.
func newHealthCheckService(checkers ...ServiceChecker) HealthCheckServiceInterface {
	return &healthCheckService{
		checkers: checkers,
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *healthCheckService) CheckReadiness() ServerStatus {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	status := StatusUp
	serviceStatuses := make([]ServiceStatus, 0, len(hcs.checkers))
	for _, checker := range hcs.checkers {
		serviceStatus := ServiceStatus{
			ServiceName: checker.ServiceName(),
			Status:      checker.CheckHealth(),
		}
		if serviceStatus.Status == StatusDown {
			logger.Error("Service reported as down", log.String("serviceName", serviceStatus.ServiceName))
			status = StatusDown
		}
		serviceStatuses = append(serviceStatuses, serviceStatus)
	}

	return ServerStatus{
		Status:        status,
		ServiceStatus: serviceStatuses,
	}
}
