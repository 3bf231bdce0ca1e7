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
	"github.com/asgardeo/cascade/internal/system/healthcheck"
)

// storeChecker adapts a store health probe to the readiness check contract.
type storeChecker struct {
	name  string
	check func() bool
}

func newStoreChecker(name string, check func() bool) healthcheck.ServiceChecker {
	return &storeChecker{
		name:  name,
		check: check,
	}
}

// ServiceName returns the name the checker reports under.
func (c *storeChecker) ServiceName() string {
	return c.name
}

// CheckHealth probes the underlying store.
func (c *storeChecker) CheckHealth() healthcheck.Status {
	if c.check() {
		return healthcheck.StatusUp
	}
	return healthcheck.StatusDown
}
