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

package config

import "sync"

// CascadeRuntime holds the runtime configuration for the Cascade server.
type CascadeRuntime struct {
	CascadeHome string `yaml:"cascade_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *CascadeRuntime
	once          sync.Once
)

// InitializeCascadeRuntime initializes the CascadeRuntime configuration.
func InitializeCascadeRuntime(cascadeHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &CascadeRuntime{
			CascadeHome: cascadeHome,
			Config:      *config,
		}
	})

	return nil
}

// GetCascadeRuntime returns the CascadeRuntime configuration.
func GetCascadeRuntime() *CascadeRuntime {
	if runtimeConfig == nil {
		panic("CascadeRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetCascadeRuntime resets the CascadeRuntime.
// This should only be used in tests to reset the singleton state.
func ResetCascadeRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
