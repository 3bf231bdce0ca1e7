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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asgardeo/cascade/internal/system/utils"
)

var (
	serverURL string
	insecure  bool
)

// rootCmd is the base command for the Cascade CLI.
var rootCmd = &cobra.Command{
	Use:   "cascadectl",
	Short: "Command line client for the Cascade workflow orchestrator",
	Long: `cascadectl drives the Cascade workflow orchestration REST API from the
command line. It can create workflows, manage their steps, trigger
executions, and inspect workflow status and execution history.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := utils.ParseURL(serverURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid --server value %q, expected a base URL like https://localhost:8095", serverURL)
		}
		return nil
	},
}

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "https://localhost:8095",
		"Base URL of the Cascade server")
	rootCmd.PersistentFlags().BoolVarP(&insecure, "insecure", "k", false,
		"Skip TLS certificate verification")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
