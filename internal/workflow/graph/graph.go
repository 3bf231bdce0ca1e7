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

// Package graph provides dependency graph utilities for workflow step ordering.
//
// Graphs are given as an ordered list of node names plus a map from each node
// to the nodes it depends on. The node order is the caller's insertion order
// and fixes the traversal order, so identical inputs always produce identical
// results.
package graph

import "errors"

// ErrCircularDependency is returned when the dependency graph contains a cycle.
var ErrCircularDependency = errors.New("circular dependency detected in step graph")

// TopologicalSort orders nodes so that every node appears after all of its
// transitive dependencies. Dependencies naming unknown nodes are ignored.
// On a cycle the sort fails with ErrCircularDependency; no partial order is
// returned.
func TopologicalSort(nodes []string, dependencies map[string][]string) ([]string, error) {
	nodeSet := make(map[string]bool, len(nodes))
	for _, node := range nodes {
		nodeSet[node] = true
	}

	visited := make(map[string]bool, len(nodes))
	visiting := make(map[string]bool, len(nodes))
	order := make([]string, 0, len(nodes))

	var visit func(node string) error
	visit = func(node string) error {
		if visited[node] {
			return nil
		}
		if visiting[node] {
			return ErrCircularDependency
		}
		visiting[node] = true
		for _, dependency := range dependencies[node] {
			if !nodeSet[dependency] {
				continue
			}
			if err := visit(dependency); err != nil {
				return err
			}
		}
		visiting[node] = false
		visited[node] = true
		order = append(order, node)
		return nil
	}

	for _, node := range nodes {
		if err := visit(node); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// ComputeParallelLevels groups nodes into dependency levels. A node with no
// dependencies is at level 0; otherwise its level is 1 + the maximum level of
// its direct dependencies, so nodes within one level have no dependency
// relationship and can run independently. Levels are returned in ascending
// order; within a level, nodes keep their topological order. Fails with
// ErrCircularDependency when the graph contains a cycle.
func ComputeParallelLevels(nodes []string, dependencies map[string][]string) ([][]string, error) {
	order, err := TopologicalSort(nodes, dependencies)
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return [][]string{}, nil
	}

	nodeSet := make(map[string]bool, len(order))
	for _, node := range order {
		nodeSet[node] = true
	}

	levelByNode := make(map[string]int, len(order))
	maxLevel := 0
	for _, node := range order {
		level := 0
		for _, dependency := range dependencies[node] {
			if !nodeSet[dependency] {
				continue
			}
			if dependencyLevel := levelByNode[dependency] + 1; dependencyLevel > level {
				level = dependencyLevel
			}
		}
		levelByNode[node] = level
		if level > maxLevel {
			maxLevel = level
		}
	}

	levels := make([][]string, maxLevel+1)
	for _, node := range order {
		level := levelByNode[node]
		levels[level] = append(levels[level], node)
	}

	return levels, nil
}
