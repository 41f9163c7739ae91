// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteTwoChildrenUsesSuccessor(t *testing.T) {
	tree := build(t, NewOrdered[int](), 5, 3, 8, 1, 4, 7, 9)

	require.True(t, tree.Delete(3))
	require.NoError(t, tree.Check())

	root := tree.Root()
	assert.Equal(t, 5, root.Key())
	assert.Equal(t, 4, root.Left().Key())
	assert.Equal(t, 1, root.Left().Left().Key())
	assert.Nil(t, root.Left().Right())
	assert.Equal(t, []int{1, 4, 5, 7, 8, 9}, tree.Keys())
	assert.Equal(t, 6, tree.Len())
}

func TestDeleteLeafAndSingleChild(t *testing.T) {
	tree := build(t, NewOrdered[int](), 20, 10, 30, 25)

	// 30 has a single left child
	require.True(t, tree.Delete(30))
	require.NoError(t, tree.Check())
	assert.Equal(t, 25, tree.Root().Right().Key())

	require.True(t, tree.Delete(10))
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{20, 25}, tree.Keys())
}

func TestDeleteRoot(t *testing.T) {
	tree := build(t, NewOrdered[int](), 1)
	require.True(t, tree.Delete(1))
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
}

func TestDeleteMissingLeavesTreeUnchanged(t *testing.T) {
	tree := build(t, NewOrdered[int](), 50, 20, 80, 10, 30, 70, 90)
	before := shape(tree)

	for _, k := range []int{0, 15, 55, 100} {
		assert.False(t, tree.Delete(k))
	}

	assert.Equal(t, before, shape(tree))
	assert.Equal(t, 7, tree.Len())
}

func TestDeleteRebalanceCases(t *testing.T) {
	testCases := []struct {
		name     string
		keys     []int
		del      int
		wantRoot int
	}{
		// removing 40 leaves 20 left-heavy with a left-leaning child
		{name: "Left-Left", keys: []int{30, 20, 40, 10}, del: 40, wantRoot: 20},
		// left child leans right
		{name: "Left-Right", keys: []int{30, 10, 40, 20}, del: 40, wantRoot: 20},
		{name: "Right-Right", keys: []int{20, 10, 30, 40}, del: 10, wantRoot: 30},
		{name: "Right-Left", keys: []int{20, 10, 40, 30}, del: 10, wantRoot: 30},
		// child balance factor of zero still takes the single rotation
		{name: "Left balanced child", keys: []int{30, 20, 40, 10, 25}, del: 40, wantRoot: 20},
		{name: "Right balanced child", keys: []int{20, 10, 30, 25, 40}, del: 10, wantRoot: 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := build(t, NewOrdered[int](), tc.keys...)
			require.True(t, tree.Delete(tc.del))
			require.NoError(t, tree.Check())
			assert.Equal(t, tc.wantRoot, tree.Root().Key())
		})
	}
}

func TestDeleteCascadesToRoot(t *testing.T) {
	// Fibonacci-shaped tree: removing the shallowest leaf forces a rotation
	// at more than one ancestor.
	tree := build(t, NewOrdered[int](), 8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1)

	rotations := 0
	tree.SetTracer(func(s Step[int]) {
		if s.Kind == StepRotateLeft || s.Kind == StepRotateRight {
			rotations++
		}
	})

	require.True(t, tree.Delete(12))
	require.NoError(t, tree.Check())
	assert.GreaterOrEqual(t, rotations, 2)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, tree.Keys())
}
