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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	tree := build(t, NewOrdered[int](), 20, 10, 30)

	n := tree.Search(30)
	require.NotNil(t, n)
	assert.Equal(t, 30, n.Key())
	assert.True(t, tree.Contains(10))
	assert.Nil(t, tree.Search(25))
	assert.False(t, tree.Contains(25))
}

func TestSearchPath(t *testing.T) {
	tree := build(t, NewOrdered[int](), 20, 10, 30)

	path, found := tree.SearchPath(30)
	require.NotNil(t, found)
	require.Len(t, path, 2)
	assert.Equal(t, 20, path[0].Key())
	assert.Same(t, found, path[1])

	path, found = tree.SearchPath(25)
	assert.Nil(t, found)
	require.Len(t, path, 2)
	assert.Equal(t, 30, path[1].Key())

	path, found = NewOrdered[int]().SearchPath(1)
	assert.Nil(t, found)
	assert.Empty(t, path)
}

func TestMinMaxAndLevels(t *testing.T) {
	tree := build(t, NewOrdered[int](), 5, 3, 8, 1, 4, 7, 9)

	lo, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := tree.Max()
	require.True(t, ok)
	assert.Equal(t, 9, hi)

	var level []int
	for _, n := range tree.Level(2) {
		level = append(level, n.Key())
	}
	assert.Equal(t, []int{1, 4, 7, 9}, level)
	assert.Empty(t, tree.Level(3))
	assert.Empty(t, tree.Level(-1))
}

func TestInOrderNilVisitor(t *testing.T) {
	tree := build(t, NewOrdered[int](), 1, 2, 3)
	assert.NotPanics(t, func() { tree.InOrder(nil) })
}

func TestTracerInsertRotation(t *testing.T) {
	tree := build(t, NewOrdered[int](), 10, 20)

	var steps []Step[int]
	tree.SetTracer(func(s Step[int]) { steps = append(steps, s) })
	tree.Insert(30)

	want := []Step[int]{
		{Kind: StepVisit, Key: 10},
		{Kind: StepVisit, Key: 20},
		{Kind: StepAttach, Key: 30},
		{Kind: StepRotateLeft, Key: 10, Pivot: 20},
	}
	assert.Equal(t, want, steps)
	assert.Equal(t, "rotate-left at 10 (pivot 20)", steps[3].String())
}

func TestTracerDeleteSuccessor(t *testing.T) {
	tree := build(t, NewOrdered[int](), 20, 10, 30)

	var kinds []StepKind
	tree.SetTracer(func(s Step[int]) { kinds = append(kinds, s.Kind) })
	tree.Delete(20)

	assert.Equal(t, []StepKind{StepVisit, StepCopySuccessor, StepVisit, StepRemove}, kinds)

	kinds = nil
	tree.Insert(10)
	// root is now 30 with 10 on its left
	assert.Equal(t, []StepKind{StepVisit, StepVisit, StepDuplicate}, kinds)

	tree.SetTracer(nil)
	tree.Insert(40)
	assert.Len(t, kinds, 3)
}

func TestStepKindString(t *testing.T) {
	assert.Equal(t, "copy-successor", StepCopySuccessor.String())
	assert.Equal(t, "StepKind(42)", StepKind(42).String())
	assert.Equal(t, "copy-successor 30 -> 20", Step[int]{Kind: StepCopySuccessor, Key: 20, Pivot: 30}.String())
	assert.Equal(t, "attach 5", Step[int]{Kind: StepAttach, Key: 5}.String())
}

func TestCheckDetectsCorruption(t *testing.T) {
	testCases := []struct {
		name string
		root *Node[int]
		n    int
		want error
	}{
		{
			name: "order",
			root: &Node[int]{key: 2, height: 2, left: &Node[int]{key: 3, height: 1}},
			n:    2,
			want: ErrOrder,
		},
		{
			name: "height",
			root: &Node[int]{key: 2, height: 5, left: &Node[int]{key: 1, height: 1}},
			n:    2,
			want: ErrHeight,
		},
		{
			name: "balance",
			root: &Node[int]{key: 1, height: 3, right: &Node[int]{key: 2, height: 2, right: &Node[int]{key: 3, height: 1}}},
			n:    3,
			want: ErrBalance,
		},
		{
			name: "count",
			root: &Node[int]{key: 1, height: 1},
			n:    4,
			want: ErrCount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := NewOrdered[int]()
			tree.root = tc.root
			tree.count = tc.n

			err := tree.Check()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestPrint(t *testing.T) {
	tree := build(t, NewOrdered[int](), 10, 20, 30)

	var sb strings.Builder
	depth := tree.Print(&sb, false)
	assert.Equal(t, 2, depth)
	assert.Equal(t, "       /------+ 30\n|------+ 20\n       \\------+ 10\n", sb.String())

	sb.Reset()
	tree.Print(&sb, true)
	assert.Contains(t, sb.String(), "20 h=2 +0")

	sb.Reset()
	assert.Equal(t, 0, NewOrdered[int]().Print(&sb, false))
	assert.Empty(t, sb.String())
}
