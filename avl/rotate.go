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

func height[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[K any](n *Node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balance[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotateLeft lifts x.right above x and returns it as the new subtree root.
func (t *Tree[K]) rotateLeft(x *Node[K]) *Node[K] {
	pivot := x.right

	x.right = pivot.left
	pivot.left = x

	// x is now the child, so it goes first
	updateHeight(x)
	updateHeight(pivot)

	t.trace(Step[K]{Kind: StepRotateLeft, Key: x.key, Pivot: pivot.key})
	return pivot
}

// rotateRight lifts y.left above y and returns it as the new subtree root.
func (t *Tree[K]) rotateRight(y *Node[K]) *Node[K] {
	pivot := y.left

	y.left = pivot.right
	pivot.right = y

	updateHeight(y)
	updateHeight(pivot)

	t.trace(Step[K]{Kind: StepRotateRight, Key: y.key, Pivot: pivot.key})
	return pivot
}
